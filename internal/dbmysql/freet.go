package dbmysql

import (
	"time"
)

// Freet is the single content row for both top-level freets and replies.
// ParentID is nil for a freet and set for a reply; both carry the same
// visibility fields (author, circle, private).
type Freet struct {
	FreetID   int64     `gorm:"primaryKey;column:freet_id;autoIncrement" json:"freet_id"`
	AuthorID  int64     `gorm:"column:author_id;not null;index" json:"author_id"`
	Content   string    `gorm:"column:content;size:140;not null" json:"content"`
	Anonymous bool      `gorm:"column:anonymous;not null" json:"anonymous"`
	CircleID  *int64    `gorm:"column:circle_id;index" json:"circle_id,omitempty"`
	Private   bool      `gorm:"column:private;not null" json:"private"`
	ParentID  *int64    `gorm:"column:parent_id;index" json:"parent_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Author *User `gorm:"-" json:"author,omitempty"`
}

// IsReply reports whether the row is a reply rather than a top-level freet.
func (f *Freet) IsReply() bool {
	return f.ParentID != nil
}
