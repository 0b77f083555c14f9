package dbmysql

import (
	"time"
)

// MutualsName is the reserved name of the one undeletable circle every
// account owns.
const MutualsName = "Mutuals"

type Circle struct {
	CircleID  int64     `gorm:"primaryKey;column:circle_id;autoIncrement" json:"circle_id"`
	CreatorID int64     `gorm:"column:creator_id;not null;index:idx_creator_name,unique" json:"creator_id"`
	Name      string    `gorm:"column:name;size:50;not null;index:idx_creator_name,unique" json:"name"`
	Deletable bool      `gorm:"column:deletable;not null" json:"deletable"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Members []CircleMember `gorm:"foreignKey:CircleID;references:CircleID" json:"members,omitempty"`
}

type CircleMember struct {
	ID       int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CircleID int64 `gorm:"column:circle_id;not null;index:idx_circle_member,unique" json:"circle_id"`
	MemberID int64 `gorm:"column:member_id;not null;index:idx_circle_member,unique" json:"member_id"`
}
