package dbmysql

import (
	"time"
)

type Follow struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID int64     `gorm:"column:follower_id;not null;index:idx_follower_followee,unique" json:"follower_id"`
	FolloweeID int64     `gorm:"column:followee_id;not null;index:idx_follower_followee,unique" json:"followee_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Follower *User `gorm:"-" json:"follower,omitempty"`
	Followee *User `gorm:"-" json:"followee,omitempty"`
}
