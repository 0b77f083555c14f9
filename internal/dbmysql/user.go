package dbmysql

import (
	"time"
)

type User struct {
	UserID       int64     `gorm:"primaryKey;column:user_id;autoIncrement" json:"user_id"`
	Username     string    `gorm:"column:username;uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
