package dbmysql

import "time"

type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_user_freet,unique" json:"user_id"`
	FreetID   int64     `gorm:"column:freet_id;not null;index:idx_user_freet,unique" json:"freet_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
