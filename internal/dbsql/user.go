package dbsql

import "time"

type User struct {
	UserID       uint64    `gorm:"primaryKey;column:user_id;autoIncrement" json:"user_id"`
	Username     string    `gorm:"column:username;uniqueIndex;size:150;not null" json:"username"`
	Email        string    `gorm:"column:email;size:255" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	ProfileInfo  string    `gorm:"column:profile_info;type:text" json:"profile_info"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
