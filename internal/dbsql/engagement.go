package dbsql

import "time"

// Like always references a root pin.
type Like struct {
	LikeID    uint64    `gorm:"primaryKey;column:like_id;autoIncrement" json:"like_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_like_user_pin" json:"user_id"`
	PinID     uint64    `gorm:"column:pin_id;not null;uniqueIndex:idx_like_user_pin;index" json:"pin_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Pin  *Pin  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Like) TableName() string { return "likes" }

// Comment is attached to the exact pin row it was made on.
type Comment struct {
	CommentID uint64    `gorm:"primaryKey;column:comment_id;autoIncrement" json:"comment_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	PinID     uint64    `gorm:"column:pin_id;not null;index" json:"pin_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Pin  *Pin  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string { return "comments" }
