package dbsql

import "time"

type FollowStream struct {
	StreamID  uint64    `gorm:"primaryKey;column:stream_id;autoIncrement" json:"stream_id"`
	Name      string    `gorm:"column:stream_name;size:255;not null" json:"stream_name"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (FollowStream) TableName() string { return "follow_streams" }

// FollowStreamBoard is the stream <-> board membership row.
type FollowStreamBoard struct {
	StreamID  uint64    `gorm:"primaryKey;column:stream_id;autoIncrement:false" json:"stream_id"`
	BoardID   uint64    `gorm:"primaryKey;column:board_id;autoIncrement:false;index" json:"board_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Stream *FollowStream `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Board  *Board        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (FollowStreamBoard) TableName() string { return "follow_stream_boards" }
