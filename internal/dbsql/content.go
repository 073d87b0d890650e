package dbsql

import "time"

type Board struct {
	BoardID             uint64    `gorm:"primaryKey;column:board_id;autoIncrement" json:"board_id"`
	Name                string    `gorm:"column:board_name;size:255;not null" json:"board_name"`
	Descriptor          string    `gorm:"column:descriptor;type:text" json:"descriptor"`
	OwnerID             uint64    `gorm:"column:owner_id;not null;index" json:"owner_id"`
	AllowFriendsComment bool      `gorm:"column:allow_friends_comment;not null" json:"allow_friends_comment"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`

	Owner *User `gorm:"foreignKey:OwnerID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Board) TableName() string { return "boards" }

// Picture is either an uploaded file (ImageLocator, opaque to the domain) or
// an external URL.
type Picture struct {
	PictureID    uint64    `gorm:"primaryKey;column:picture_id;autoIncrement" json:"picture_id"`
	ImageLocator string    `gorm:"column:image_locator;size:64" json:"-"`
	ExternalURL  string    `gorm:"column:external_url;size:2048" json:"external_url,omitempty"`
	Tags         string    `gorm:"column:tags;size:1024" json:"tags"`
	UploadedBy   uint64    `gorm:"column:uploaded_by;not null;index" json:"uploaded_by"`
	UploadTime   time.Time `gorm:"column:upload_time;autoCreateTime" json:"upload_time"`

	Uploader *User `gorm:"foreignKey:UploadedBy;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Picture) TableName() string { return "pictures" }

func (p *Picture) HasSource() bool {
	return p.ImageLocator != "" || p.ExternalURL != ""
}

type Pin struct {
	PinID       uint64    `gorm:"primaryKey;column:pin_id;autoIncrement" json:"pin_id"`
	Title       string    `gorm:"column:title;size:255" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	UserID      uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	BoardID     uint64    `gorm:"column:board_id;not null;index" json:"board_id"`
	PictureID   uint64    `gorm:"column:picture_id;not null;index" json:"picture_id"`
	OriginPinID *uint64   `gorm:"column:origin_pin_id;index" json:"origin_pin_id,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`

	// Untagged relations resolve to belongs-to by naming convention.
	User      *User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Board     *Board   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Picture   *Picture `gorm:"constraint:OnDelete:CASCADE" json:"picture,omitempty"`
	OriginPin *Pin     `gorm:"foreignKey:OriginPinID;references:PinID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Pin) TableName() string { return "pins" }

func (p *Pin) IsRepin() bool {
	return p.OriginPinID != nil
}
