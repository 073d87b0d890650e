package dbsql

import (
	"time"

	"gorm.io/gorm"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// FriendshipRequest is a directed edge sender -> receiver.
type FriendshipRequest struct {
	RequestID    uint64        `gorm:"primaryKey;column:request_id;autoIncrement" json:"request_id"`
	SenderID     uint64        `gorm:"column:sender_id;not null;index:idx_request_pair" json:"sender_id"`
	ReceiverID   uint64        `gorm:"column:receiver_id;not null;index:idx_request_pair;index" json:"receiver_id"`
	Status       RequestStatus `gorm:"column:status;size:16;not null;index" json:"status"`
	RequestTime  time.Time     `gorm:"column:request_time;autoCreateTime" json:"request_time"`
	ResponseTime *time.Time    `gorm:"column:response_time" json:"response_time,omitempty"`

	Sender   *User `gorm:"foreignKey:SenderID;references:UserID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID;references:UserID;constraint:OnDelete:CASCADE" json:"receiver,omitempty"`
}

func (FriendshipRequest) TableName() string { return "friendship_requests" }

func (r *FriendshipRequest) IsPending() bool {
	return r.Status == RequestPending
}

// Friendship is an undirected edge stored with User1ID < User2ID so the
// unique index covers both orderings.
type Friendship struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	User1ID   uint64    `gorm:"column:user1_id;not null;uniqueIndex:idx_friend_pair" json:"user1_id"`
	User2ID   uint64    `gorm:"column:user2_id;not null;uniqueIndex:idx_friend_pair;index" json:"user2_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User1 *User `gorm:"foreignKey:User1ID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	User2 *User `gorm:"foreignKey:User2ID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Friendship) TableName() string { return "friendships" }

func (f *Friendship) BeforeCreate(tx *gorm.DB) error {
	f.User1ID, f.User2ID = OrderedPair(f.User1ID, f.User2ID)
	return nil
}

// Other returns the counterpart of userID in the pair.
func (f *Friendship) Other(userID uint64) uint64 {
	if f.User1ID == userID {
		return f.User2ID
	}
	return f.User1ID
}

func OrderedPair(a, b uint64) (uint64, uint64) {
	if a > b {
		return b, a
	}
	return a, b
}
