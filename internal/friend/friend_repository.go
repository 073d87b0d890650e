package friend

import (
	"context"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pinboard/internal/apperr"
	"pinboard/internal/dbsql"
)

type FriendRepository interface {
	CreateRequest(ctx context.Context, req *dbsql.FriendshipRequest) error
	GetRequest(ctx context.Context, requestID uint64) (*dbsql.FriendshipRequest, error)
	UpdateRequest(ctx context.Context, req *dbsql.FriendshipRequest) error
	PendingBetween(ctx context.Context, userA, userB uint64) (*dbsql.FriendshipRequest, error)
	ListReceivedPending(ctx context.Context, userID uint64) ([]*dbsql.FriendshipRequest, error)
	ListSent(ctx context.Context, userID uint64) ([]*dbsql.FriendshipRequest, error)
	CreateFriendship(ctx context.Context, userA, userB uint64) error
	FriendshipExists(ctx context.Context, userA, userB uint64) (bool, error)
	ListFriends(ctx context.Context, userID uint64) ([]*dbsql.User, error)
	DeleteFriendship(ctx context.Context, userA, userB uint64) error
	UserExists(ctx context.Context, userID uint64) (bool, error)
	LockPair(ctx context.Context, userA, userB uint64) ([]uint64, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) CreateRequest(ctx context.Context, req *dbsql.FriendshipRequest) error {
	err := dbsql.Conn(ctx, r.db).Create(req).Error
	return dbsql.Translate(err, "create friend request", "friend request")
}

// GetRequest locks the row when called inside a transaction.
func (r *friendRepository) GetRequest(ctx context.Context, requestID uint64) (*dbsql.FriendshipRequest, error) {
	var req dbsql.FriendshipRequest
	err := dbsql.Conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&req).Error
	if err != nil {
		return nil, dbsql.Translate(err, "get friend request", "friend request")
	}
	return &req, nil
}

func (r *friendRepository) UpdateRequest(ctx context.Context, req *dbsql.FriendshipRequest) error {
	err := dbsql.Conn(ctx, r.db).Model(req).
		Select("status", "response_time").
		Updates(req).Error
	return dbsql.Translate(err, "update friend request", "friend request")
}

// PendingBetween returns the pending request between the pair in either
// direction, or nil.
func (r *friendRepository) PendingBetween(ctx context.Context, userA, userB uint64) (*dbsql.FriendshipRequest, error) {
	var reqs []dbsql.FriendshipRequest
	err := dbsql.Conn(ctx, r.db).
		Where("status = ?", dbsql.RequestPending).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", userA, userB, userB, userA).
		Limit(1).
		Find(&reqs).Error
	if err != nil {
		return nil, dbsql.Translate(err, "find pending request", "friend request")
	}
	if len(reqs) == 0 {
		return nil, nil
	}
	return &reqs[0], nil
}

func (r *friendRepository) ListReceivedPending(ctx context.Context, userID uint64) ([]*dbsql.FriendshipRequest, error) {
	var reqs []*dbsql.FriendshipRequest
	err := dbsql.Conn(ctx, r.db).
		Preload("Sender").
		Where("receiver_id = ? AND status = ?", userID, dbsql.RequestPending).
		Order("request_time DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, dbsql.Translate(err, "list received requests", "friend request")
	}
	return reqs, nil
}

func (r *friendRepository) ListSent(ctx context.Context, userID uint64) ([]*dbsql.FriendshipRequest, error) {
	var reqs []*dbsql.FriendshipRequest
	err := dbsql.Conn(ctx, r.db).
		Preload("Receiver").
		Where("sender_id = ?", userID).
		Order("request_time DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, dbsql.Translate(err, "list sent requests", "friend request")
	}
	return reqs, nil
}

func (r *friendRepository) CreateFriendship(ctx context.Context, userA, userB uint64) error {
	err := dbsql.Conn(ctx, r.db).Create(&dbsql.Friendship{User1ID: userA, User2ID: userB}).Error
	return dbsql.Translate(err, "create friendship", "friendship")
}

func (r *friendRepository) FriendshipExists(ctx context.Context, userA, userB uint64) (bool, error) {
	u1, u2 := dbsql.OrderedPair(userA, userB)
	var count int64
	err := dbsql.Conn(ctx, r.db).Model(&dbsql.Friendship{}).
		Where("user1_id = ? AND user2_id = ?", u1, u2).
		Count(&count).Error
	if err != nil {
		return false, dbsql.Translate(err, "check friendship", "friendship")
	}
	return count > 0, nil
}

func (r *friendRepository) ListFriends(ctx context.Context, userID uint64) ([]*dbsql.User, error) {
	var pairs []*dbsql.Friendship
	err := dbsql.Conn(ctx, r.db).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Find(&pairs).Error
	if err != nil {
		return nil, dbsql.Translate(err, "list friendships", "friendship")
	}
	if len(pairs) == 0 {
		return []*dbsql.User{}, nil
	}

	ids := lo.Map(pairs, func(f *dbsql.Friendship, _ int) uint64 { return f.Other(userID) })

	var friends []*dbsql.User
	err = dbsql.Conn(ctx, r.db).
		Where("user_id IN ?", ids).
		Order("username ASC").
		Find(&friends).Error
	if err != nil {
		return nil, dbsql.Translate(err, "list friends", "user")
	}
	return friends, nil
}

func (r *friendRepository) DeleteFriendship(ctx context.Context, userA, userB uint64) error {
	u1, u2 := dbsql.OrderedPair(userA, userB)
	res := dbsql.Conn(ctx, r.db).
		Where("user1_id = ? AND user2_id = ?", u1, u2).
		Delete(&dbsql.Friendship{})
	if res.Error != nil {
		return dbsql.Translate(res.Error, "delete friendship", "friendship")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("friendship not found")
	}
	return nil
}

func (r *friendRepository) UserExists(ctx context.Context, userID uint64) (bool, error) {
	var count int64
	err := dbsql.Conn(ctx, r.db).Model(&dbsql.User{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return false, dbsql.Translate(err, "check user", "user")
	}
	return count > 0, nil
}

// LockPair takes row locks on both users in id order and returns the ids
// that exist. Concurrent requests between the same pair serialize on it.
func (r *friendRepository) LockPair(ctx context.Context, userA, userB uint64) ([]uint64, error) {
	u1, u2 := dbsql.OrderedPair(userA, userB)
	var ids []uint64
	err := dbsql.Conn(ctx, r.db).Model(&dbsql.User{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id IN ?", []uint64{u1, u2}).
		Order("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, dbsql.Translate(err, "lock users", "user")
	}
	return ids, nil
}
