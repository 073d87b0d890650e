package friend

import (
	"context"
	"time"

	"github.com/samber/lo"

	"pinboard/internal/apperr"
	"pinboard/internal/dbsql"
	"pinboard/internal/metrics"
)

var (
	ErrInvalidTarget  = apperr.New(apperr.KindInvalidInput, "invalid friend request target")
	ErrAlreadyFriends = apperr.New(apperr.KindConflict, "users are already friends")
	ErrRequestPending = apperr.New(apperr.KindConflict, "a pending friend request already exists")
	ErrNotReceiver    = apperr.New(apperr.KindForbidden, "only the receiver can respond to a friend request")
	ErrNotPending     = apperr.New(apperr.KindInvalidState, "friend request is not pending")
)

// RequestLists splits a user's requests into those awaiting their answer and
// those they sent.
type RequestLists struct {
	ReceivedPending []*dbsql.FriendshipRequest
	Sent            []*dbsql.FriendshipRequest
}

type FriendService interface {
	SendRequest(ctx context.Context, senderID, receiverID uint64) (*dbsql.FriendshipRequest, error)
	AcceptRequest(ctx context.Context, requestID, actorID uint64) (*dbsql.FriendshipRequest, error)
	RejectRequest(ctx context.Context, requestID, actorID uint64) (*dbsql.FriendshipRequest, error)
	ListRequests(ctx context.Context, userID uint64) (*RequestLists, error)
	ListFriends(ctx context.Context, userID uint64) ([]*dbsql.User, error)
	IsFriend(ctx context.Context, userA, userB uint64) (bool, error)
	RemoveFriend(ctx context.Context, userID, friendID uint64) error
}

type friendService struct {
	friendRepo FriendRepository
	tx         dbsql.Transactor
	events     metrics.Recorder
	now        func() time.Time
}

func NewFriendService(friendRepo FriendRepository, tx dbsql.Transactor, events metrics.Recorder) FriendService {
	return &friendService{friendRepo: friendRepo, tx: tx, events: events, now: time.Now}
}

func (s *friendService) SendRequest(ctx context.Context, senderID, receiverID uint64) (*dbsql.FriendshipRequest, error) {
	if receiverID == 0 || receiverID == senderID {
		return nil, ErrInvalidTarget
	}

	var req *dbsql.FriendshipRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		locked, err := s.friendRepo.LockPair(ctx, senderID, receiverID)
		if err != nil {
			return err
		}
		if !lo.Contains(locked, receiverID) {
			return ErrInvalidTarget
		}

		friends, err := s.friendRepo.FriendshipExists(ctx, senderID, receiverID)
		if err != nil {
			return err
		}
		if friends {
			return ErrAlreadyFriends
		}

		pending, err := s.friendRepo.PendingBetween(ctx, senderID, receiverID)
		if err != nil {
			return err
		}
		if pending != nil {
			return ErrRequestPending
		}

		req = &dbsql.FriendshipRequest{
			SenderID:   senderID,
			ReceiverID: receiverID,
			Status:     dbsql.RequestPending,
		}
		return s.friendRepo.CreateRequest(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	s.events.RecordEvent(metrics.EventFriendRequested)
	return req, nil
}

func (s *friendService) AcceptRequest(ctx context.Context, requestID, actorID uint64) (*dbsql.FriendshipRequest, error) {
	req, err := s.respond(ctx, requestID, actorID, dbsql.RequestAccepted)
	if err != nil {
		return nil, err
	}
	s.events.RecordEvent(metrics.EventFriendAccepted)
	return req, nil
}

func (s *friendService) RejectRequest(ctx context.Context, requestID, actorID uint64) (*dbsql.FriendshipRequest, error) {
	req, err := s.respond(ctx, requestID, actorID, dbsql.RequestRejected)
	if err != nil {
		return nil, err
	}
	s.events.RecordEvent(metrics.EventFriendRejected)
	return req, nil
}

// respond moves a pending request to status. Accepting also records the
// friendship in the same transaction.
func (s *friendService) respond(ctx context.Context, requestID, actorID uint64, status dbsql.RequestStatus) (*dbsql.FriendshipRequest, error) {
	var req *dbsql.FriendshipRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.friendRepo.GetRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if req.ReceiverID != actorID {
			return ErrNotReceiver
		}
		if !req.IsPending() {
			return ErrNotPending
		}

		now := s.now()
		req.Status = status
		req.ResponseTime = &now
		if err := s.friendRepo.UpdateRequest(ctx, req); err != nil {
			return err
		}

		if status == dbsql.RequestAccepted {
			return s.friendRepo.CreateFriendship(ctx, req.SenderID, req.ReceiverID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (s *friendService) ListRequests(ctx context.Context, userID uint64) (*RequestLists, error) {
	received, err := s.friendRepo.ListReceivedPending(ctx, userID)
	if err != nil {
		return nil, err
	}
	sent, err := s.friendRepo.ListSent(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &RequestLists{ReceivedPending: received, Sent: sent}, nil
}

func (s *friendService) ListFriends(ctx context.Context, userID uint64) ([]*dbsql.User, error) {
	exists, err := s.friendRepo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("user not found")
	}
	return s.friendRepo.ListFriends(ctx, userID)
}

func (s *friendService) IsFriend(ctx context.Context, userA, userB uint64) (bool, error) {
	if userA == userB {
		return false, nil
	}
	return s.friendRepo.FriendshipExists(ctx, userA, userB)
}

func (s *friendService) RemoveFriend(ctx context.Context, userID, friendID uint64) error {
	return s.friendRepo.DeleteFriendship(ctx, userID, friendID)
}
