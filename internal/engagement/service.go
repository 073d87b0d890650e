package engagement

import (
	"context"
	"strings"

	"pinboard/internal/apperr"
	"pinboard/internal/dbsql"
	"pinboard/internal/metrics"
)

var (
	ErrAlreadyLiked     = apperr.New(apperr.KindConflict, "pin already liked")
	ErrNotLiked         = apperr.New(apperr.KindNotFound, "pin not liked")
	ErrCommentsDisabled = apperr.New(apperr.KindForbidden, "comments are disabled on this board")
	ErrNotFriend        = apperr.New(apperr.KindForbidden, "only friends of the board owner can comment")
)

// PinResolver looks up pins, their lineage root and their board.
type PinResolver interface {
	GetPin(ctx context.Context, pinID uint64) (*dbsql.Pin, error)
	ResolveRoot(ctx context.Context, pin *dbsql.Pin) (*dbsql.Pin, error)
	GetBoard(ctx context.Context, boardID uint64) (*dbsql.Board, error)
}

type FriendChecker interface {
	IsFriend(ctx context.Context, userA, userB uint64) (bool, error)
}

type EngagementService interface {
	Like(ctx context.Context, userID, pinID uint64) (*dbsql.Like, error)
	Unlike(ctx context.Context, userID, pinID uint64) error
	LikeCount(ctx context.Context, pinID uint64) (int64, error)
	IsLiked(ctx context.Context, userID, pinID uint64) (bool, error)
	ListLikers(ctx context.Context, pinID uint64) ([]*dbsql.User, error)
	Comment(ctx context.Context, userID, pinID uint64, content string) (*dbsql.Comment, error)
	ListComments(ctx context.Context, pinID uint64) ([]*dbsql.Comment, error)
}

type engagementService struct {
	likes    LikeRepository
	comments CommentRepository
	pins     PinResolver
	friends  FriendChecker
	tx       dbsql.Transactor
	events   metrics.Recorder
}

func NewEngagementService(
	likes LikeRepository,
	comments CommentRepository,
	pins PinResolver,
	friends FriendChecker,
	tx dbsql.Transactor,
	events metrics.Recorder,
) EngagementService {
	return &engagementService{
		likes:    likes,
		comments: comments,
		pins:     pins,
		friends:  friends,
		tx:       tx,
		events:   events,
	}
}

func (s *engagementService) root(ctx context.Context, pinID uint64) (*dbsql.Pin, error) {
	pin, err := s.pins.GetPin(ctx, pinID)
	if err != nil {
		return nil, err
	}
	return s.pins.ResolveRoot(ctx, pin)
}

// Like records userID's like on the root of pinID's lineage.
func (s *engagementService) Like(ctx context.Context, userID, pinID uint64) (*dbsql.Like, error) {
	root, err := s.root(ctx, pinID)
	if err != nil {
		return nil, err
	}

	like := &dbsql.Like{UserID: userID, PinID: root.PinID}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.likes.LikeExists(ctx, userID, root.PinID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyLiked
		}
		return s.likes.CreateLike(ctx, like)
	})
	if err != nil {
		// a concurrent insert loses on the unique index
		if apperr.Is(err, apperr.KindConflict) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}

	s.events.RecordEvent(metrics.EventLike)
	return like, nil
}

func (s *engagementService) Unlike(ctx context.Context, userID, pinID uint64) error {
	root, err := s.root(ctx, pinID)
	if err != nil {
		return err
	}

	if err := s.likes.DeleteLike(ctx, userID, root.PinID); err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return ErrNotLiked
		}
		return err
	}

	s.events.RecordEvent(metrics.EventUnlike)
	return nil
}

func (s *engagementService) LikeCount(ctx context.Context, pinID uint64) (int64, error) {
	root, err := s.root(ctx, pinID)
	if err != nil {
		return 0, err
	}
	return s.likes.CountLikes(ctx, root.PinID)
}

func (s *engagementService) IsLiked(ctx context.Context, userID, pinID uint64) (bool, error) {
	root, err := s.root(ctx, pinID)
	if err != nil {
		return false, err
	}
	return s.likes.LikeExists(ctx, userID, root.PinID)
}

func (s *engagementService) ListLikers(ctx context.Context, pinID uint64) ([]*dbsql.User, error) {
	root, err := s.root(ctx, pinID)
	if err != nil {
		return nil, err
	}
	return s.likes.ListLikers(ctx, root.PinID)
}

// Comment attaches content to the exact pin row. The board owner may always
// comment; others must be friends of the owner on a board that allows it.
func (s *engagementService) Comment(ctx context.Context, userID, pinID uint64, content string) (*dbsql.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.InvalidInput("comment content is required")
	}

	pin, err := s.pins.GetPin(ctx, pinID)
	if err != nil {
		return nil, err
	}
	board, err := s.pins.GetBoard(ctx, pin.BoardID)
	if err != nil {
		return nil, err
	}

	if board.OwnerID != userID {
		if !board.AllowFriendsComment {
			return nil, ErrCommentsDisabled
		}
		friends, err := s.friends.IsFriend(ctx, userID, board.OwnerID)
		if err != nil {
			return nil, err
		}
		if !friends {
			return nil, ErrNotFriend
		}
	}

	comment := &dbsql.Comment{UserID: userID, PinID: pin.PinID, Content: content}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.events.RecordEvent(metrics.EventComment)
	return comment, nil
}

func (s *engagementService) ListComments(ctx context.Context, pinID uint64) ([]*dbsql.Comment, error) {
	if _, err := s.pins.GetPin(ctx, pinID); err != nil {
		return nil, err
	}
	return s.comments.ListComments(ctx, pinID)
}
