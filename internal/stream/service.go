package stream

import (
	"context"
	"strings"

	"pinboard/internal/apperr"
	"pinboard/internal/dbsql"
	"pinboard/internal/metrics"
)

var (
	ErrNotStreamOwner = apperr.New(apperr.KindForbidden, "follow streams are private to their owner")
	ErrNotFollowing   = apperr.New(apperr.KindNotFound, "you are not following this board")
)

// BoardLookup confirms a board exists.
type BoardLookup interface {
	GetBoard(ctx context.Context, boardID uint64) (*dbsql.Board, error)
}

type Page struct {
	Page  int
	Limit int
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Feed struct {
	Pins  []*dbsql.Pin
	Total int64
	Page  Page
}

type StreamService interface {
	CreateStream(ctx context.Context, userID uint64, name string) (*dbsql.FollowStream, error)
	ListStreams(ctx context.Context, userID uint64) ([]*dbsql.FollowStream, error)
	GetStream(ctx context.Context, userID, streamID uint64) (*dbsql.FollowStream, error)
	DeleteStream(ctx context.Context, userID, streamID uint64) error
	AddBoard(ctx context.Context, userID, streamID, boardID uint64) error
	RemoveBoard(ctx context.Context, userID, streamID, boardID uint64) error
	ListStreamBoards(ctx context.Context, userID, streamID uint64) ([]*dbsql.Board, error)
	StreamFeed(ctx context.Context, userID, streamID uint64, page Page) (*Feed, error)
	FollowStatus(ctx context.Context, userID, boardID uint64) (bool, error)
	Unfollow(ctx context.Context, userID, boardID uint64) error
}

type streamService struct {
	streams      StreamRepository
	boards       BoardLookup
	defaultLimit int
	maxLimit     int
	events       metrics.Recorder
}

func NewStreamService(streams StreamRepository, boards BoardLookup, defaultLimit, maxLimit int, events metrics.Recorder) StreamService {
	return &streamService{
		streams:      streams,
		boards:       boards,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		events:       events,
	}
}

func (s *streamService) CreateStream(ctx context.Context, userID uint64, name string) (*dbsql.FollowStream, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.InvalidInput("stream name is required")
	}

	stream := &dbsql.FollowStream{Name: name, UserID: userID}
	if err := s.streams.CreateStream(ctx, stream); err != nil {
		return nil, err
	}

	s.events.RecordEvent(metrics.EventStreamCreated)
	return stream, nil
}

func (s *streamService) ListStreams(ctx context.Context, userID uint64) ([]*dbsql.FollowStream, error) {
	return s.streams.ListStreams(ctx, userID)
}

func (s *streamService) GetStream(ctx context.Context, userID, streamID uint64) (*dbsql.FollowStream, error) {
	stream, err := s.streams.GetStream(ctx, streamID)
	if err != nil {
		return nil, err
	}
	if stream.UserID != userID {
		return nil, ErrNotStreamOwner
	}
	return stream, nil
}

func (s *streamService) DeleteStream(ctx context.Context, userID, streamID uint64) error {
	if _, err := s.GetStream(ctx, userID, streamID); err != nil {
		return err
	}
	return s.streams.DeleteStream(ctx, streamID)
}

func (s *streamService) AddBoard(ctx context.Context, userID, streamID, boardID uint64) error {
	if _, err := s.GetStream(ctx, userID, streamID); err != nil {
		return err
	}
	if _, err := s.boards.GetBoard(ctx, boardID); err != nil {
		return err
	}
	return s.streams.AddBoard(ctx, streamID, boardID)
}

func (s *streamService) RemoveBoard(ctx context.Context, userID, streamID, boardID uint64) error {
	if _, err := s.GetStream(ctx, userID, streamID); err != nil {
		return err
	}
	return s.streams.RemoveBoard(ctx, streamID, boardID)
}

func (s *streamService) ListStreamBoards(ctx context.Context, userID, streamID uint64) ([]*dbsql.Board, error) {
	if _, err := s.GetStream(ctx, userID, streamID); err != nil {
		return nil, err
	}
	return s.streams.ListBoards(ctx, streamID)
}

func (s *streamService) StreamFeed(ctx context.Context, userID, streamID uint64, page Page) (*Feed, error) {
	page, err := s.normalize(page)
	if err != nil {
		return nil, err
	}
	if _, err := s.GetStream(ctx, userID, streamID); err != nil {
		return nil, err
	}

	pins, total, err := s.streams.FeedPins(ctx, streamID, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}
	return &Feed{Pins: pins, Total: total, Page: page}, nil
}

func (s *streamService) normalize(p Page) (Page, error) {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = s.defaultLimit
	}
	if p.Page < 1 || p.Limit < 1 {
		return Page{}, apperr.InvalidInput("page and limit must be positive")
	}
	if p.Limit > s.maxLimit {
		p.Limit = s.maxLimit
	}
	return p, nil
}

func (s *streamService) FollowStatus(ctx context.Context, userID, boardID uint64) (bool, error) {
	if _, err := s.boards.GetBoard(ctx, boardID); err != nil {
		return false, err
	}
	return s.streams.IsFollowing(ctx, userID, boardID)
}

func (s *streamService) Unfollow(ctx context.Context, userID, boardID uint64) error {
	if _, err := s.boards.GetBoard(ctx, boardID); err != nil {
		return err
	}
	removed, err := s.streams.UnfollowBoard(ctx, userID, boardID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNotFollowing
	}
	return nil
}
