package stream

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pinboard/internal/apperr"
	"pinboard/internal/dbsql"
	"pinboard/internal/metrics"
)

type mockStreamRepo struct{ mock.Mock }

func (m *mockStreamRepo) CreateStream(ctx context.Context, stream *dbsql.FollowStream) error {
	return m.Called(ctx, stream).Error(0)
}

func (m *mockStreamRepo) GetStream(ctx context.Context, streamID uint64) (*dbsql.FollowStream, error) {
	args := m.Called(ctx, streamID)
	stream, _ := args.Get(0).(*dbsql.FollowStream)
	return stream, args.Error(1)
}

func (m *mockStreamRepo) ListStreams(ctx context.Context, userID uint64) ([]*dbsql.FollowStream, error) {
	args := m.Called(ctx, userID)
	streams, _ := args.Get(0).([]*dbsql.FollowStream)
	return streams, args.Error(1)
}

func (m *mockStreamRepo) DeleteStream(ctx context.Context, streamID uint64) error {
	return m.Called(ctx, streamID).Error(0)
}

func (m *mockStreamRepo) AddBoard(ctx context.Context, streamID, boardID uint64) error {
	return m.Called(ctx, streamID, boardID).Error(0)
}

func (m *mockStreamRepo) RemoveBoard(ctx context.Context, streamID, boardID uint64) error {
	return m.Called(ctx, streamID, boardID).Error(0)
}

func (m *mockStreamRepo) ListBoards(ctx context.Context, streamID uint64) ([]*dbsql.Board, error) {
	args := m.Called(ctx, streamID)
	boards, _ := args.Get(0).([]*dbsql.Board)
	return boards, args.Error(1)
}

func (m *mockStreamRepo) FeedPins(ctx context.Context, streamID uint64, offset, limit int) ([]*dbsql.Pin, int64, error) {
	args := m.Called(ctx, streamID, offset, limit)
	pins, _ := args.Get(0).([]*dbsql.Pin)
	return pins, args.Get(1).(int64), args.Error(2)
}

func (m *mockStreamRepo) IsFollowing(ctx context.Context, userID, boardID uint64) (bool, error) {
	args := m.Called(ctx, userID, boardID)
	return args.Bool(0), args.Error(1)
}

func (m *mockStreamRepo) UnfollowBoard(ctx context.Context, userID, boardID uint64) (int64, error) {
	args := m.Called(ctx, userID, boardID)
	return args.Get(0).(int64), args.Error(1)
}

type mockBoards struct{ mock.Mock }

func (m *mockBoards) GetBoard(ctx context.Context, boardID uint64) (*dbsql.Board, error) {
	args := m.Called(ctx, boardID)
	board, _ := args.Get(0).(*dbsql.Board)
	return board, args.Error(1)
}

func newTestService() (StreamService, *mockStreamRepo, *mockBoards) {
	repo := &mockStreamRepo{}
	boards := &mockBoards{}
	return NewStreamService(repo, boards, 20, 100, metrics.Nop{}), repo, boards
}

var ownedStream = &dbsql.FollowStream{StreamID: 1, UserID: 10, Name: "Design"}

func TestStreamService_CreateStream(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	repo.On("CreateStream", ctx, mock.MatchedBy(func(s *dbsql.FollowStream) bool {
		return s.Name == "Design" && s.UserID == 10
	})).Return(nil).Once()

	stream, err := svc.CreateStream(ctx, 10, "  Design ")
	require.NoError(t, err)
	assert.Equal(t, "Design", stream.Name)

	_, err = svc.CreateStream(ctx, 10, "")
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
	repo.AssertExpectations(t)
}

func TestStreamService_OwnerOnly(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(StreamService) error
	}{
		{name: "get", call: func(s StreamService) error { _, err := s.GetStream(ctx, 99, 1); return err }},
		{name: "delete", call: func(s StreamService) error { return s.DeleteStream(ctx, 99, 1) }},
		{name: "add board", call: func(s StreamService) error { return s.AddBoard(ctx, 99, 1, 5) }},
		{name: "remove board", call: func(s StreamService) error { return s.RemoveBoard(ctx, 99, 1, 5) }},
		{name: "list boards", call: func(s StreamService) error { _, err := s.ListStreamBoards(ctx, 99, 1); return err }},
		{name: "feed", call: func(s StreamService) error { _, err := s.StreamFeed(ctx, 99, 1, Page{}); return err }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, _ := newTestService()
			repo.On("GetStream", ctx, uint64(1)).Return(ownedStream, nil)

			err := tc.call(svc)
			require.ErrorIs(t, err, ErrNotStreamOwner)
			repo.AssertExpectations(t)
		})
	}
}

func TestStreamService_AddBoard(t *testing.T) {
	ctx := context.Background()

	t.Run("adds existing board", func(t *testing.T) {
		svc, repo, boards := newTestService()
		repo.On("GetStream", ctx, uint64(1)).Return(ownedStream, nil)
		boards.On("GetBoard", ctx, uint64(5)).Return(&dbsql.Board{BoardID: 5}, nil)
		repo.On("AddBoard", ctx, uint64(1), uint64(5)).Return(nil).Twice()

		require.NoError(t, svc.AddBoard(ctx, 10, 1, 5))
		// idempotent at the repository level
		require.NoError(t, svc.AddBoard(ctx, 10, 1, 5))
		repo.AssertExpectations(t)
	})

	t.Run("missing board", func(t *testing.T) {
		svc, repo, boards := newTestService()
		repo.On("GetStream", ctx, uint64(1)).Return(ownedStream, nil)
		boards.On("GetBoard", ctx, uint64(6)).Return(nil, apperr.NotFound("board not found"))

		err := svc.AddBoard(ctx, 10, 1, 6)
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
		repo.AssertNotCalled(t, "AddBoard", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStreamService_StreamFeed(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		page       Page
		wantOffset int
		wantLimit  int
		wantErr    bool
	}{
		{name: "defaults", page: Page{}, wantOffset: 0, wantLimit: 20},
		{name: "third page", page: Page{Page: 3, Limit: 10}, wantOffset: 20, wantLimit: 10},
		{name: "limit capped", page: Page{Page: 1, Limit: 1000}, wantOffset: 0, wantLimit: 100},
		{name: "negative page", page: Page{Page: -1}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, _ := newTestService()
			if tc.wantErr {
				_, err := svc.StreamFeed(ctx, 10, 1, tc.page)
				assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
				return
			}
			repo.On("GetStream", ctx, uint64(1)).Return(ownedStream, nil)
			repo.On("FeedPins", ctx, uint64(1), tc.wantOffset, tc.wantLimit).
				Return([]*dbsql.Pin{{PinID: 2}, {PinID: 1}}, int64(42), nil)

			feed, err := svc.StreamFeed(ctx, 10, 1, tc.page)
			require.NoError(t, err)
			assert.Len(t, feed.Pins, 2)
			assert.Equal(t, int64(42), feed.Total)
			assert.Equal(t, tc.wantLimit, feed.Page.Limit)
			repo.AssertExpectations(t)
		})
	}
}

func TestStreamService_FollowStatusAndUnfollow(t *testing.T) {
	ctx := context.Background()
	svc, repo, boards := newTestService()
	boards.On("GetBoard", ctx, uint64(5)).Return(&dbsql.Board{BoardID: 5}, nil)

	repo.On("IsFollowing", ctx, uint64(10), uint64(5)).Return(true, nil).Once()
	following, err := svc.FollowStatus(ctx, 10, 5)
	require.NoError(t, err)
	assert.True(t, following)

	repo.On("UnfollowBoard", ctx, uint64(10), uint64(5)).Return(int64(2), nil).Once()
	require.NoError(t, svc.Unfollow(ctx, 10, 5))

	repo.On("UnfollowBoard", ctx, uint64(10), uint64(5)).Return(int64(0), nil).Once()
	require.ErrorIs(t, svc.Unfollow(ctx, 10, 5), ErrNotFollowing)
	repo.AssertExpectations(t)
}
