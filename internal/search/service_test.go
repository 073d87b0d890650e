package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pinboard/internal/apperr"
	"pinboard/internal/dbsql"
)

type mockSearchRepo struct{ mock.Mock }

func (m *mockSearchRepo) SearchPins(ctx context.Context, q PinQuery) ([]*dbsql.Pin, int64, error) {
	args := m.Called(ctx, q)
	pins, _ := args.Get(0).([]*dbsql.Pin)
	return pins, args.Get(1).(int64), args.Error(2)
}

func (m *mockSearchRepo) SearchBoards(ctx context.Context, pattern string, offset, limit int) ([]*dbsql.Board, int64, error) {
	args := m.Called(ctx, pattern, offset, limit)
	boards, _ := args.Get(0).([]*dbsql.Board)
	return boards, args.Get(1).(int64), args.Error(2)
}

func (m *mockSearchRepo) SearchUsers(ctx context.Context, pattern string, offset, limit int) ([]*dbsql.User, int64, error) {
	args := m.Called(ctx, pattern, offset, limit)
	users, _ := args.Get(0).([]*dbsql.User)
	return users, args.Get(1).(int64), args.Error(2)
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Paris", want: "%paris%"},
		{in: "100%", want: `%100\%%`},
		{in: "snake_case", want: `%snake\_case%`},
		{in: `a\b`, want: `%a\\b%`},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, LikePattern(tc.in), tc.in)
	}
}

func TestSearchService_Validation(t *testing.T) {
	tests := []struct {
		name        string
		query       Query
		errContains string
	}{
		{name: "unknown kind", query: Query{Kind: "pictures", Text: "x"}, errContains: "unknown search kind"},
		{name: "empty query", query: Query{Kind: KindPins, Text: "  "}, errContains: "search query is required"},
		{name: "unknown pin sort", query: Query{Kind: KindPins, Text: "x", SortBy: "relevance"}, errContains: "unknown sort_by"},
		{name: "boards by likes", query: Query{Kind: KindBoards, Text: "x", SortBy: SortLikes}, errContains: "only be sorted by timestamp"},
		{name: "users by repins", query: Query{Kind: KindUsers, Text: "x", SortBy: SortRepins}, errContains: "only be sorted by timestamp"},
		{name: "negative page", query: Query{Kind: KindPins, Text: "x", Page: -2}, errContains: "must be positive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockSearchRepo{}
			svc := NewSearchService(repo, 20, 100)

			_, err := svc.Search(context.Background(), tc.query)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
			assert.Contains(t, err.Error(), tc.errContains)
			repo.AssertNotCalled(t, "SearchPins", mock.Anything, mock.Anything)
		})
	}
}

func TestSearchService_Pins(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		query Query
		want  PinQuery
	}{
		{
			name:  "defaults",
			query: Query{Kind: KindPins, Text: "Paris"},
			want:  PinQuery{Pattern: "%paris%", SortBy: SortTimestamp, Offset: 0, Limit: 20},
		},
		{
			name:  "tags sorted by likes",
			query: Query{Kind: KindTags, Text: "paris", SortBy: "LIKES", Page: 3, Limit: 10},
			want:  PinQuery{Pattern: "%paris%", TagsOnly: true, SortBy: SortLikes, Offset: 20, Limit: 10},
		},
		{
			name:  "time alias and capped limit",
			query: Query{Kind: KindPins, Text: "oak", SortBy: "time", Limit: 500},
			want:  PinQuery{Pattern: "%oak%", SortBy: SortTimestamp, Offset: 0, Limit: 100},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockSearchRepo{}
			svc := NewSearchService(repo, 20, 100)
			repo.On("SearchPins", ctx, tc.want).Return([]*dbsql.Pin{{PinID: 1}}, int64(1), nil).Once()

			res, err := svc.Search(ctx, tc.query)
			require.NoError(t, err)
			assert.Len(t, res.Pins, 1)
			assert.Equal(t, tc.want.Limit, res.Limit)
			repo.AssertExpectations(t)
		})
	}
}

func TestSearchService_BoardsAndUsers(t *testing.T) {
	ctx := context.Background()
	repo := &mockSearchRepo{}
	svc := NewSearchService(repo, 20, 100)

	repo.On("SearchBoards", ctx, "%kitchen%", 5, 5).Return([]*dbsql.Board{{BoardID: 3}}, int64(6), nil).Once()
	res, err := svc.Search(ctx, Query{Kind: KindBoards, Text: "Kitchen", Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Total)
	assert.Len(t, res.Boards, 1)
	assert.Nil(t, res.Pins)

	repo.On("SearchUsers", ctx, "%gus%", 0, 20).Return([]*dbsql.User{{UserID: 7}}, int64(1), nil).Once()
	res, err = svc.Search(ctx, Query{Kind: "Users", Text: "gus", SortBy: SortTimestamp})
	require.NoError(t, err)
	assert.Len(t, res.Users, 1)
	repo.AssertExpectations(t)
}
