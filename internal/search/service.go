package search

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"pinboard/internal/apperr"
	"pinboard/internal/dbsql"
)

const (
	KindPins   = "pins"
	KindBoards = "boards"
	KindUsers  = "users"
	KindTags   = "tags"
)

const (
	SortTimestamp = "timestamp"
	SortLikes     = "likes"
	SortComments  = "comments"
	SortRepins    = "repins"
)

var (
	kinds       = []string{KindPins, KindBoards, KindUsers, KindTags}
	pinSorts    = []string{SortTimestamp, SortLikes, SortComments, SortRepins}
	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

type Query struct {
	Kind   string
	Text   string
	SortBy string
	Page   int
	Limit  int
}

// Result holds one page of matches. Only the slice for Kind is set.
type Result struct {
	Kind   string
	Pins   []*dbsql.Pin
	Boards []*dbsql.Board
	Users  []*dbsql.User
	Total  int64
	Page   int
	Limit  int
}

type SearchService interface {
	Search(ctx context.Context, q Query) (*Result, error)
}

type searchService struct {
	repo         SearchRepository
	defaultLimit int
	maxLimit     int
}

func NewSearchService(repo SearchRepository, defaultLimit, maxLimit int) SearchService {
	return &searchService{repo: repo, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// LikePattern turns free text into a case-insensitive substring pattern with
// LIKE wildcards escaped.
func LikePattern(text string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
}

func (s *searchService) Search(ctx context.Context, q Query) (*Result, error) {
	q, err := s.normalize(q)
	if err != nil {
		return nil, err
	}

	res := &Result{Kind: q.Kind, Page: q.Page, Limit: q.Limit}
	pattern := LikePattern(q.Text)
	offset := (q.Page - 1) * q.Limit

	switch q.Kind {
	case KindPins, KindTags:
		res.Pins, res.Total, err = s.repo.SearchPins(ctx, PinQuery{
			Pattern:  pattern,
			TagsOnly: q.Kind == KindTags,
			SortBy:   q.SortBy,
			Offset:   offset,
			Limit:    q.Limit,
		})
	case KindBoards:
		res.Boards, res.Total, err = s.repo.SearchBoards(ctx, pattern, offset, q.Limit)
	case KindUsers:
		res.Users, res.Total, err = s.repo.SearchUsers(ctx, pattern, offset, q.Limit)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *searchService) normalize(q Query) (Query, error) {
	q.Kind = strings.ToLower(strings.TrimSpace(q.Kind))
	if !lo.Contains(kinds, q.Kind) {
		return Query{}, apperr.InvalidInput("unknown search kind %q", q.Kind)
	}

	q.Text = strings.TrimSpace(q.Text)
	if q.Text == "" {
		return Query{}, apperr.InvalidInput("search query is required")
	}

	q.SortBy = strings.ToLower(strings.TrimSpace(q.SortBy))
	switch q.SortBy {
	case "", "time":
		q.SortBy = SortTimestamp
	}
	if q.Kind == KindBoards || q.Kind == KindUsers {
		if q.SortBy != SortTimestamp {
			return Query{}, apperr.InvalidInput("%s can only be sorted by timestamp", q.Kind)
		}
	} else if !lo.Contains(pinSorts, q.SortBy) {
		return Query{}, apperr.InvalidInput("unknown sort_by %q", q.SortBy)
	}

	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = s.defaultLimit
	}
	if q.Page < 1 || q.Limit < 1 {
		return Query{}, apperr.InvalidInput("page and limit must be positive")
	}
	if q.Limit > s.maxLimit {
		q.Limit = s.maxLimit
	}
	return q, nil
}
