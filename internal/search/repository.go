package search

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pinboard/internal/dbsql"
)

// Repins always point at the root, so a pin's root is its origin when set.
const rootPinExpr = "COALESCE(pins.origin_pin_id, pins.pin_id)"

var sortExprs = map[string]string{
	SortLikes:    "(SELECT COUNT(*) FROM likes WHERE likes.pin_id = " + rootPinExpr + ")",
	SortRepins:   "(SELECT COUNT(*) FROM pins AS repins WHERE repins.origin_pin_id = " + rootPinExpr + ")",
	SortComments: "(SELECT COUNT(*) FROM comments WHERE comments.pin_id = pins.pin_id)",
}

// PinQuery selects pins whose title or tags match Pattern. Pattern is an
// escaped, lower-cased LIKE pattern.
type PinQuery struct {
	Pattern  string
	TagsOnly bool
	SortBy   string
	Offset   int
	Limit    int
}

type SearchRepository interface {
	SearchPins(ctx context.Context, q PinQuery) ([]*dbsql.Pin, int64, error)
	SearchBoards(ctx context.Context, pattern string, offset, limit int) ([]*dbsql.Board, int64, error)
	SearchUsers(ctx context.Context, pattern string, offset, limit int) ([]*dbsql.User, int64, error)
}

type searchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) SearchPins(ctx context.Context, q PinQuery) ([]*dbsql.Pin, int64, error) {
	query := dbsql.Conn(ctx, r.db).
		Model(&dbsql.Pin{}).
		Joins("JOIN pictures ON pictures.picture_id = pins.picture_id")
	if q.TagsOnly {
		query = query.Where("LOWER(pictures.tags) LIKE ?", q.Pattern)
	} else {
		query = query.Where("LOWER(pins.title) LIKE ? OR LOWER(pictures.tags) LIKE ?", q.Pattern, q.Pattern)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pin matches: %w", err)
	}

	find := query.Session(&gorm.Session{}).Select("pins.*")
	if expr, ok := sortExprs[q.SortBy]; ok {
		find = find.Order(expr + " DESC")
	}

	var pins []*dbsql.Pin
	err := find.
		Preload("Picture").
		Order("pins.created_at DESC").
		Order("pins.pin_id DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&pins).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search pins: %w", err)
	}
	return pins, total, nil
}

func (r *searchRepository) SearchBoards(ctx context.Context, pattern string, offset, limit int) ([]*dbsql.Board, int64, error) {
	query := dbsql.Conn(ctx, r.db).
		Model(&dbsql.Board{}).
		Where("LOWER(board_name) LIKE ? OR LOWER(descriptor) LIKE ?", pattern, pattern)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count board matches: %w", err)
	}

	var boards []*dbsql.Board
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Order("board_id DESC").
		Offset(offset).
		Limit(limit).
		Find(&boards).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search boards: %w", err)
	}
	return boards, total, nil
}

func (r *searchRepository) SearchUsers(ctx context.Context, pattern string, offset, limit int) ([]*dbsql.User, int64, error) {
	query := dbsql.Conn(ctx, r.db).
		Model(&dbsql.User{}).
		Where("LOWER(username) LIKE ?", pattern)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count user matches: %w", err)
	}

	var users []*dbsql.User
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Order("user_id DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search users: %w", err)
	}
	return users, total, nil
}
