package engagement

import (
	"context"

	"gorm.io/gorm"

	"pinboard/internal/apperr"
	"pinboard/internal/dbsql"
)

// LikeRepository stores likes. pinID is always a root pin.
type LikeRepository interface {
	CreateLike(ctx context.Context, like *dbsql.Like) error
	DeleteLike(ctx context.Context, userID, pinID uint64) error
	LikeExists(ctx context.Context, userID, pinID uint64) (bool, error)
	CountLikes(ctx context.Context, pinID uint64) (int64, error)
	ListLikers(ctx context.Context, pinID uint64) ([]*dbsql.User, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment *dbsql.Comment) error
	ListComments(ctx context.Context, pinID uint64) ([]*dbsql.Comment, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) CreateLike(ctx context.Context, like *dbsql.Like) error {
	err := dbsql.Conn(ctx, r.db).Create(like).Error
	return dbsql.Translate(err, "create like", "like")
}

func (r *likeRepository) DeleteLike(ctx context.Context, userID, pinID uint64) error {
	res := dbsql.Conn(ctx, r.db).
		Where("user_id = ? AND pin_id = ?", userID, pinID).
		Delete(&dbsql.Like{})
	if res.Error != nil {
		return dbsql.Translate(res.Error, "delete like", "like")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("like not found")
	}
	return nil
}

func (r *likeRepository) LikeExists(ctx context.Context, userID, pinID uint64) (bool, error) {
	var count int64
	err := dbsql.Conn(ctx, r.db).Model(&dbsql.Like{}).
		Where("user_id = ? AND pin_id = ?", userID, pinID).
		Count(&count).Error
	if err != nil {
		return false, dbsql.Translate(err, "check like", "like")
	}
	return count > 0, nil
}

func (r *likeRepository) CountLikes(ctx context.Context, pinID uint64) (int64, error) {
	var count int64
	err := dbsql.Conn(ctx, r.db).Model(&dbsql.Like{}).
		Where("pin_id = ?", pinID).
		Count(&count).Error
	if err != nil {
		return 0, dbsql.Translate(err, "count likes", "like")
	}
	return count, nil
}

func (r *likeRepository) ListLikers(ctx context.Context, pinID uint64) ([]*dbsql.User, error) {
	var users []*dbsql.User
	err := dbsql.Conn(ctx, r.db).
		Select("users.*").
		Joins("JOIN likes ON likes.user_id = users.user_id").
		Where("likes.pin_id = ?", pinID).
		Order("likes.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, dbsql.Translate(err, "list likers", "user")
	}
	return users, nil
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *dbsql.Comment) error {
	err := dbsql.Conn(ctx, r.db).Omit("User", "Pin").Create(comment).Error
	return dbsql.Translate(err, "create comment", "comment")
}

func (r *commentRepository) ListComments(ctx context.Context, pinID uint64) ([]*dbsql.Comment, error) {
	var comments []*dbsql.Comment
	err := dbsql.Conn(ctx, r.db).
		Preload("User").
		Where("pin_id = ?", pinID).
		Order("created_at DESC").
		Order("comment_id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, dbsql.Translate(err, "list comments", "comment")
	}
	return comments, nil
}
