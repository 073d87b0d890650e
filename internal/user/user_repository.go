package user

import (
	"context"

	"gorm.io/gorm"

	"pinboard/internal/dbsql"
)

// UserRepository is the persistence boundary for accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user *dbsql.User) error
	GetUserByID(ctx context.Context, userID uint64) (*dbsql.User, error)
	GetUserByUsername(ctx context.Context, username string) (*dbsql.User, error)
	UpdateUser(ctx context.Context, user *dbsql.User) error
	CheckUserExists(ctx context.Context, username string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbsql.User) error {
	err := dbsql.Conn(ctx, r.db).Create(user).Error
	return dbsql.Translate(err, "create user", "username")
}

func (r *userRepository) GetUserByID(ctx context.Context, userID uint64) (*dbsql.User, error) {
	var user dbsql.User
	err := dbsql.Conn(ctx, r.db).Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		return nil, dbsql.Translate(err, "get user", "user")
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*dbsql.User, error) {
	var user dbsql.User
	err := dbsql.Conn(ctx, r.db).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, dbsql.Translate(err, "get user", "user")
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *dbsql.User) error {
	err := dbsql.Conn(ctx, r.db).Save(user).Error
	return dbsql.Translate(err, "update user", "user")
}

func (r *userRepository) CheckUserExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := dbsql.Conn(ctx, r.db).Model(&dbsql.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, dbsql.Translate(err, "check username", "user")
	}
	return count > 0, nil
}
