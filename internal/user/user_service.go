package user

import (
	"context"
	"errors"
	"strings"

	"pinboard/internal/apperr"
	"pinboard/internal/common"
	"pinboard/internal/dbsql"
	"pinboard/internal/metrics"
)

var ErrInvalidCredentials = apperr.New(apperr.KindUnauthenticated, "invalid username or password")

// TokenGenerator issues access tokens for authenticated users.
type TokenGenerator interface {
	GenerateToken(userID uint64, username string) (string, error)
}

type RegisterInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	ProfileInfo string `json:"profile_info"`
}

// ProfileUpdate carries the fields a user may change on their own account.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Email       *string `json:"email"`
	ProfileInfo *string `json:"profile_info"`
	Password    *string `json:"password"`
}

type UserService interface {
	RegisterUser(ctx context.Context, in RegisterInput) (*dbsql.User, string, error)
	LoginUser(ctx context.Context, username, password string) (*dbsql.User, string, error)
	GetProfile(ctx context.Context, userID uint64) (*dbsql.User, error)
	GetByUsername(ctx context.Context, username string) (*dbsql.User, error)
	UpdateProfile(ctx context.Context, userID uint64, update ProfileUpdate) (*dbsql.User, error)
}

type userService struct {
	userRepo UserRepository
	tokens   TokenGenerator
	events   metrics.Recorder
}

func NewUserService(userRepo UserRepository, tokens TokenGenerator, events metrics.Recorder) UserService {
	return &userService{userRepo: userRepo, tokens: tokens, events: events}
}

func (s *userService) RegisterUser(ctx context.Context, in RegisterInput) (*dbsql.User, string, error) {
	username := strings.TrimSpace(in.Username)
	if err := common.ValidateUsername(username); err != nil {
		return nil, "", err
	}
	if err := common.ValidateEmail(in.Email); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(in.Password); err != nil {
		return nil, "", err
	}

	exists, err := s.userRepo.CheckUserExists(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", apperr.Conflict("username already exists")
	}

	hashed, err := common.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &dbsql.User{
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hashed,
		ProfileInfo:  in.ProfileInfo,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return nil, "", err
	}

	s.events.RecordEvent(metrics.EventUserRegistered)
	return user, token, nil
}

func (s *userService) LoginUser(ctx context.Context, username, password string) (*dbsql.User, string, error) {
	if username == "" || password == "" {
		return nil, "", apperr.InvalidInput("username and password required")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, common.ErrPasswordMismatch) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uint64) (*dbsql.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*dbsql.User, error) {
	return s.userRepo.GetUserByUsername(ctx, username)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint64, update ProfileUpdate) (*dbsql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Email != nil {
		if err := common.ValidateEmail(*update.Email); err != nil {
			return nil, err
		}
		user.Email = strings.ToLower(strings.TrimSpace(*update.Email))
	}

	if update.ProfileInfo != nil {
		user.ProfileInfo = *update.ProfileInfo
	}

	if update.Password != nil {
		if err := common.ValidatePassword(*update.Password); err != nil {
			return nil, err
		}
		hashed, err := common.HashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
