package user

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinboard/internal/apperr"
	"pinboard/internal/common"
	"pinboard/internal/config"
	"pinboard/internal/dbsql"
	"pinboard/internal/metrics"
)

func newTestIssuer() *common.TokenIssuer {
	return common.NewTokenIssuer(&config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1}})
}

func TestUserService_RegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUserRepo, newTestIssuer(), metrics.Nop{})
	ctx := context.Background()

	tests := []struct {
		name        string
		in          RegisterInput
		setup       func()
		wantErr     bool
		wantKind    apperr.Kind
		errContains string
	}{
		{
			name: "success",
			in:   RegisterInput{Username: "alice", Email: "Alice@Example.com", Password: "Password123", ProfileInfo: "I pin maps"},
			setup: func() {
				mockUserRepo.EXPECT().CheckUserExists(ctx, "alice").Return(false, nil)
				mockUserRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, u *dbsql.User) error {
						u.UserID = 1
						return nil
					})
			},
		},
		{
			name: "duplicate username",
			in:   RegisterInput{Username: "bob", Email: "bob@example.com", Password: "Password123"},
			setup: func() {
				mockUserRepo.EXPECT().CheckUserExists(ctx, "bob").Return(true, nil)
			},
			wantErr:     true,
			wantKind:    apperr.KindConflict,
			errContains: "exists",
		},
		{
			name:        "invalid username",
			in:          RegisterInput{Username: "!", Email: "x@y.com", Password: "Password123"},
			setup:       func() {},
			wantErr:     true,
			wantKind:    apperr.KindInvalidInput,
			errContains: "username",
		},
		{
			name:        "invalid email",
			in:          RegisterInput{Username: "alicegood", Email: "bademail", Password: "Password123"},
			setup:       func() {},
			wantErr:     true,
			wantKind:    apperr.KindInvalidInput,
			errContains: "email",
		},
		{
			name:        "invalid password",
			in:          RegisterInput{Username: "alicia", Email: "alic@g.com", Password: "short"},
			setup:       func() {},
			wantErr:     true,
			wantKind:    apperr.KindInvalidInput,
			errContains: "password",
		},
		{
			name: "repo failure exist check",
			in:   RegisterInput{Username: "alicefail", Email: "alice@fail.com", Password: "Password123"},
			setup: func() {
				mockUserRepo.EXPECT().CheckUserExists(ctx, "alicefail").Return(false, errors.New("db is down"))
			},
			wantErr:     true,
			wantKind:    apperr.KindInternal,
			errContains: "db is down",
		},
		{
			name: "lost race on unique index",
			in:   RegisterInput{Username: "alicefail2", Email: "alice2@fail.com", Password: "Password123"},
			setup: func() {
				mockUserRepo.EXPECT().CheckUserExists(ctx, "alicefail2").Return(false, nil)
				mockUserRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(apperr.Conflict("username already exists"))
			},
			wantErr:  true,
			wantKind: apperr.KindConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			user, token, err := svc.RegisterUser(ctx, tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, apperr.KindOf(err))
				if tc.errContains != "" {
					require.Contains(t, err.Error(), tc.errContains)
				}
				require.Nil(t, user)
				require.Empty(t, token)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
			require.NotEmpty(t, token)
			require.Equal(t, tc.in.Username, user.Username)
			require.Equal(t, "alice@example.com", user.Email)
			require.NoError(t, common.CheckPassword(tc.in.Password, user.PasswordHash))
		})
	}
}

func TestUserService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	issuer := newTestIssuer()
	svc := NewUserService(mockUserRepo, issuer, metrics.Nop{})
	ctx := context.Background()

	hash, err := common.HashPassword("GoodPassword1")
	require.NoError(t, err)
	bob := &dbsql.User{UserID: 2, Username: "bob", PasswordHash: hash}

	tests := []struct {
		name     string
		username string
		password string
		setup    func()
		wantKind *apperr.Kind
	}{
		{
			name:     "success",
			username: "bob",
			password: "GoodPassword1",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "bob").Return(bob, nil)
			},
		},
		{
			name:     "bad password",
			username: "bob",
			password: "WrongPassword",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "bob").Return(bob, nil)
			},
			wantKind: kindPtr(apperr.KindUnauthenticated),
		},
		{
			name:     "corrupt stored hash is not a credential failure",
			username: "carol",
			password: "GoodPassword1",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "carol").
					Return(&dbsql.User{UserID: 3, Username: "carol", PasswordHash: "plaintext"}, nil)
			},
			wantKind: kindPtr(apperr.KindInternal),
		},
		{
			name:     "unknown user looks like bad credentials",
			username: "nobody",
			password: "anything",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername(ctx, "nobody").Return(nil, apperr.NotFound("user not found"))
			},
			wantKind: kindPtr(apperr.KindUnauthenticated),
		},
		{
			name:     "missing fields",
			username: "",
			password: "",
			setup:    func() {},
			wantKind: kindPtr(apperr.KindInvalidInput),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			user, token, err := svc.LoginUser(ctx, tc.username, tc.password)
			if tc.wantKind != nil {
				require.Error(t, err)
				assert.Equal(t, *tc.wantKind, apperr.KindOf(err))
				require.Nil(t, user)
				require.Empty(t, token)
				return
			}
			require.NoError(t, err)
			claims, err := issuer.ValidToken(token)
			require.NoError(t, err)
			assert.Equal(t, bob.UserID, claims.UserID)
			assert.Equal(t, "bob", claims.Username)
		})
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUserRepo, newTestIssuer(), metrics.Nop{})
	ctx := context.Background()

	t.Run("updates only supplied fields", func(t *testing.T) {
		current := &dbsql.User{UserID: 1, Username: "alice", Email: "old@example.com", ProfileInfo: "old bio"}
		mockUserRepo.EXPECT().GetUserByID(ctx, uint64(1)).Return(current, nil)
		mockUserRepo.EXPECT().UpdateUser(ctx, current).Return(nil)

		bio := "new bio"
		user, err := svc.UpdateProfile(ctx, 1, ProfileUpdate{ProfileInfo: &bio})
		require.NoError(t, err)
		assert.Equal(t, "new bio", user.ProfileInfo)
		assert.Equal(t, "old@example.com", user.Email)
	})

	t.Run("password is rehashed", func(t *testing.T) {
		current := &dbsql.User{UserID: 1, Username: "alice", PasswordHash: "x"}
		mockUserRepo.EXPECT().GetUserByID(ctx, uint64(1)).Return(current, nil)
		mockUserRepo.EXPECT().UpdateUser(ctx, current).Return(nil)

		pw := "BrandNewPass1"
		user, err := svc.UpdateProfile(ctx, 1, ProfileUpdate{Password: &pw})
		require.NoError(t, err)
		require.NoError(t, common.CheckPassword(pw, user.PasswordHash))
	})

	t.Run("bad email is rejected before writing", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(ctx, uint64(1)).Return(&dbsql.User{UserID: 1}, nil)

		email := "nope"
		_, err := svc.UpdateProfile(ctx, 1, ProfileUpdate{Email: &email})
		assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
	})

	t.Run("missing user", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(ctx, uint64(42)).Return(nil, apperr.NotFound("user not found"))

		_, err := svc.UpdateProfile(ctx, 42, ProfileUpdate{})
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})
}

func kindPtr(k apperr.Kind) *apperr.Kind { return &k }
