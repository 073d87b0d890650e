package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinboard/internal/apperr"
	"pinboard/internal/common"
	"pinboard/internal/dbsql"
)

func newTestRouter(t *testing.T) (*mux.Router, *MockUserService, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockSvc := NewMockUserService(ctrl)

	issuer := newTestIssuer()
	token, err := issuer.GenerateToken(1, "alice")
	require.NoError(t, err)

	r := mux.NewRouter()
	NewHandler(mockSvc, common.NewAuthenticator(issuer)).RegisterRoutes(r)
	return r, mockSvc, token
}

func TestHandler_Register(t *testing.T) {
	r, mockSvc, _ := newTestRouter(t)

	tests := []struct {
		name     string
		body     string
		setup    func()
		wantCode int
	}{
		{
			name: "happy path",
			body: `{"username":"alice","email":"a@x.com","password":"pwgood123"}`,
			setup: func() {
				mockSvc.EXPECT().RegisterUser(gomock.Any(), RegisterInput{Username: "alice", Email: "a@x.com", Password: "pwgood123"}).
					Return(&dbsql.User{UserID: 2, Username: "alice", Email: "a@x.com"}, "tok", nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "validation error",
			body: `{"username":"!","password":""}`,
			setup: func() {
				mockSvc.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
					Return(nil, "", apperr.InvalidInput("invalid username"))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duplicate",
			body: `{"username":"bob","password":"pwgood123"}`,
			setup: func() {
				mockSvc.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
					Return(nil, "", apperr.Conflict("username already exists"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name:     "malformed body",
			body:     `{`,
			setup:    func() {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(tc.body)))
			require.Equal(t, tc.wantCode, rec.Code)

			if tc.wantCode == http.StatusCreated {
				var resp AuthResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "tok", resp.Token)
				assert.Equal(t, uint64(2), resp.User.UserID)
				assert.Equal(t, "a@x.com", resp.User.Email)
			}
		})
	}
}

func TestHandler_Login(t *testing.T) {
	r, mockSvc, _ := newTestRouter(t)

	mockSvc.EXPECT().LoginUser(gomock.Any(), "alice", "wrong").Return(nil, "", ErrInvalidCredentials)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"username":"alice","password":"wrong"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Me(t *testing.T) {
	r, mockSvc, token := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	mockSvc.EXPECT().GetProfile(gomock.Any(), uint64(1)).Return(&dbsql.User{UserID: 1, Username: "alice", Email: "a@x.com"}, nil)
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a@x.com", resp.Email)
}

func TestHandler_UpdateMe(t *testing.T) {
	r, mockSvc, token := newTestRouter(t)

	bio := "landscapes only"
	mockSvc.EXPECT().UpdateProfile(gomock.Any(), uint64(1), ProfileUpdate{ProfileInfo: &bio}).
		Return(&dbsql.User{UserID: 1, Username: "alice", ProfileInfo: bio}, nil)

	req := httptest.NewRequest(http.MethodPut, "/users/me", strings.NewReader(`{"profile_info":"landscapes only"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "landscapes only")
}

func TestHandler_GetUser(t *testing.T) {
	r, mockSvc, _ := newTestRouter(t)

	mockSvc.EXPECT().GetProfile(gomock.Any(), uint64(5)).Return(&dbsql.User{UserID: 5, Username: "erin", Email: "secret@x.com"}, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret@x.com")

	mockSvc.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, apperr.NotFound("user not found"))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/by-username/ghost", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
