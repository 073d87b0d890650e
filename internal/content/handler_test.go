package content

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinboard/internal/apperr"
	"pinboard/internal/common"
	"pinboard/internal/config"
	"pinboard/internal/dbsql"
)

type fakeService struct {
	ContentService

	createBoardFn   func(ctx context.Context, ownerID uint64, in BoardInput) (*dbsql.Board, error)
	deleteBoardFn   func(ctx context.Context, actorID, boardID uint64) error
	boardPinsFn     func(ctx context.Context, boardID uint64) ([]*dbsql.Pin, error)
	createPictureFn func(ctx context.Context, uploaderID uint64, in PictureInput) (*dbsql.Picture, error)
	getPinFn        func(ctx context.Context, pinID uint64) (*dbsql.Pin, error)
	repinFn         func(ctx context.Context, userID, sourcePinID uint64, in RepinInput) (*dbsql.Pin, error)
}

func (f *fakeService) CreateBoard(ctx context.Context, ownerID uint64, in BoardInput) (*dbsql.Board, error) {
	return f.createBoardFn(ctx, ownerID, in)
}

func (f *fakeService) DeleteBoard(ctx context.Context, actorID, boardID uint64) error {
	return f.deleteBoardFn(ctx, actorID, boardID)
}

func (f *fakeService) BoardPins(ctx context.Context, boardID uint64) ([]*dbsql.Pin, error) {
	return f.boardPinsFn(ctx, boardID)
}

func (f *fakeService) CreatePicture(ctx context.Context, uploaderID uint64, in PictureInput) (*dbsql.Picture, error) {
	return f.createPictureFn(ctx, uploaderID, in)
}

func (f *fakeService) GetPin(ctx context.Context, pinID uint64) (*dbsql.Pin, error) {
	return f.getPinFn(ctx, pinID)
}

func (f *fakeService) Repin(ctx context.Context, userID, sourcePinID uint64, in RepinInput) (*dbsql.Pin, error) {
	return f.repinFn(ctx, userID, sourcePinID, in)
}

func (f *fakeService) PictureURL(p *dbsql.Picture) string {
	if p == nil {
		return ""
	}
	if p.ExternalURL != "" {
		return p.ExternalURL
	}
	return "http://media.test/" + p.ImageLocator
}

func (f *fakeService) EffectivePictureURL(_ context.Context, p *dbsql.Pin) (string, error) {
	return f.PictureURL(p.Picture), nil
}

type fakeLikes struct {
	count int64
	liked map[uint64]bool
}

func (f *fakeLikes) LikeCount(context.Context, uint64) (int64, error) { return f.count, nil }

func (f *fakeLikes) IsLiked(_ context.Context, userID, _ uint64) (bool, error) {
	return f.liked[userID], nil
}

func newTestHandler(t *testing.T, svc *fakeService, likes LikeStats) (*mux.Router, string) {
	t.Helper()
	issuer := common.NewTokenIssuer(&config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1}})
	token, err := issuer.GenerateToken(1, "alice")
	require.NoError(t, err)

	r := mux.NewRouter()
	NewHandler(svc, likes, common.NewAuthenticator(issuer), 1<<20).RegisterRoutes(r)
	return r, token
}

func TestHandler_CreateBoard(t *testing.T) {
	var got BoardInput
	svc := &fakeService{
		createBoardFn: func(_ context.Context, ownerID uint64, in BoardInput) (*dbsql.Board, error) {
			got = in
			if in.Name == "" {
				return nil, apperr.InvalidInput("board name is required")
			}
			return &dbsql.Board{BoardID: 5, Name: in.Name, OwnerID: ownerID, AllowFriendsComment: true}, nil
		},
	}
	r, token := newTestHandler(t, svc, nil)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "created", body: `{"name":"Cats"}`, wantCode: http.StatusCreated},
		{name: "empty name", body: `{"name":""}`, wantCode: http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/boards", strings.NewReader(tc.body))
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
	assert.Nil(t, got.AllowFriendsComment)
}

func TestHandler_DeleteBoardForbidden(t *testing.T) {
	svc := &fakeService{
		deleteBoardFn: func(context.Context, uint64, uint64) error { return ErrNotBoardOwner },
	}
	r, token := newTestHandler(t, svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/boards/3", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_BoardPins(t *testing.T) {
	origin := uint64(1)
	svc := &fakeService{
		boardPinsFn: func(_ context.Context, boardID uint64) ([]*dbsql.Pin, error) {
			return []*dbsql.Pin{
				{PinID: 2, BoardID: boardID, OriginPinID: &origin, Picture: &dbsql.Picture{ImageLocator: "abc"}},
				{PinID: 1, BoardID: boardID, Picture: &dbsql.Picture{ExternalURL: "https://x.test/a.png"}},
			}, nil
		},
	}
	r, _ := newTestHandler(t, svc, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boards/4/pins", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var pins []PinResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pins))
	require.Len(t, pins, 2)
	assert.True(t, pins[0].IsRepin)
	assert.Equal(t, "http://media.test/abc", pins[0].PictureURL)
	assert.Equal(t, "https://x.test/a.png", pins[1].PictureURL)
}

func TestHandler_CreatePictureMultipart(t *testing.T) {
	var got PictureInput
	var content []byte
	svc := &fakeService{
		createPictureFn: func(_ context.Context, uploaderID uint64, in PictureInput) (*dbsql.Picture, error) {
			got = in
			if in.Upload != nil {
				content, _ = io.ReadAll(in.Upload.Reader)
				in.Upload.Reader.Close()
			}
			return &dbsql.Picture{PictureID: 9, ImageLocator: "loc9", Tags: in.Tags, UploadedBy: uploaderID}, nil
		},
	}
	r, token := newTestHandler(t, svc, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("tags", "cats,cute"))
	fw, err := mw.CreateFormFile("image_file", "kitten.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/pictures", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, got.Upload)
	assert.Equal(t, "kitten.png", got.Upload.Filename)
	assert.Equal(t, "cats,cute", got.Tags)
	assert.Equal(t, "fake png", string(content))

	var resp PictureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "http://media.test/loc9", resp.URL)
}

func TestHandler_CreatePictureJSON(t *testing.T) {
	svc := &fakeService{
		createPictureFn: func(_ context.Context, _ uint64, in PictureInput) (*dbsql.Picture, error) {
			assert.Nil(t, in.Upload)
			return &dbsql.Picture{PictureID: 1, ExternalURL: in.ExternalURL}, nil
		},
	}
	r, token := newTestHandler(t, svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/pictures", strings.NewReader(`{"external_url":"https://x.test/b.jpg","tags":"b"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://x.test/b.jpg")
}

func TestHandler_GetPinWithLikes(t *testing.T) {
	svc := &fakeService{
		getPinFn: func(_ context.Context, pinID uint64) (*dbsql.Pin, error) {
			if pinID != 2 {
				return nil, apperr.NotFound("pin not found")
			}
			return &dbsql.Pin{PinID: 2, Picture: &dbsql.Picture{ExternalURL: "https://x.test/c.png"}}, nil
		},
	}
	likes := &fakeLikes{count: 3, liked: map[uint64]bool{1: true}}
	r, token := newTestHandler(t, svc, likes)

	t.Run("anonymous", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pins/2", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp PinResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.LikeCount)
		assert.Equal(t, int64(3), *resp.LikeCount)
		require.NotNil(t, resp.IsLiked)
		assert.False(t, *resp.IsLiked)
	})

	t.Run("authenticated liker", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pins/2", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		var resp PinResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, *resp.IsLiked)
	})

	t.Run("missing pin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pins/99", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_RepinWithoutBody(t *testing.T) {
	origin := uint64(1)
	svc := &fakeService{
		repinFn: func(_ context.Context, userID, sourcePinID uint64, in RepinInput) (*dbsql.Pin, error) {
			assert.Nil(t, in.BoardID)
			return &dbsql.Pin{PinID: 10, UserID: userID, OriginPinID: &origin}, nil
		},
	}
	r, token := newTestHandler(t, svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/pins/1/repin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_repin":true`)
}
