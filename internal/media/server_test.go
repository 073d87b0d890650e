package media

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinboard/internal/apperr"
	"pinboard/internal/dbmongo"
)

const locator = "64b7f0c2a1b2c3d4e5f60718"

type fakeOpener struct {
	files  map[string]string
	closed bool
}

type closeTracker struct {
	io.Reader
	owner *fakeOpener
}

func (c closeTracker) Close() error {
	c.owner.closed = true
	return nil
}

func (f *fakeOpener) Open(_ context.Context, loc string) (io.ReadCloser, *dbmongo.PictureFile, error) {
	body, ok := f.files[loc]
	if !ok {
		return nil, nil, apperr.NotFound("picture file not found")
	}
	file := &dbmongo.PictureFile{ID: loc, ContentType: "image/png", Size: int64(len(body))}
	return closeTracker{Reader: strings.NewReader(body), owner: f}, file, nil
}

func newTestServer(files map[string]string) (*HTTPServer, *fakeOpener) {
	opener := &fakeOpener{files: files}
	return NewHTTPServer(opener, slog.New(slog.NewTextHandler(io.Discard, nil))), opener
}

func TestHTTPServer_ServeFile(t *testing.T) {
	srv, opener := newTestServer(map[string]string{locator: "PNGDATA"})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media/"+locator, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "7", rec.Header().Get("Content-Length"))
	assert.Equal(t, "PNGDATA", rec.Body.String())
	assert.True(t, opener.closed)
}

func TestHTTPServer_Errors(t *testing.T) {
	srv, _ := newTestServer(map[string]string{})

	tests := []struct {
		name     string
		path     string
		wantCode int
	}{
		{name: "missing file", path: "/media/" + locator, wantCode: http.StatusNotFound},
		{name: "malformed locator", path: "/media/not-an-id", wantCode: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestHTTPServer_Health(t *testing.T) {
	srv, _ := newTestServer(nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
