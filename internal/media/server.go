package media

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pinboard/internal/common"
	"pinboard/internal/dbmongo"
)

// FileOpener streams stored pictures by locator.
type FileOpener interface {
	Open(ctx context.Context, locator string) (io.ReadCloser, *dbmongo.PictureFile, error)
}

type HTTPServer struct {
	storage FileOpener
	log     *slog.Logger
	router  *mux.Router
}

func NewHTTPServer(storage FileOpener, log *slog.Logger) *HTTPServer {
	s := &HTTPServer{storage: storage, log: log.With("component", "media")}

	router := mux.NewRouter()
	router.HandleFunc("/media/{locator:[0-9a-fA-F]{24}}", s.serveFile).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	s.router = router
	return s
}

func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	locator := mux.Vars(r)["locator"]

	reader, file, err := s.storage.Open(r.Context(), locator)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))
	// locators are never reused
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if r.Method == http.MethodHead {
		return
	}

	if _, err := io.Copy(w, reader); err != nil {
		s.log.WarnContext(r.Context(), "error streaming file", "locator", locator, "error", err)
	}
}

func (s *HTTPServer) health(w http.ResponseWriter, _ *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "pinboard-media"})
}
