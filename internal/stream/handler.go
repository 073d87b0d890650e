package stream

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"pinboard/internal/common"
	"pinboard/internal/content"
	"pinboard/internal/dbsql"
)

// PictureURLer renders a picture's display URL.
type PictureURLer interface {
	PictureURL(picture *dbsql.Picture) string
}

type StreamResponse struct {
	StreamID  uint64    `json:"stream_id"`
	Name      string    `json:"name"`
	UserID    uint64    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type FollowStatusResponse struct {
	BoardID   uint64 `json:"board_id"`
	Following bool   `json:"following"`
}

func newStreamResponse(s *dbsql.FollowStream) StreamResponse {
	return StreamResponse{
		StreamID:  s.StreamID,
		Name:      s.Name,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
	}
}

type Handler struct {
	streamService StreamService
	pictures      PictureURLer
	auth          *common.Authenticator
}

func NewHandler(streamService StreamService, pictures PictureURLer, auth *common.Authenticator) *Handler {
	return &Handler{streamService: streamService, pictures: pictures, auth: auth}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	s := r.PathPrefix("/follow-streams").Subrouter()
	s.Use(h.auth.Require)
	s.HandleFunc("", h.CreateStream).Methods(http.MethodPost)
	s.HandleFunc("", h.ListStreams).Methods(http.MethodGet)
	s.HandleFunc("/{id:[0-9]+}", h.GetStream).Methods(http.MethodGet)
	s.HandleFunc("/{id:[0-9]+}", h.DeleteStream).Methods(http.MethodDelete)
	s.HandleFunc("/{id:[0-9]+}/boards", h.ListBoards).Methods(http.MethodGet)
	s.HandleFunc("/{id:[0-9]+}/boards", h.AddBoard).Methods(http.MethodPost)
	s.HandleFunc("/{id:[0-9]+}/boards/{boardID:[0-9]+}", h.RemoveBoard).Methods(http.MethodDelete)
	s.HandleFunc("/{id:[0-9]+}/pictures", h.Feed).Methods(http.MethodGet)

	r.Handle("/boards/{id:[0-9]+}/follow_status", h.auth.RequireFunc(h.FollowStatus)).Methods(http.MethodGet)
	r.Handle("/boards/{id:[0-9]+}/unfollow", h.auth.RequireFunc(h.Unfollow)).Methods(http.MethodPost)
}

func (h *Handler) CreateStream(w http.ResponseWriter, r *http.Request) {
	actorID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := common.DecodeJSON(r, &body); err != nil {
		common.WriteError(w, r, err)
		return
	}

	stream, err := h.streamService.CreateStream(r.Context(), actorID, body.Name)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, newStreamResponse(stream))
}

func (h *Handler) ListStreams(w http.ResponseWriter, r *http.Request) {
	actorID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	streams, err := h.streamService.ListStreams(r.Context(), actorID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, lo.Map(streams, func(s *dbsql.FollowStream, _ int) StreamResponse {
		return newStreamResponse(s)
	}))
}

func (h *Handler) actorAndStream(r *http.Request) (uint64, uint64, error) {
	actorID, err := common.ActorID(r)
	if err != nil {
		return 0, 0, err
	}
	streamID, err := common.PathID(r, "id")
	if err != nil {
		return 0, 0, err
	}
	return actorID, streamID, nil
}

func (h *Handler) GetStream(w http.ResponseWriter, r *http.Request) {
	actorID, streamID, err := h.actorAndStream(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	stream, err := h.streamService.GetStream(r.Context(), actorID, streamID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, newStreamResponse(stream))
}

func (h *Handler) DeleteStream(w http.ResponseWriter, r *http.Request) {
	actorID, streamID, err := h.actorAndStream(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.streamService.DeleteStream(r.Context(), actorID, streamID); err != nil {
		common.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListBoards(w http.ResponseWriter, r *http.Request) {
	actorID, streamID, err := h.actorAndStream(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	boards, err := h.streamService.ListStreamBoards(r.Context(), actorID, streamID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, lo.Map(boards, func(b *dbsql.Board, _ int) content.BoardResponse {
		return content.NewBoardResponse(b)
	}))
}

func (h *Handler) AddBoard(w http.ResponseWriter, r *http.Request) {
	actorID, streamID, err := h.actorAndStream(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	var body struct {
		BoardID uint64 `json:"board_id"`
	}
	if err := common.DecodeJSON(r, &body); err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.streamService.AddBoard(r.Context(), actorID, streamID, body.BoardID); err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, FollowStatusResponse{BoardID: body.BoardID, Following: true})
}

func (h *Handler) RemoveBoard(w http.ResponseWriter, r *http.Request) {
	actorID, streamID, err := h.actorAndStream(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	boardID, err := common.PathID(r, "boardID")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.streamService.RemoveBoard(r.Context(), actorID, streamID, boardID); err != nil {
		common.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	actorID, streamID, err := h.actorAndStream(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	page, err := common.QueryInt(r, "page", 0)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	limit, err := common.QueryInt(r, "limit", 0)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	feed, err := h.streamService.StreamFeed(r.Context(), actorID, streamID, Page{Page: page, Limit: limit})
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, common.PaginatedResponse{
		Data: lo.Map(feed.Pins, func(p *dbsql.Pin, _ int) content.PinResponse {
			return content.NewPinResponse(p, h.pictures.PictureURL(p.Picture))
		}),
		Pagination: common.NewPaginationMeta(feed.Page.Page, feed.Page.Limit, feed.Total),
	})
}

func (h *Handler) FollowStatus(w http.ResponseWriter, r *http.Request) {
	actorID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	boardID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	following, err := h.streamService.FollowStatus(r.Context(), actorID, boardID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, FollowStatusResponse{BoardID: boardID, Following: following})
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	actorID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	boardID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.streamService.Unfollow(r.Context(), actorID, boardID); err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, FollowStatusResponse{BoardID: boardID, Following: false})
}
