package engagement

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"pinboard/internal/common"
	"pinboard/internal/dbsql"
	"pinboard/internal/user"
)

type LikeResponse struct {
	PinID     uint64 `json:"pin_id"`
	LikeCount int64  `json:"like_count"`
	Liked     bool   `json:"liked"`
}

type LikersResponse struct {
	LikeCount int                 `json:"like_count"`
	Users     []user.UserResponse `json:"users"`
}

type CommentResponse struct {
	CommentID uint64             `json:"comment_id"`
	PinID     uint64             `json:"pin_id"`
	UserID    uint64             `json:"user_id"`
	Content   string             `json:"content"`
	CreatedAt time.Time          `json:"created_at"`
	User      *user.UserResponse `json:"user,omitempty"`
}

func newCommentResponse(c *dbsql.Comment) CommentResponse {
	resp := CommentResponse{
		CommentID: c.CommentID,
		PinID:     c.PinID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
	if c.User != nil {
		u := user.NewPublicUser(c.User)
		resp.User = &u
	}
	return resp
}

type Handler struct {
	engagementService EngagementService
	auth              *common.Authenticator
}

func NewHandler(engagementService EngagementService, auth *common.Authenticator) *Handler {
	return &Handler{engagementService: engagementService, auth: auth}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.Handle("/pins/{id:[0-9]+}/like", h.auth.RequireFunc(h.Like)).Methods(http.MethodPost)
	r.Handle("/pins/{id:[0-9]+}/unlike", h.auth.RequireFunc(h.Unlike)).Methods(http.MethodPost)
	r.HandleFunc("/pins/{id:[0-9]+}/likes", h.Likers).Methods(http.MethodGet)
	r.HandleFunc("/pins/{id:[0-9]+}/comments", h.ListComments).Methods(http.MethodGet)
	r.Handle("/pins/{id:[0-9]+}/comments", h.auth.RequireFunc(h.Comment)).Methods(http.MethodPost)
}

func (h *Handler) actorAndPin(r *http.Request) (uint64, uint64, error) {
	actorID, err := common.ActorID(r)
	if err != nil {
		return 0, 0, err
	}
	pinID, err := common.PathID(r, "id")
	if err != nil {
		return 0, 0, err
	}
	return actorID, pinID, nil
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	actorID, pinID, err := h.actorAndPin(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	like, err := h.engagementService.Like(r.Context(), actorID, pinID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	count, err := h.engagementService.LikeCount(r.Context(), pinID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, LikeResponse{PinID: like.PinID, LikeCount: count, Liked: true})
}

func (h *Handler) Unlike(w http.ResponseWriter, r *http.Request) {
	actorID, pinID, err := h.actorAndPin(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.engagementService.Unlike(r.Context(), actorID, pinID); err != nil {
		common.WriteError(w, r, err)
		return
	}
	count, err := h.engagementService.LikeCount(r.Context(), pinID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, LikeResponse{PinID: pinID, LikeCount: count, Liked: false})
}

func (h *Handler) Likers(w http.ResponseWriter, r *http.Request) {
	pinID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	users, err := h.engagementService.ListLikers(r.Context(), pinID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, LikersResponse{
		LikeCount: len(users),
		Users: lo.Map(users, func(u *dbsql.User, _ int) user.UserResponse {
			return user.NewPublicUser(u)
		}),
	})
}

func (h *Handler) Comment(w http.ResponseWriter, r *http.Request) {
	actorID, pinID, err := h.actorAndPin(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := common.DecodeJSON(r, &body); err != nil {
		common.WriteError(w, r, err)
		return
	}

	comment, err := h.engagementService.Comment(r.Context(), actorID, pinID, body.Content)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, newCommentResponse(comment))
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	pinID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	comments, err := h.engagementService.ListComments(r.Context(), pinID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, lo.Map(comments, func(c *dbsql.Comment, _ int) CommentResponse {
		return newCommentResponse(c)
	}))
}
