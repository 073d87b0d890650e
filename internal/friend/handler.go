package friend

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"pinboard/internal/common"
	"pinboard/internal/dbsql"
	"pinboard/internal/user"
)

type FriendRequestResponse struct {
	RequestID    uint64              `json:"request_id"`
	SenderID     uint64              `json:"sender_id"`
	ReceiverID   uint64              `json:"receiver_id"`
	Status       dbsql.RequestStatus `json:"status"`
	RequestTime  time.Time           `json:"request_time"`
	ResponseTime *time.Time          `json:"response_time,omitempty"`
	Sender       *user.UserResponse  `json:"sender,omitempty"`
	Receiver     *user.UserResponse  `json:"receiver,omitempty"`
}

type RequestListsResponse struct {
	ReceivedPending []FriendRequestResponse `json:"received_pending"`
	Sent            []FriendRequestResponse `json:"sent"`
}

func newRequestResponse(req *dbsql.FriendshipRequest) FriendRequestResponse {
	resp := FriendRequestResponse{
		RequestID:    req.RequestID,
		SenderID:     req.SenderID,
		ReceiverID:   req.ReceiverID,
		Status:       req.Status,
		RequestTime:  req.RequestTime,
		ResponseTime: req.ResponseTime,
	}
	if req.Sender != nil {
		u := user.NewPublicUser(req.Sender)
		resp.Sender = &u
	}
	if req.Receiver != nil {
		u := user.NewPublicUser(req.Receiver)
		resp.Receiver = &u
	}
	return resp
}

func toRequestResponses(reqs []*dbsql.FriendshipRequest) []FriendRequestResponse {
	return lo.Map(reqs, func(req *dbsql.FriendshipRequest, _ int) FriendRequestResponse {
		return newRequestResponse(req)
	})
}

type Handler struct {
	friendService FriendService
	auth          *common.Authenticator
}

func NewHandler(friendService FriendService, auth *common.Authenticator) *Handler {
	return &Handler{friendService: friendService, auth: auth}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.Handle("/friend-requests", h.auth.RequireFunc(h.SendRequest)).Methods(http.MethodPost)
	r.Handle("/friend-requests", h.auth.RequireFunc(h.ListRequests)).Methods(http.MethodGet)
	r.Handle("/friend-requests/{id:[0-9]+}/accept", h.auth.RequireFunc(h.Accept)).Methods(http.MethodPost)
	r.Handle("/friend-requests/{id:[0-9]+}/reject", h.auth.RequireFunc(h.Reject)).Methods(http.MethodPost)
	r.Handle("/friends/{id:[0-9]+}", h.auth.RequireFunc(h.RemoveFriend)).Methods(http.MethodDelete)
	r.HandleFunc("/users/{id:[0-9]+}/friends", h.ListFriends).Methods(http.MethodGet)
}

func (h *Handler) SendRequest(w http.ResponseWriter, r *http.Request) {
	actorID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	var body struct {
		ReceiverID uint64 `json:"receiver_id"`
	}
	if err := common.DecodeJSON(r, &body); err != nil {
		common.WriteError(w, r, err)
		return
	}

	req, err := h.friendService.SendRequest(r.Context(), actorID, body.ReceiverID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, newRequestResponse(req))
}

func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	actorID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	lists, err := h.friendService.ListRequests(r.Context(), actorID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, RequestListsResponse{
		ReceivedPending: toRequestResponses(lists.ReceivedPending),
		Sent:            toRequestResponses(lists.Sent),
	})
}

func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.friendService.AcceptRequest)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.friendService.RejectRequest)
}

type respondFunc func(ctx context.Context, requestID, actorID uint64) (*dbsql.FriendshipRequest, error)

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, fn respondFunc) {
	actorID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	requestID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	req, err := fn(r.Context(), requestID, actorID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, newRequestResponse(req))
}

func (h *Handler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	actorID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	friendID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.friendService.RemoveFriend(r.Context(), actorID, friendID); err != nil {
		common.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListFriends(w http.ResponseWriter, r *http.Request) {
	userID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	friends, err := h.friendService.ListFriends(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, lo.Map(friends, func(u *dbsql.User, _ int) user.UserResponse {
		return user.NewPublicUser(u)
	}))
}
