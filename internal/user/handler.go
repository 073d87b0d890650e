package user

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"pinboard/internal/common"
	"pinboard/internal/dbsql"
)

// UserResponse is the public view of an account. Email is only filled for
// the account owner.
type UserResponse struct {
	UserID      uint64    `json:"user_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	ProfileInfo string    `json:"profile_info"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func NewPublicUser(u *dbsql.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Username:    u.Username,
		ProfileInfo: u.ProfileInfo,
		CreatedAt:   u.CreatedAt,
	}
}

func newPrivateUser(u *dbsql.User) UserResponse {
	resp := NewPublicUser(u)
	resp.Email = u.Email
	return resp
}

// Handler maps the account routes onto UserService.
type Handler struct {
	userService UserService
	auth        *common.Authenticator
}

func NewHandler(userService UserService, auth *common.Authenticator) *Handler {
	return &Handler{userService: userService, auth: auth}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/users/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/users/login", h.Login).Methods(http.MethodPost)
	r.Handle("/users/me", h.auth.RequireFunc(h.Me)).Methods(http.MethodGet)
	r.Handle("/users/me", h.auth.RequireFunc(h.UpdateMe)).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc("/users/by-username/{username}", h.GetByUsername).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}", h.GetUser).Methods(http.MethodGet)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterInput
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}

	user, token, err := h.userService.RegisterUser(r.Context(), req)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, AuthResponse{Token: token, User: newPrivateUser(user)})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}

	user, token, err := h.userService.LoginUser(r.Context(), req.Username, req.Password)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, AuthResponse{Token: token, User: newPrivateUser(user)})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, newPrivateUser(user))
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	var req ProfileUpdate
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, newPrivateUser(user))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, NewPublicUser(user))
}

func (h *Handler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByUsername(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, NewPublicUser(user))
}
