package content

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"pinboard/internal/apperr"
	"pinboard/internal/common"
	"pinboard/internal/dbsql"
)

// LikeStats reports engagement on a pin's root for pin detail responses.
type LikeStats interface {
	LikeCount(ctx context.Context, pinID uint64) (int64, error)
	IsLiked(ctx context.Context, userID, pinID uint64) (bool, error)
}

type BoardResponse struct {
	BoardID             uint64    `json:"board_id"`
	Name                string    `json:"name"`
	Descriptor          string    `json:"descriptor"`
	OwnerID             uint64    `json:"owner_id"`
	AllowFriendsComment bool      `json:"allow_friends_comment"`
	CreatedAt           time.Time `json:"created_at"`
}

type PictureResponse struct {
	PictureID   uint64    `json:"picture_id"`
	URL         string    `json:"url"`
	ExternalURL string    `json:"external_url,omitempty"`
	Tags        string    `json:"tags"`
	UploadedBy  uint64    `json:"uploaded_by"`
	UploadTime  time.Time `json:"upload_time"`
}

type PinResponse struct {
	PinID       uint64    `json:"pin_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      uint64    `json:"user_id"`
	BoardID     uint64    `json:"board_id"`
	PictureID   uint64    `json:"picture_id"`
	OriginPinID *uint64   `json:"origin_pin_id,omitempty"`
	IsRepin     bool      `json:"is_repin"`
	PictureURL  string    `json:"picture_url"`
	CreatedAt   time.Time `json:"created_at"`
	LikeCount   *int64    `json:"like_count,omitempty"`
	IsLiked     *bool     `json:"is_liked,omitempty"`
}

func NewBoardResponse(b *dbsql.Board) BoardResponse {
	return BoardResponse{
		BoardID:             b.BoardID,
		Name:                b.Name,
		Descriptor:          b.Descriptor,
		OwnerID:             b.OwnerID,
		AllowFriendsComment: b.AllowFriendsComment,
		CreatedAt:           b.CreatedAt,
	}
}

// NewPinResponse renders pin with pictureURL as its display image.
func NewPinResponse(p *dbsql.Pin, pictureURL string) PinResponse {
	return PinResponse{
		PinID:       p.PinID,
		Title:       p.Title,
		Description: p.Description,
		UserID:      p.UserID,
		BoardID:     p.BoardID,
		PictureID:   p.PictureID,
		OriginPinID: p.OriginPinID,
		IsRepin:     p.IsRepin(),
		PictureURL:  pictureURL,
		CreatedAt:   p.CreatedAt,
	}
}

type Handler struct {
	contentService ContentService
	likes          LikeStats
	auth           *common.Authenticator
	maxUpload      int64
}

func NewHandler(contentService ContentService, likes LikeStats, auth *common.Authenticator, maxUpload int64) *Handler {
	return &Handler{contentService: contentService, likes: likes, auth: auth, maxUpload: maxUpload}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.Handle("/boards", h.auth.RequireFunc(h.CreateBoard)).Methods(http.MethodPost)
	r.Handle("/boards/mine", h.auth.RequireFunc(h.MyBoards)).Methods(http.MethodGet)
	r.HandleFunc("/boards/{id:[0-9]+}", h.GetBoard).Methods(http.MethodGet)
	r.Handle("/boards/{id:[0-9]+}", h.auth.RequireFunc(h.UpdateBoard)).Methods(http.MethodPut, http.MethodPatch)
	r.Handle("/boards/{id:[0-9]+}", h.auth.RequireFunc(h.DeleteBoard)).Methods(http.MethodDelete)
	r.HandleFunc("/boards/{id:[0-9]+}/pins", h.BoardPins).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}/boards", h.UserBoards).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}/pins", h.UserPins).Methods(http.MethodGet)

	r.Handle("/pictures", h.auth.RequireFunc(h.CreatePicture)).Methods(http.MethodPost)
	r.HandleFunc("/pictures/{id:[0-9]+}", h.GetPicture).Methods(http.MethodGet)

	r.Handle("/pins", h.auth.RequireFunc(h.CreatePin)).Methods(http.MethodPost)
	r.Handle("/pins/{id:[0-9]+}", h.auth.OptionalFunc(h.GetPin)).Methods(http.MethodGet)
	r.Handle("/pins/{id:[0-9]+}", h.auth.RequireFunc(h.DeletePin)).Methods(http.MethodDelete)
	r.Handle("/pins/{id:[0-9]+}/repin", h.auth.RequireFunc(h.Repin)).Methods(http.MethodPost)
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	actorID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	var in BoardInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, r, err)
		return
	}

	board, err := h.contentService.CreateBoard(r.Context(), actorID, in)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, NewBoardResponse(board))
}

func (h *Handler) MyBoards(w http.ResponseWriter, r *http.Request) {
	actorID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	h.writeBoards(w, r, actorID)
}

func (h *Handler) UserBoards(w http.ResponseWriter, r *http.Request) {
	userID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	h.writeBoards(w, r, userID)
}

func (h *Handler) writeBoards(w http.ResponseWriter, r *http.Request, ownerID uint64) {
	boards, err := h.contentService.ListBoards(r.Context(), ownerID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, lo.Map(boards, func(b *dbsql.Board, _ int) BoardResponse {
		return NewBoardResponse(b)
	}))
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	boardID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	board, err := h.contentService.GetBoard(r.Context(), boardID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, NewBoardResponse(board))
}

func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
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

	var update BoardUpdate
	if err := common.DecodeJSON(r, &update); err != nil {
		common.WriteError(w, r, err)
		return
	}

	board, err := h.contentService.UpdateBoard(r.Context(), actorID, boardID, update)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, NewBoardResponse(board))
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
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

	if err := h.contentService.DeleteBoard(r.Context(), actorID, boardID); err != nil {
		common.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) BoardPins(w http.ResponseWriter, r *http.Request) {
	boardID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	pins, err := h.contentService.BoardPins(r.Context(), boardID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, h.pinList(pins))
}

func (h *Handler) UserPins(w http.ResponseWriter, r *http.Request) {
	userID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	pins, err := h.contentService.ListUserPins(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, h.pinList(pins))
}

// pinList uses the preloaded picture. Repins share their root's picture row,
// so no lineage walk is needed here.
func (h *Handler) pinList(pins []*dbsql.Pin) []PinResponse {
	return lo.Map(pins, func(p *dbsql.Pin, _ int) PinResponse {
		return NewPinResponse(p, h.contentService.PictureURL(p.Picture))
	})
}

func (h *Handler) newPictureResponse(p *dbsql.Picture) PictureResponse {
	return PictureResponse{
		PictureID:   p.PictureID,
		URL:         h.contentService.PictureURL(p),
		ExternalURL: p.ExternalURL,
		Tags:        p.Tags,
		UploadedBy:  p.UploadedBy,
		UploadTime:  p.UploadTime,
	}
}

// CreatePicture accepts either a multipart form with image_file or a JSON
// body with external_url.
func (h *Handler) CreatePicture(w http.ResponseWriter, r *http.Request) {
	actorID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	var in PictureInput
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		in, err = h.readMultipartPicture(w, r)
	} else {
		var body struct {
			ExternalURL string `json:"external_url"`
			Tags        string `json:"tags"`
		}
		err = common.DecodeJSON(r, &body)
		in = PictureInput{ExternalURL: body.ExternalURL, Tags: body.Tags}
	}
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	picture, err := h.contentService.CreatePicture(r.Context(), actorID, in)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, h.newPictureResponse(picture))
}

func (h *Handler) readMultipartPicture(w http.ResponseWriter, r *http.Request) (PictureInput, error) {
	if h.maxUpload > 0 {
		// room for the form fields around the file
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+1<<20)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return PictureInput{}, apperr.InvalidInput("file exceeds %d bytes", h.maxUpload)
		}
		return PictureInput{}, apperr.InvalidInput("malformed multipart form: %v", err)
	}

	in := PictureInput{
		ExternalURL: r.FormValue("external_url"),
		Tags:        r.FormValue("tags"),
	}
	file, header, err := r.FormFile("image_file")
	switch {
	case err == nil:
		in.Upload = &Upload{
			Reader:      file,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
		}
	case errors.Is(err, http.ErrMissingFile):
	default:
		return PictureInput{}, apperr.InvalidInput("invalid image_file: %v", err)
	}
	return in, nil
}

func (h *Handler) GetPicture(w http.ResponseWriter, r *http.Request) {
	pictureID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	picture, err := h.contentService.GetPicture(r.Context(), pictureID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, h.newPictureResponse(picture))
}

func (h *Handler) CreatePin(w http.ResponseWriter, r *http.Request) {
	actorID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	var in PinInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.WriteError(w, r, err)
		return
	}

	pin, err := h.contentService.CreatePin(r.Context(), actorID, in)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, NewPinResponse(pin, h.contentService.PictureURL(pin.Picture)))
}

func (h *Handler) Repin(w http.ResponseWriter, r *http.Request) {
	actorID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	pinID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	var in RepinInput
	if r.ContentLength != 0 {
		if err := common.DecodeJSON(r, &in); err != nil {
			common.WriteError(w, r, err)
			return
		}
	}

	repin, err := h.contentService.Repin(r.Context(), actorID, pinID, in)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, NewPinResponse(repin, h.contentService.PictureURL(repin.Picture)))
}

func (h *Handler) GetPin(w http.ResponseWriter, r *http.Request) {
	pinID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	ctx := r.Context()
	pin, err := h.contentService.GetPin(ctx, pinID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	pictureURL, err := h.contentService.EffectivePictureURL(ctx, pin)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	resp := NewPinResponse(pin, pictureURL)

	if h.likes != nil {
		count, err := h.likes.LikeCount(ctx, pinID)
		if err != nil {
			common.WriteError(w, r, err)
			return
		}
		resp.LikeCount = &count

		liked := false
		if actorID, ok := common.UserIDFromContext(ctx); ok {
			if liked, err = h.likes.IsLiked(ctx, actorID, pinID); err != nil {
				common.WriteError(w, r, err)
				return
			}
		}
		resp.IsLiked = &liked
	}
	common.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) DeletePin(w http.ResponseWriter, r *http.Request) {
	actorID, err := common.ActorID(r)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	pinID, err := common.PathID(r, "id")
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.contentService.DeletePin(r.Context(), actorID, pinID); err != nil {
		common.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
