package search

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"pinboard/internal/common"
	"pinboard/internal/content"
	"pinboard/internal/dbsql"
	"pinboard/internal/user"
)

// PictureURLer renders a picture's display URL.
type PictureURLer interface {
	PictureURL(picture *dbsql.Picture) string
}

type Handler struct {
	searchService SearchService
	pictures      PictureURLer
}

func NewHandler(searchService SearchService, pictures PictureURLer) *Handler {
	return &Handler{searchService: searchService, pictures: pictures}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/search/{kind}", h.Search).Methods(http.MethodGet)
	r.HandleFunc("/pictures/search", h.SearchPictures).Methods(http.MethodGet)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, mux.Vars(r)["kind"])
}

// SearchPictures is tag search over pins.
func (h *Handler) SearchPictures(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, KindTags)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, kind string) {
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

	res, err := h.searchService.Search(r.Context(), Query{
		Kind:   kind,
		Text:   r.URL.Query().Get("q"),
		SortBy: r.URL.Query().Get("sort_by"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, common.PaginatedResponse{
		Data:       h.items(res),
		Pagination: common.NewPaginationMeta(res.Page, res.Limit, res.Total),
	})
}

func (h *Handler) items(res *Result) any {
	switch res.Kind {
	case KindBoards:
		return lo.Map(res.Boards, func(b *dbsql.Board, _ int) content.BoardResponse {
			return content.NewBoardResponse(b)
		})
	case KindUsers:
		return lo.Map(res.Users, func(u *dbsql.User, _ int) user.UserResponse {
			return user.NewPublicUser(u)
		})
	default:
		return lo.Map(res.Pins, func(p *dbsql.Pin, _ int) content.PinResponse {
			return content.NewPinResponse(p, h.pictures.PictureURL(p.Picture))
		})
	}
}
