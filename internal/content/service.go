package content

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"pinboard/internal/apperr"
	"pinboard/internal/common"
	"pinboard/internal/config"
	"pinboard/internal/dbsql"
	"pinboard/internal/metrics"
)

// MaxRepinDepth bounds the walk from a repin to its root.
const MaxRepinDepth = 32

var (
	ErrNotBoardOwner   = apperr.New(apperr.KindForbidden, "only the board owner can change this board")
	ErrNotPinAuthor    = apperr.New(apperr.KindForbidden, "only the pin author can delete this pin")
	ErrRepinOwnPin     = apperr.New(apperr.KindForbidden, "cannot repin your own pin")
	ErrNoPictureSource = apperr.New(apperr.KindInvalidInput, "an image file or an external url is required")
	ErrRepinChain      = apperr.New(apperr.KindInvalidState, "repin chain is too deep or cyclic")
)

// PictureStore keeps uploaded picture bytes outside the relational store.
type PictureStore interface {
	Store(ctx context.Context, filename, contentType string, uploaderID uint64, content io.Reader) (string, error)
	Resolve(locator string) string
	Delete(ctx context.Context, locator string) error
}

type BoardInput struct {
	Name                string `json:"name"`
	Descriptor          string `json:"descriptor"`
	AllowFriendsComment *bool  `json:"allow_friends_comment"`
}

type BoardUpdate struct {
	Name                *string `json:"name"`
	Descriptor          *string `json:"descriptor"`
	AllowFriendsComment *bool   `json:"allow_friends_comment"`
}

// Upload is a picture file in flight. The service closes Reader.
type Upload struct {
	Reader      io.ReadCloser
	Filename    string
	ContentType string
	Size        int64
}

type PictureInput struct {
	Upload      *Upload
	ExternalURL string
	Tags        string
}

type PinInput struct {
	BoardID     uint64 `json:"board_id"`
	PictureID   uint64 `json:"picture_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RepinInput overrides the values copied from the source pin.
type RepinInput struct {
	BoardID     *uint64 `json:"board_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type ContentService interface {
	CreateBoard(ctx context.Context, ownerID uint64, in BoardInput) (*dbsql.Board, error)
	UpdateBoard(ctx context.Context, actorID, boardID uint64, update BoardUpdate) (*dbsql.Board, error)
	DeleteBoard(ctx context.Context, actorID, boardID uint64) error
	GetBoard(ctx context.Context, boardID uint64) (*dbsql.Board, error)
	ListBoards(ctx context.Context, ownerID uint64) ([]*dbsql.Board, error)
	BoardPins(ctx context.Context, boardID uint64) ([]*dbsql.Pin, error)

	CreatePicture(ctx context.Context, uploaderID uint64, in PictureInput) (*dbsql.Picture, error)
	GetPicture(ctx context.Context, pictureID uint64) (*dbsql.Picture, error)
	PictureURL(picture *dbsql.Picture) string

	CreatePin(ctx context.Context, userID uint64, in PinInput) (*dbsql.Pin, error)
	Repin(ctx context.Context, userID, sourcePinID uint64, in RepinInput) (*dbsql.Pin, error)
	GetPin(ctx context.Context, pinID uint64) (*dbsql.Pin, error)
	DeletePin(ctx context.Context, actorID, pinID uint64) error
	ListUserPins(ctx context.Context, userID uint64) ([]*dbsql.Pin, error)
	ResolveRoot(ctx context.Context, pin *dbsql.Pin) (*dbsql.Pin, error)
	EffectivePictureURL(ctx context.Context, pin *dbsql.Pin) (string, error)
}

type contentService struct {
	boards   BoardRepository
	pictures PictureRepository
	pins     PinRepository
	store    PictureStore
	tx       dbsql.Transactor
	upload   config.UploadConfig
	events   metrics.Recorder
}

func NewContentService(
	boards BoardRepository,
	pictures PictureRepository,
	pins PinRepository,
	store PictureStore,
	tx dbsql.Transactor,
	cfg *config.Config,
	events metrics.Recorder,
) ContentService {
	return &contentService{
		boards:   boards,
		pictures: pictures,
		pins:     pins,
		store:    store,
		tx:       tx,
		upload:   cfg.Upload,
		events:   events,
	}
}

func (s *contentService) CreateBoard(ctx context.Context, ownerID uint64, in BoardInput) (*dbsql.Board, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.InvalidInput("board name is required")
	}

	allow := true
	if in.AllowFriendsComment != nil {
		allow = *in.AllowFriendsComment
	}

	board := &dbsql.Board{
		Name:                name,
		Descriptor:          in.Descriptor,
		OwnerID:             ownerID,
		AllowFriendsComment: allow,
	}
	if err := s.boards.CreateBoard(ctx, board); err != nil {
		return nil, err
	}

	s.events.RecordEvent(metrics.EventBoardCreated)
	return board, nil
}

func (s *contentService) UpdateBoard(ctx context.Context, actorID, boardID uint64, update BoardUpdate) (*dbsql.Board, error) {
	board, err := s.ownedBoard(ctx, actorID, boardID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, apperr.InvalidInput("board name is required")
		}
		board.Name = name
	}
	if update.Descriptor != nil {
		board.Descriptor = *update.Descriptor
	}
	if update.AllowFriendsComment != nil {
		board.AllowFriendsComment = *update.AllowFriendsComment
	}

	if err := s.boards.UpdateBoard(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *contentService) DeleteBoard(ctx context.Context, actorID, boardID uint64) error {
	if _, err := s.ownedBoard(ctx, actorID, boardID); err != nil {
		return err
	}
	return s.boards.DeleteBoard(ctx, boardID)
}

func (s *contentService) ownedBoard(ctx context.Context, actorID, boardID uint64) (*dbsql.Board, error) {
	board, err := s.boards.GetBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board.OwnerID != actorID {
		return nil, ErrNotBoardOwner
	}
	return board, nil
}

func (s *contentService) GetBoard(ctx context.Context, boardID uint64) (*dbsql.Board, error) {
	return s.boards.GetBoard(ctx, boardID)
}

func (s *contentService) ListBoards(ctx context.Context, ownerID uint64) ([]*dbsql.Board, error) {
	return s.boards.ListBoardsByOwner(ctx, ownerID)
}

func (s *contentService) BoardPins(ctx context.Context, boardID uint64) ([]*dbsql.Pin, error) {
	if _, err := s.boards.GetBoard(ctx, boardID); err != nil {
		return nil, err
	}
	return s.pins.ListPinsByBoard(ctx, boardID)
}

func (s *contentService) CreatePicture(ctx context.Context, uploaderID uint64, in PictureInput) (*dbsql.Picture, error) {
	if in.Upload != nil && in.Upload.Reader != nil {
		defer in.Upload.Reader.Close()
	}

	hasFile := in.Upload != nil && in.Upload.Reader != nil
	externalURL := strings.TrimSpace(in.ExternalURL)
	if !hasFile && externalURL == "" {
		return nil, ErrNoPictureSource
	}
	if externalURL != "" {
		if err := validateExternalURL(externalURL); err != nil {
			return nil, err
		}
	}

	picture := &dbsql.Picture{
		ExternalURL: externalURL,
		Tags:        in.Tags,
		UploadedBy:  uploaderID,
	}

	if hasFile {
		if err := s.checkUpload(in.Upload); err != nil {
			return nil, err
		}
		locator, err := s.store.Store(ctx, in.Upload.Filename, in.Upload.ContentType, uploaderID, in.Upload.Reader)
		if err != nil {
			return nil, err
		}
		picture.ImageLocator = locator
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.pictures.CreatePicture(ctx, picture)
	})
	if err != nil {
		if picture.ImageLocator != "" {
			if delErr := s.store.Delete(ctx, picture.ImageLocator); delErr != nil {
				slog.WarnContext(ctx, "failed to remove orphaned picture file",
					"locator", picture.ImageLocator, "error", delErr)
			}
		}
		return nil, err
	}

	s.events.RecordEvent(metrics.EventPictureCreated)
	return picture, nil
}

func (s *contentService) checkUpload(u *Upload) error {
	if len(s.upload.AllowedExtensions) > 0 && !common.IsAllowedExtension(u.Filename, s.upload.AllowedExtensions) {
		return apperr.InvalidInput("file type not allowed, use one of %s", strings.Join(s.upload.AllowedExtensions, ", "))
	}
	if s.upload.MaxBytes > 0 && u.Size > s.upload.MaxBytes {
		return apperr.InvalidInput("file exceeds %d bytes", s.upload.MaxBytes)
	}
	return nil
}

func validateExternalURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperr.InvalidInput("invalid external url %q", raw)
	}
	return nil
}

func (s *contentService) GetPicture(ctx context.Context, pictureID uint64) (*dbsql.Picture, error) {
	return s.pictures.GetPicture(ctx, pictureID)
}

// PictureURL prefers the external URL over the stored file.
func (s *contentService) PictureURL(picture *dbsql.Picture) string {
	if picture == nil {
		return ""
	}
	if picture.ExternalURL != "" {
		return picture.ExternalURL
	}
	if picture.ImageLocator != "" {
		return s.store.Resolve(picture.ImageLocator)
	}
	return ""
}

func (s *contentService) CreatePin(ctx context.Context, userID uint64, in PinInput) (*dbsql.Pin, error) {
	if in.BoardID == 0 || in.PictureID == 0 {
		return nil, apperr.InvalidInput("board_id and picture_id are required")
	}
	if _, err := s.boards.GetBoard(ctx, in.BoardID); err != nil {
		return nil, err
	}
	picture, err := s.pictures.GetPicture(ctx, in.PictureID)
	if err != nil {
		return nil, err
	}

	pin := &dbsql.Pin{
		Title:       in.Title,
		Description: in.Description,
		UserID:      userID,
		BoardID:     in.BoardID,
		PictureID:   in.PictureID,
	}
	if err := s.pins.CreatePin(ctx, pin); err != nil {
		return nil, err
	}
	pin.Picture = picture

	s.events.RecordEvent(metrics.EventPinCreated)
	return pin, nil
}

func (s *contentService) Repin(ctx context.Context, userID, sourcePinID uint64, in RepinInput) (*dbsql.Pin, error) {
	source, err := s.pins.GetPin(ctx, sourcePinID)
	if err != nil {
		return nil, err
	}
	root, err := s.ResolveRoot(ctx, source)
	if err != nil {
		return nil, err
	}
	if root.UserID == userID {
		return nil, ErrRepinOwnPin
	}

	boardID := source.BoardID
	if in.BoardID != nil && *in.BoardID != 0 {
		boardID = *in.BoardID
		if _, err := s.boards.GetBoard(ctx, boardID); err != nil {
			return nil, err
		}
	}

	title, description := source.Title, source.Description
	if in.Title != nil {
		title = *in.Title
	}
	if in.Description != nil {
		description = *in.Description
	}

	originID := root.PinID
	repin := &dbsql.Pin{
		Title:       title,
		Description: description,
		UserID:      userID,
		BoardID:     boardID,
		PictureID:   root.PictureID,
		OriginPinID: &originID,
	}
	if err := s.pins.CreatePin(ctx, repin); err != nil {
		return nil, err
	}
	repin.Picture = root.Picture

	s.events.RecordEvent(metrics.EventRepinCreated)
	return repin, nil
}

func (s *contentService) GetPin(ctx context.Context, pinID uint64) (*dbsql.Pin, error) {
	return s.pins.GetPin(ctx, pinID)
}

func (s *contentService) DeletePin(ctx context.Context, actorID, pinID uint64) error {
	pin, err := s.pins.GetPin(ctx, pinID)
	if err != nil {
		return err
	}
	if pin.UserID != actorID {
		return ErrNotPinAuthor
	}
	return s.pins.DeletePin(ctx, pinID)
}

func (s *contentService) ListUserPins(ctx context.Context, userID uint64) ([]*dbsql.Pin, error) {
	return s.pins.ListPinsByUser(ctx, userID)
}

// ResolveRoot follows origin links until it reaches a pin that is not a
// repin.
func (s *contentService) ResolveRoot(ctx context.Context, pin *dbsql.Pin) (*dbsql.Pin, error) {
	visited := map[uint64]bool{pin.PinID: true}
	cur := pin
	for depth := 0; cur.OriginPinID != nil; depth++ {
		next := *cur.OriginPinID
		if depth >= MaxRepinDepth || visited[next] {
			return nil, ErrRepinChain
		}
		visited[next] = true

		origin, err := s.pins.GetPin(ctx, next)
		if err != nil {
			return nil, err
		}
		cur = origin
	}
	return cur, nil
}

func (s *contentService) EffectivePictureURL(ctx context.Context, pin *dbsql.Pin) (string, error) {
	root, err := s.ResolveRoot(ctx, pin)
	if err != nil {
		return "", err
	}
	picture := root.Picture
	if picture == nil {
		picture, err = s.pictures.GetPicture(ctx, root.PictureID)
		if err != nil {
			return "", err
		}
	}
	return s.PictureURL(picture), nil
}
