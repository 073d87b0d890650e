package content

import (
	"context"

	"gorm.io/gorm"

	"pinboard/internal/apperr"
	"pinboard/internal/dbsql"
)

type BoardRepository interface {
	CreateBoard(ctx context.Context, board *dbsql.Board) error
	GetBoard(ctx context.Context, boardID uint64) (*dbsql.Board, error)
	UpdateBoard(ctx context.Context, board *dbsql.Board) error
	DeleteBoard(ctx context.Context, boardID uint64) error
	ListBoardsByOwner(ctx context.Context, ownerID uint64) ([]*dbsql.Board, error)
}

type PictureRepository interface {
	CreatePicture(ctx context.Context, picture *dbsql.Picture) error
	GetPicture(ctx context.Context, pictureID uint64) (*dbsql.Picture, error)
}

type PinRepository interface {
	CreatePin(ctx context.Context, pin *dbsql.Pin) error
	GetPin(ctx context.Context, pinID uint64) (*dbsql.Pin, error)
	DeletePin(ctx context.Context, pinID uint64) error
	ListPinsByBoard(ctx context.Context, boardID uint64) ([]*dbsql.Pin, error)
	ListPinsByUser(ctx context.Context, userID uint64) ([]*dbsql.Pin, error)
}

type boardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) CreateBoard(ctx context.Context, board *dbsql.Board) error {
	err := dbsql.Conn(ctx, r.db).Create(board).Error
	return dbsql.Translate(err, "create board", "board")
}

func (r *boardRepository) GetBoard(ctx context.Context, boardID uint64) (*dbsql.Board, error) {
	var board dbsql.Board
	err := dbsql.Conn(ctx, r.db).Where("board_id = ?", boardID).First(&board).Error
	if err != nil {
		return nil, dbsql.Translate(err, "get board", "board")
	}
	return &board, nil
}

func (r *boardRepository) UpdateBoard(ctx context.Context, board *dbsql.Board) error {
	err := dbsql.Conn(ctx, r.db).Model(board).
		Select("board_name", "descriptor", "allow_friends_comment").
		Updates(board).Error
	return dbsql.Translate(err, "update board", "board")
}

// DeleteBoard removes the board. Pins and stream memberships go with it
// through the foreign keys.
func (r *boardRepository) DeleteBoard(ctx context.Context, boardID uint64) error {
	res := dbsql.Conn(ctx, r.db).Where("board_id = ?", boardID).Delete(&dbsql.Board{})
	if res.Error != nil {
		return dbsql.Translate(res.Error, "delete board", "board")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("board not found")
	}
	return nil
}

func (r *boardRepository) ListBoardsByOwner(ctx context.Context, ownerID uint64) ([]*dbsql.Board, error) {
	var boards []*dbsql.Board
	err := dbsql.Conn(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&boards).Error
	if err != nil {
		return nil, dbsql.Translate(err, "list boards", "board")
	}
	return boards, nil
}

type pictureRepository struct {
	db *gorm.DB
}

func NewPictureRepository(db *gorm.DB) PictureRepository {
	return &pictureRepository{db: db}
}

func (r *pictureRepository) CreatePicture(ctx context.Context, picture *dbsql.Picture) error {
	err := dbsql.Conn(ctx, r.db).Create(picture).Error
	return dbsql.Translate(err, "create picture", "picture")
}

func (r *pictureRepository) GetPicture(ctx context.Context, pictureID uint64) (*dbsql.Picture, error) {
	var picture dbsql.Picture
	err := dbsql.Conn(ctx, r.db).Where("picture_id = ?", pictureID).First(&picture).Error
	if err != nil {
		return nil, dbsql.Translate(err, "get picture", "picture")
	}
	return &picture, nil
}

type pinRepository struct {
	db *gorm.DB
}

func NewPinRepository(db *gorm.DB) PinRepository {
	return &pinRepository{db: db}
}

func (r *pinRepository) CreatePin(ctx context.Context, pin *dbsql.Pin) error {
	err := dbsql.Conn(ctx, r.db).Omit("User", "Board", "Picture", "OriginPin").Create(pin).Error
	return dbsql.Translate(err, "create pin", "pin")
}

func (r *pinRepository) GetPin(ctx context.Context, pinID uint64) (*dbsql.Pin, error) {
	var pin dbsql.Pin
	err := dbsql.Conn(ctx, r.db).
		Preload("Picture").
		Where("pin_id = ?", pinID).
		First(&pin).Error
	if err != nil {
		return nil, dbsql.Translate(err, "get pin", "pin")
	}
	return &pin, nil
}

// DeletePin removes the pin. Likes, comments and repins of it cascade.
func (r *pinRepository) DeletePin(ctx context.Context, pinID uint64) error {
	res := dbsql.Conn(ctx, r.db).Where("pin_id = ?", pinID).Delete(&dbsql.Pin{})
	if res.Error != nil {
		return dbsql.Translate(res.Error, "delete pin", "pin")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("pin not found")
	}
	return nil
}

func (r *pinRepository) ListPinsByBoard(ctx context.Context, boardID uint64) ([]*dbsql.Pin, error) {
	return r.listPins(ctx, "board_id = ?", boardID)
}

func (r *pinRepository) ListPinsByUser(ctx context.Context, userID uint64) ([]*dbsql.Pin, error) {
	return r.listPins(ctx, "user_id = ?", userID)
}

func (r *pinRepository) listPins(ctx context.Context, cond string, arg uint64) ([]*dbsql.Pin, error) {
	var pins []*dbsql.Pin
	err := dbsql.Conn(ctx, r.db).
		Preload("Picture").
		Where(cond, arg).
		Order("created_at DESC").
		Order("pin_id DESC").
		Find(&pins).Error
	if err != nil {
		return nil, dbsql.Translate(err, "list pins", "pin")
	}
	return pins, nil
}
