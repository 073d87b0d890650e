package stream

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pinboard/internal/apperr"
	"pinboard/internal/dbsql"
)

type StreamRepository interface {
	CreateStream(ctx context.Context, stream *dbsql.FollowStream) error
	GetStream(ctx context.Context, streamID uint64) (*dbsql.FollowStream, error)
	ListStreams(ctx context.Context, userID uint64) ([]*dbsql.FollowStream, error)
	DeleteStream(ctx context.Context, streamID uint64) error
	AddBoard(ctx context.Context, streamID, boardID uint64) error
	RemoveBoard(ctx context.Context, streamID, boardID uint64) error
	ListBoards(ctx context.Context, streamID uint64) ([]*dbsql.Board, error)
	FeedPins(ctx context.Context, streamID uint64, offset, limit int) ([]*dbsql.Pin, int64, error)
	IsFollowing(ctx context.Context, userID, boardID uint64) (bool, error)
	UnfollowBoard(ctx context.Context, userID, boardID uint64) (int64, error)
}

type streamRepository struct {
	db *gorm.DB
}

func NewStreamRepository(db *gorm.DB) StreamRepository {
	return &streamRepository{db: db}
}

func (r *streamRepository) CreateStream(ctx context.Context, stream *dbsql.FollowStream) error {
	err := dbsql.Conn(ctx, r.db).Omit("User").Create(stream).Error
	return dbsql.Translate(err, "create stream", "follow stream")
}

func (r *streamRepository) GetStream(ctx context.Context, streamID uint64) (*dbsql.FollowStream, error) {
	var stream dbsql.FollowStream
	err := dbsql.Conn(ctx, r.db).Where("stream_id = ?", streamID).First(&stream).Error
	if err != nil {
		return nil, dbsql.Translate(err, "get stream", "follow stream")
	}
	return &stream, nil
}

func (r *streamRepository) ListStreams(ctx context.Context, userID uint64) ([]*dbsql.FollowStream, error) {
	var streams []*dbsql.FollowStream
	err := dbsql.Conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&streams).Error
	if err != nil {
		return nil, dbsql.Translate(err, "list streams", "follow stream")
	}
	return streams, nil
}

func (r *streamRepository) DeleteStream(ctx context.Context, streamID uint64) error {
	res := dbsql.Conn(ctx, r.db).Where("stream_id = ?", streamID).Delete(&dbsql.FollowStream{})
	if res.Error != nil {
		return dbsql.Translate(res.Error, "delete stream", "follow stream")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("follow stream not found")
	}
	return nil
}

// AddBoard is a no-op when the board is already in the stream.
func (r *streamRepository) AddBoard(ctx context.Context, streamID, boardID uint64) error {
	err := dbsql.Conn(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit("Stream", "Board").
		Create(&dbsql.FollowStreamBoard{StreamID: streamID, BoardID: boardID}).Error
	return dbsql.Translate(err, "add board to stream", "stream board")
}

func (r *streamRepository) RemoveBoard(ctx context.Context, streamID, boardID uint64) error {
	res := dbsql.Conn(ctx, r.db).
		Where("stream_id = ? AND board_id = ?", streamID, boardID).
		Delete(&dbsql.FollowStreamBoard{})
	if res.Error != nil {
		return dbsql.Translate(res.Error, "remove board from stream", "stream board")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("board is not in this stream")
	}
	return nil
}

func (r *streamRepository) ListBoards(ctx context.Context, streamID uint64) ([]*dbsql.Board, error) {
	var boards []*dbsql.Board
	err := dbsql.Conn(ctx, r.db).
		Select("boards.*").
		Joins("JOIN follow_stream_boards fsb ON fsb.board_id = boards.board_id").
		Where("fsb.stream_id = ?", streamID).
		Order("fsb.created_at DESC").
		Find(&boards).Error
	if err != nil {
		return nil, dbsql.Translate(err, "list stream boards", "board")
	}
	return boards, nil
}

// FeedPins returns one page of pins on the stream's boards, newest first,
// and the total across all pages.
func (r *streamRepository) FeedPins(ctx context.Context, streamID uint64, offset, limit int) ([]*dbsql.Pin, int64, error) {
	boardIDs := dbsql.Conn(ctx, r.db).
		Model(&dbsql.FollowStreamBoard{}).
		Select("board_id").
		Where("stream_id = ?", streamID)

	query := dbsql.Conn(ctx, r.db).Model(&dbsql.Pin{}).Where("board_id IN (?)", boardIDs)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, dbsql.Translate(err, "count stream feed", "pin")
	}

	var pins []*dbsql.Pin
	err := query.Session(&gorm.Session{}).
		Preload("Picture").
		Order("created_at DESC").
		Order("pin_id DESC").
		Offset(offset).
		Limit(limit).
		Find(&pins).Error
	if err != nil {
		return nil, 0, dbsql.Translate(err, "load stream feed", "pin")
	}
	return pins, total, nil
}

func (r *streamRepository) IsFollowing(ctx context.Context, userID, boardID uint64) (bool, error) {
	var count int64
	err := dbsql.Conn(ctx, r.db).
		Model(&dbsql.FollowStreamBoard{}).
		Joins("JOIN follow_streams fs ON fs.stream_id = follow_stream_boards.stream_id").
		Where("fs.user_id = ? AND follow_stream_boards.board_id = ?", userID, boardID).
		Count(&count).Error
	if err != nil {
		return false, dbsql.Translate(err, "check follow status", "stream board")
	}
	return count > 0, nil
}

// UnfollowBoard removes boardID from every stream owned by userID and
// reports how many memberships were removed.
func (r *streamRepository) UnfollowBoard(ctx context.Context, userID, boardID uint64) (int64, error) {
	streamIDs := dbsql.Conn(ctx, r.db).
		Model(&dbsql.FollowStream{}).
		Select("stream_id").
		Where("user_id = ?", userID)

	res := dbsql.Conn(ctx, r.db).
		Where("board_id = ? AND stream_id IN (?)", boardID, streamIDs).
		Delete(&dbsql.FollowStreamBoard{})
	if res.Error != nil {
		return 0, dbsql.Translate(res.Error, "unfollow board", "stream board")
	}
	return res.RowsAffected, nil
}
