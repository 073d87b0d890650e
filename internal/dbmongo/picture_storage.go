package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pinboard/internal/apperr"
	"pinboard/internal/common"
	"pinboard/internal/config"
)

// PictureStorage keeps uploaded picture bytes in GridFS. The locator handed
// back to callers is the hex ObjectID of the stored file.
type PictureStorage struct {
	gridFS  *gridfs.Bucket
	baseURL string
}

func NewPictureStorage(mongoClient *MongoClient, cfg *config.Config) *PictureStorage {
	return &PictureStorage{
		gridFS:  mongoClient.GridFS,
		baseURL: cfg.Server.MediaBaseURL,
	}
}

type PictureFile struct {
	ID          string               `json:"id"`
	Filename    string               `json:"filename"`
	ContentType string               `json:"content_type"`
	Size        int64                `json:"size"`
	FileType    common.MediaFileType `json:"file_type"`
	UploadedBy  uint64               `json:"uploaded_by"`
	UploadedAt  time.Time            `json:"uploaded_at"`
}

// Store streams content into GridFS and returns its locator. The stored
// filename is randomized, the client-supplied name goes to metadata.
func (ps *PictureStorage) Store(ctx context.Context, filename, contentType string, uploaderID uint64, content io.Reader) (string, error) {
	if contentType == "" {
		contentType = common.ContentTypeFor(filename)
	}
	metadata := bson.M{
		"original_name": filename,
		"content_type":  contentType,
		"file_type":     common.DetectFileType(contentType).String(),
		"uploaded_by":   strconv.FormatUint(uploaderID, 10),
		"uploaded_at":   time.Now(),
	}

	storedName := uuid.NewString()
	if ext := common.FileExtension(filename); ext != "" {
		storedName += "." + ext
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ps.gridFS.OpenUploadStream(storedName, opts)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetWriteDeadline(deadline)
	}

	if _, err := io.Copy(stream, content); err != nil {
		_ = stream.Abort()
		return "", fmt.Errorf("file copy failed: %w", err)
	}
	if err := stream.Close(); err != nil {
		return "", fmt.Errorf("upload finalize failed: %w", err)
	}

	id, ok := stream.FileID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected GridFS file id %T", stream.FileID)
	}
	return id.Hex(), nil
}

// Resolve turns a locator into the public URL the media server answers on.
func (ps *PictureStorage) Resolve(locator string) string {
	if locator == "" {
		return ""
	}
	return strings.TrimSuffix(ps.baseURL, "/") + "/" + locator
}

// Open streams a stored picture. The caller must close the returned reader.
func (ps *PictureStorage) Open(ctx context.Context, locator string) (io.ReadCloser, *PictureFile, error) {
	objectID, err := primitive.ObjectIDFromHex(locator)
	if err != nil {
		return nil, nil, apperr.InvalidInput("invalid picture locator %q", locator)
	}

	stream, err := ps.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, apperr.NotFound("picture file not found")
		}
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetReadDeadline(deadline)
	}

	return stream, fileFromGridFS(locator, stream.GetFile()), nil
}

func (ps *PictureStorage) Delete(ctx context.Context, locator string) error {
	objectID, err := primitive.ObjectIDFromHex(locator)
	if err != nil {
		return apperr.InvalidInput("invalid picture locator %q", locator)
	}
	if err := ps.gridFS.DeleteContext(ctx, objectID); err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

func fileFromGridFS(locator string, file *gridfs.File) *PictureFile {
	var metadata bson.M
	if file.Metadata != nil {
		_ = bson.Unmarshal(file.Metadata, &metadata)
	}

	uploadedBy, _ := strconv.ParseUint(getStringFromMap(metadata, "uploaded_by"), 10, 64)
	contentType := getStringFromMap(metadata, "content_type")
	if contentType == "" {
		contentType = common.ContentTypeFor(file.Name)
	}

	return &PictureFile{
		ID:          locator,
		Filename:    file.Name,
		ContentType: contentType,
		Size:        file.Length,
		FileType:    common.MediaFileType(getStringFromMap(metadata, "file_type")),
		UploadedBy:  uploadedBy,
		UploadedAt:  file.UploadDate,
	}
}

func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
