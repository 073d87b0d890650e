package dbmongo

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/gridfs"

	"pinboard/internal/apperr"
	"pinboard/internal/common"
	"pinboard/internal/config"
)

func TestPictureStorage_Resolve(t *testing.T) {
	ps := &PictureStorage{baseURL: "http://localhost:8080/media/"}

	assert.Equal(t, "http://localhost:8080/media/65f1a2b3c4d5e6f708091a2b", ps.Resolve("65f1a2b3c4d5e6f708091a2b"))
	assert.Equal(t, "", ps.Resolve(""))

	ps.baseURL = "https://cdn.example.com/media"
	assert.Equal(t, "https://cdn.example.com/media/abc", ps.Resolve("abc"))
}

func TestPictureStorage_RejectsBadLocator(t *testing.T) {
	ps := &PictureStorage{}

	_, _, err := ps.Open(context.Background(), "not-hex")
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))

	err = ps.Delete(context.Background(), "not-hex")
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
}

func TestFileFromGridFS(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"content_type": "image/png",
		"file_type":    "image",
		"uploaded_by":  "42",
	})
	require.NoError(t, err)

	uploaded := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f := fileFromGridFS("abc", &gridfs.File{Name: "x.png", Length: 512, UploadDate: uploaded, Metadata: raw})

	assert.Equal(t, "abc", f.ID)
	assert.Equal(t, "image/png", f.ContentType)
	assert.Equal(t, common.MediaFileTypeImage, f.FileType)
	assert.Equal(t, uint64(42), f.UploadedBy)
	assert.Equal(t, int64(512), f.Size)
	assert.Equal(t, uploaded, f.UploadedAt)

	// missing metadata falls back to the extension
	f = fileFromGridFS("def", &gridfs.File{Name: "y.gif"})
	assert.Equal(t, "image/gif", f.ContentType)
	assert.Zero(t, f.UploadedBy)
}

// Runs against a live MongoDB when MONGO_INTEGRATION is set, e.g. the
// docker-compose instance.
func TestPictureStorage_Integration(t *testing.T) {
	if os.Getenv("MONGO_INTEGRATION") == "" {
		t.Skip("MONGO_INTEGRATION not set")
	}

	cfg := &config.Config{
		Server: config.ServerConfig{MediaBaseURL: "http://localhost:8080/media/"},
		MongoDB: config.MongoDBConfig{
			Host:     getEnvOrDefault("MONGO_HOST", "localhost"),
			Port:     getEnvOrDefault("MONGO_PORT", "27017"),
			Username: os.Getenv("MONGO_USERNAME"),
			Password: os.Getenv("MONGO_PASSWORD"),
			Database: getEnvOrDefault("MONGO_DATABASE", "pinboard_test"),
			Bucket:   "pictures_test",
		},
	}

	client, err := NewMongoConnection(cfg)
	require.NoError(t, err)
	defer client.Close(context.Background())

	ps := NewPictureStorage(client, cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	payload := []byte("\x89PNG fake picture bytes")
	locator, err := ps.Store(ctx, "eiffel.png", "image/png", 7, bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Contains(t, ps.Resolve(locator), locator)

	rc, file, err := ps.Open(ctx, locator)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, uint64(7), file.UploadedBy)
	assert.Equal(t, "image/png", file.ContentType)

	require.NoError(t, ps.Delete(ctx, locator))
	_, _, err = ps.Open(ctx, locator)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
