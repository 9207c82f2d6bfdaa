package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"foodgram-backend/internal/config"
)

// ErrInvalidImage is returned when the submitted image payload
// is not a decodable base64 data URI.
var ErrInvalidImage = fmt.Errorf("invalid image payload")

// MinIOStorage handles recipe image uploads to MinIO
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIOStorage initializes the MinIO client and ensures the bucket exists
func NewMinIOStorage(cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStorage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// UploadBase64 decodes a base64 data URI ("data:image/png;base64,...")
// and stores it under recipes/<uuid>.<ext>. Returns the public URL.
func (s *MinIOStorage) UploadBase64(ctx context.Context, dataURI string) (string, error) {
	contentType, data, err := decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	ext := "bin"
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
		ext = parts[1]
	}
	key := fmt.Sprintf("recipes/%s.%s", uuid.New().String(), ext)

	_, err = s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	// Format: http://localhost:9000/foodgram/recipes/<uuid>.png
	url := fmt.Sprintf("http://%s/%s/%s", s.client.EndpointURL().Host, s.bucket, key)

	return url, nil
}

// Delete removes a single object by key
func (s *MinIOStorage) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// DeleteByURL strips the endpoint/bucket prefix from a stored URL
// and removes the object it points at.
func (s *MinIOStorage) DeleteByURL(ctx context.Context, url string) error {
	prefix := fmt.Sprintf("http://%s/%s/", s.client.EndpointURL().Host, s.bucket)
	key := strings.TrimPrefix(url, prefix)
	if key == url || key == "" {
		// URL does not belong to this bucket, nothing to clean up
		return nil
	}
	return s.Delete(ctx, key)
}

// decodeDataURI splits "data:<mime>;base64,<payload>" into content type and bytes
func decodeDataURI(dataURI string) (string, []byte, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return "", nil, ErrInvalidImage
	}

	rest := strings.TrimPrefix(dataURI, "data:")
	idx := strings.Index(rest, ";base64,")
	if idx < 0 {
		return "", nil, ErrInvalidImage
	}

	contentType := rest[:idx]
	payload := rest[idx+len(";base64,"):]

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrInvalidImage
	}

	return contentType, data, nil
}
