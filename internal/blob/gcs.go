package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/storage/v1"
)

var _ Backend = (*GCSBackend)(nil)

type GCSBackend struct {
	service *storage.Service
	bucket  string
}

func NewGCSBackend(ctx context.Context, bucket string, opts ...option.ClientOption) (*GCSBackend, error) {
	service, err := storage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage service: %w", err)
	}
	return &GCSBackend{
		service: service,
		bucket:  bucket,
	}, nil
}

func (b *GCSBackend) Name() string {
	return "gcs"
}

func (b *GCSBackend) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := b.service.Objects.
		Insert(b.bucket, &storage.Object{Name: key, ContentType: contentType}).
		Media(bytes.NewReader(data), googleapi.ContentType(contentType)).
		Context(ctx).
		Do()
	return err
}

func (b *GCSBackend) Get(ctx context.Context, key string) ([]byte, error) {
	resp, err := b.service.Objects.Get(b.bucket, key).Context(ctx).Download()
	if err != nil {
		if isGoogleNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

func (b *GCSBackend) Exists(ctx context.Context, key string) (bool, error) {
	_, err := b.service.Objects.Get(b.bucket, key).Context(ctx).Do()
	if err != nil {
		if isGoogleNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func isGoogleNotFound(err error) bool {
	var gErr *googleapi.Error
	return errors.As(err, &gErr) && gErr.Code == http.StatusNotFound
}
