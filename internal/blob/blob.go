package blob

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

var (
	ErrNotFound  = errors.New("blob not found")
	ErrEmptyData = errors.New("blob data is empty")
	ErrBadKey    = errors.New("invalid blob key")
)

// Backend is the raw object storage a Store writes to.
type Backend interface {
	Name() string
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// Store uploads check-in photos and PDFs under generated keys, and resolves
// the public URLs it hands out back to keys.
type Store struct {
	backend        Backend
	prefix         string
	baseURL        string
	metricsManager *metrics.Manager
}

func NewStore(backend Backend, prefix, baseURL string, metricsManager *metrics.Manager) *Store {
	return &Store{
		backend:        backend,
		prefix:         strings.Trim(prefix, "/"),
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		metricsManager: metricsManager,
	}
}

// NewKey builds "{prefix}/{uuid}{ext}", ext derived from the content type.
func NewKey(prefix, contentType string) string {
	key := uuid.NewString() + extension(contentType)
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}

func extension(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	switch mediaType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/heic":
		return ".heic"
	case "application/pdf":
		return ".pdf"
	}
	if exts, _ := mime.ExtensionsByType(mediaType); len(exts) > 0 {
		return exts[0]
	}
	return ""
}

func (s *Store) URL(key string) string {
	return s.baseURL + "/" + key
}

// KeyFromURL accepts both URLs handed out by Upload and bare keys.
func (s *Store) KeyFromURL(url string) string {
	return strings.TrimPrefix(url, s.baseURL+"/")
}

func (s *Store) Upload(ctx context.Context, data []byte, contentType string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "blob.upload")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("backend", s.backend.Name()))
	span.SetAttributes(attribute.String("content-type", contentType))
	span.SetAttributes(attribute.Int("size", len(data)))

	if len(data) == 0 {
		return "", ErrEmptyData
	}

	key := NewKey(s.prefix, contentType)
	start := time.Now()
	err = s.backend.Put(ctx, key, data, contentType)
	if s.metricsManager != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		s.metricsManager.CounterBlobUploads.WithLabelValues(s.backend.Name(), status).Inc()
		s.metricsManager.HistBlobUploadDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}

	log.Debugf("blob uploaded [%s]: %s (%d bytes)", s.backend.Name(), key, len(data))
	return s.URL(key), nil
}

func (s *Store) Download(ctx context.Context, url string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "blob.download")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := s.KeyFromURL(url)
	span.SetAttributes(attribute.String("key", key))
	if err := validateKey(key); err != nil {
		return nil, err
	}

	return s.backend.Get(ctx, key)
}

func (s *Store) Exists(ctx context.Context, key string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "blob.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	if err := validateKey(key); err != nil {
		return false, err
	}
	return s.backend.Exists(ctx, key)
}

func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") {
		return ErrBadKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return ErrBadKey
		}
	}
	return nil
}
