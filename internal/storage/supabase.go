package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-hclog"
	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"

	"github.com/jmylchreest/hairhue/internal/logging"
)

// DefaultBucket holds uploaded and generated images.
const DefaultBucket = "hairstyle-images"

// bucketClient is the part of the Supabase storage client used here.
type bucketClient interface {
	UploadFile(bucketID, relativePath string, data io.Reader, opts ...storage_go.FileOptions) (storage_go.FileUploadResponse, error)
	GetPublicUrl(bucketID, filePath string, opts ...storage_go.UrlOptions) storage_go.SignedUrlResponse
}

// SupabaseStorage uploads to a public Supabase storage bucket.
type SupabaseStorage struct {
	client bucketClient
	bucket string
	logger hclog.Logger
	now    func() time.Time
}

// SupabaseOption configures SupabaseStorage.
type SupabaseOption func(*SupabaseStorage)

// WithBucket overrides DefaultBucket.
func WithBucket(bucket string) SupabaseOption {
	return func(s *SupabaseStorage) {
		if bucket != "" {
			s.bucket = bucket
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) SupabaseOption {
	return func(s *SupabaseStorage) { s.logger = logging.OrNull(l) }
}

// NewSupabaseStorage connects to the Supabase project at url using a service
// key.
func NewSupabaseStorage(url, key string, opts ...SupabaseOption) (*SupabaseStorage, error) {
	if url == "" || key == "" {
		return nil, fmt.Errorf("supabase url and key are required")
	}

	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return newSupabaseStorage(client.Storage, opts...), nil
}

func newSupabaseStorage(client bucketClient, opts ...SupabaseOption) *SupabaseStorage {
	s := &SupabaseStorage{
		client: client,
		bucket: DefaultBucket,
		logger: hclog.NewNullLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upload stores obj under a fresh key and returns its public URL.
func (s *SupabaseStorage) Upload(ctx context.Context, obj Object) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := ObjectKey(s.now().UTC(), obj.Ext)
	contentType := obj.ContentType
	upsert := false

	_, err := s.client.UploadFile(s.bucket, key, bytes.NewReader(obj.Data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	url := s.client.GetPublicUrl(s.bucket, key).SignedURL
	s.logger.Debug("uploaded object", "bucket", s.bucket, "key", key, "bytes", len(obj.Data))
	return url, nil
}
