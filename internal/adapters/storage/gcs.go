// Package storage stores proof artifacts in Google Cloud Storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/middleware"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gcs "google.golang.org/api/storage/v1"
)

const publicBaseURL = "https://storage.googleapis.com"

// GCSProofStore writes objects with the Cloud Storage JSON API and hands back
// their public URL.
type GCSProofStore struct {
	objects *gcs.ObjectsService
	bucket  string
	baseURL string
}

var _ portssvc.ProofStorage = (*GCSProofStore)(nil)

// NewGCSProofStore builds a store for bucket. Extra client options (for
// example option.WithCredentialsFile) are passed through to the API client.
func NewGCSProofStore(ctx context.Context, bucket string, opts ...option.ClientOption) (*GCSProofStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("proof bucket cannot be empty")
	}
	svc, err := gcs.NewService(ctx, append([]option.ClientOption{option.WithScopes(gcs.DevstorageReadWriteScope)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSProofStore{objects: gcs.NewObjectsService(svc), bucket: bucket, baseURL: publicBaseURL}, nil
}

// WithPublicBaseURL overrides the host of returned URLs.
func (s *GCSProofStore) WithPublicBaseURL(base string) *GCSProofStore {
	s.baseURL = strings.TrimRight(base, "/")
	return s
}

func (s *GCSProofStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	obj := &gcs.Object{Name: key, ContentType: contentType}
	stored, err := s.objects.Insert(s.bucket, obj).
		Name(key).
		Media(body, googleapi.ContentType(contentType)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", key, s.bucket, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Proof stored",
		slog.String("bucket", s.bucket),
		slog.String("object", key),
		slog.Uint64("size", stored.Size))
	return s.ObjectURL(key), nil
}

// ObjectURL returns the public URL of an object in the store's bucket.
func (s *GCSProofStore) ObjectURL(key string) string {
	return s.baseURL + "/" + url.PathEscape(s.bucket) + (&url.URL{Path: "/" + key}).EscapedPath()
}
