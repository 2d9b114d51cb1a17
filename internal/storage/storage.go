package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// ArtifactStore defines the interface for archiving raw generation payloads
// (prompt plus unmodified model output) in object storage. Archiving is
// best-effort: the generation pipeline never fails because of it.
type ArtifactStore interface {
	// PutObject uploads an artifact under the given key.
	PutObject(ctx context.Context, objectKey string, body []byte, contentType string) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for downloading an artifact directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an artifact from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
