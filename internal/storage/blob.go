package storage

import "context"

// BlobInfo identifies a stored object: URL for display, PublicID for later
// deletion.
type BlobInfo struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// BlobStore is the upload surface used by banner/gallery/faculty/receipt and
// student-document handlers.
type BlobStore interface {
	Upload(ctx context.Context, data []byte, folder, contentType string) (BlobInfo, error)
	Delete(ctx context.Context, publicID string) error
}

// Blob is the globally accessible store, set once in main.
var Blob BlobStore
