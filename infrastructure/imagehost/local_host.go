// Package imagehost contains implementations of the image hosting port.
package imagehost

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"sync"

	"pressroom-backend/application/ports"
	pkgerrors "pressroom-backend/pkg/errors"
)

// LocalHost is a content-addressed in-process image host. Uploads are kept
// in memory and exposed under deterministic URLs, which makes it suitable
// for development and tests.
type LocalHost struct {
	baseURL string

	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewLocalHost creates a local image host serving URLs under baseURL
func NewLocalHost(baseURL string) *LocalHost {
	return &LocalHost{
		baseURL: strings.TrimRight(baseURL, "/"),
		blobs:   make(map[string][]byte),
	}
}

// Upload stores the image and returns its stable URLs
func (h *LocalHost) Upload(ctx context.Context, filename string, data []byte) (*ports.HostedImage, error) {
	if len(data) == 0 {
		return nil, pkgerrors.NewValidationError("image data cannot be empty")
	}

	sum := sha256.Sum256(data)
	key := hex.EncodeToString(sum[:])
	ext := path.Ext(filename)

	h.mu.Lock()
	h.blobs[key] = data
	h.mu.Unlock()

	return &ports.HostedImage{
		URL:          fmt.Sprintf("%s/i/%s%s", h.baseURL, key, ext),
		ThumbnailURL: fmt.Sprintf("%s/t/%s%s", h.baseURL, key, ext),
	}, nil
}

// Get returns a previously uploaded blob by its content hash
func (h *LocalHost) Get(key string) ([]byte, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	data, ok := h.blobs[key]
	return data, ok
}
