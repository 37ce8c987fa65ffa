// Package uploader stores uploaded image content with an external
// collaborator and hands back a durable URL for it.
package uploader

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Uploader stores a file stream and returns a URL it can later be fetched from.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// objectName builds a collision-free object name keeping the original extension
func objectName(filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%d-%s%s", time.Now().Unix(), uuid.New().String(), ext)
}
