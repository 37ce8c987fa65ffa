package uploader

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSUploader stores uploads in a Google Cloud Storage bucket
type GCSUploader struct {
	client *storage.Client
	bucket string
}

// NewGCSUploader creates a GCS-backed uploader. If credsPath is empty,
// Application Default Credentials are used.
func NewGCSUploader(ctx context.Context, bucket, credsPath string) (*GCSUploader, error) {
	var client *storage.Client
	var err error

	if credsPath == "" {
		client, err = storage.NewClient(ctx)
	} else {
		client, err = storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
	}
	if err != nil {
		return nil, err
	}

	return &GCSUploader{client: client, bucket: bucket}, nil
}

// Upload writes the stream into the bucket and returns the public object URL
func (u *GCSUploader) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	object := objectName(filename)

	wc := u.client.Bucket(u.bucket).Object(object).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, object), nil
}

// Close releases the underlying storage client
func (u *GCSUploader) Close() error {
	return u.client.Close()
}
