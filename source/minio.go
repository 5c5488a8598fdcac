package source

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
)

// MinIO fetches archives from an S3-compatible bucket holding a mirror of the
// published files.
type MinIO struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinIO creates a MinIO source. prefix is prepended to every archive name
// (e.g. "rcv1/").
func NewMinIO(client *minio.Client, bucket, prefix string) *MinIO {
	return &MinIO{client: client, bucket: bucket, prefix: prefix}
}

// Fetch downloads the named archive and returns its full body.
func (s *MinIO) Fetch(ctx context.Context, name string) ([]byte, error) {
	key := path.Join(s.prefix, name)

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("source: %s: %w", name, translateMinioErr(err))
	}
	defer obj.Close()

	// GetObject defers most failures to the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("source: %s: %w", name, translateMinioErr(err))
	}
	return data, nil
}

func translateMinioErr(err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.Code == "NotFound" || resp.Code == "NoSuchBucket" {
		return ErrNotFound
	}
	return err
}
