package inventory

import (
	"context"
	"fmt"
	"io"

	"market-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// S3Source reads a JSON array of feed rows from object storage. When no
// object is pinned in the configuration it picks the most recently
// modified object under the configured prefix, which matches how the
// exporter drops timestamped snapshots.
type S3Source struct {
	client storage.Client
	bucket string
	object string
	prefix string
	logger *zap.Logger
}

// NewS3Source builds a Source reading feed snapshots from the given bucket.
func NewS3Source(client storage.Client, bucket string, cfg Config, logger *zap.Logger) *S3Source {
	return &S3Source{
		client: client,
		bucket: bucket,
		object: cfg.Object,
		prefix: cfg.Prefix,
		logger: logger,
	}
}

func (s *S3Source) Load(ctx context.Context) ([]Record, error) {
	key := s.object
	if key == "" {
		latest, err := s.latestObject(ctx)
		if err != nil {
			return nil, err
		}
		key = latest
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get feed object %s/%s: %w", s.bucket, key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read feed object %s/%s: %w", s.bucket, key, err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("decode feed object %s/%s: %w", s.bucket, key, err)
	}

	s.logger.Debug("inventory snapshot loaded",
		zap.String("source", SourceS3),
		zap.String("object", key),
		zap.Int("records", len(records)))
	return records, nil
}

// latestObject returns the key of the most recently modified object under
// the prefix.
func (s *S3Source) latestObject(ctx context.Context) (string, error) {
	var newest minio.ObjectInfo
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return "", fmt.Errorf("list feed objects %s/%s: %w", s.bucket, s.prefix, info.Err)
		}
		if newest.Key == "" || info.LastModified.After(newest.LastModified) {
			newest = info
		}
	}
	if newest.Key == "" {
		return "", fmt.Errorf("no feed objects under %s/%s", s.bucket, s.prefix)
	}
	return newest.Key, nil
}
