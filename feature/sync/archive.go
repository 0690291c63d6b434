package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"market-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// S3Archiver writes finished run reports as JSON objects to object storage,
// one object per run.
type S3Archiver struct {
	client storage.Client
	bucket string
	prefix string
}

// NewS3Archiver builds an Archiver storing reports under the given prefix.
func NewS3Archiver(client storage.Client, bucket, prefix string) *S3Archiver {
	return &S3Archiver{client: client, bucket: bucket, prefix: prefix}
}

// Archive stores the report under <prefix><started-at>-<run-id>.json.
func (a *S3Archiver) Archive(ctx context.Context, report RunReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%s%s-%s.json",
		a.prefix, report.StartedAt.Format("20060102T150405Z"), report.RunID)

	_, err = a.client.PutObject(ctx, a.bucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("put report %s/%s: %w", a.bucket, key, err)
	}
	return nil
}
