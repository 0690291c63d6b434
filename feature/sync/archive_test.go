package sync

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"market-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestS3Archiver_Archive(t *testing.T) {
	report := RunReport{
		RunID:     "run-1",
		StartedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Records:   2,
		Campaigns: []CampaignReport{{CampaignID: "111", Model: "FBS"}},
	}

	var uploaded []byte
	store := &mocks.Client{}
	store.On("PutObject", mock.Anything, "inventory", "reports/20240115T103000Z-run-1.json",
		mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			uploaded = data
			assert.Equal(t, int64(len(data)), args.Get(4).(int64))
			opts := args.Get(5).(minio.PutObjectOptions)
			assert.Equal(t, "application/json", opts.ContentType)
		}).
		Return(minio.UploadInfo{}, nil).Once()

	archiver := NewS3Archiver(store, "inventory", "reports/")
	require.NoError(t, archiver.Archive(context.Background(), report))

	var restored RunReport
	require.NoError(t, json.Unmarshal(uploaded, &restored))
	assert.Equal(t, report.RunID, restored.RunID)
	assert.Equal(t, report.Records, restored.Records)
	store.AssertExpectations(t)
}

func TestS3Archiver_Archive_UploadError(t *testing.T) {
	store := &mocks.Client{}
	store.On("PutObject", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError).Once()

	archiver := NewS3Archiver(store, "inventory", "reports/")
	err := archiver.Archive(context.Background(), RunReport{RunID: "run-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
