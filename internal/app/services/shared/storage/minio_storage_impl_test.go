package storage

import (
	"context"
	"errors"
	"io"
	"patient-service/internal/pkg/exceptions"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	bucket      string
	object      string
	content     []byte
	size        int64
	contentType string
	err         error
}

func (f *fakePutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.err != nil {
		return minio.UploadInfo{}, f.err
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.bucket = bucketName
	f.object = objectName
	f.content = content
	f.size = objectSize
	f.contentType = opts.ContentType
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func TestMinioStorage_UploadSnapshot(t *testing.T) {
	putter := &fakePutter{}
	storage := &minioStorage{MinioClient: putter, BucketName: "patient-snapshots"}

	content := []byte(`{"P001":{"patient_id":"P001"}}`)
	err := storage.UploadSnapshot(context.Background(), "patients/20240101T000000.000000000Z.json", content)
	require.NoError(t, err)

	assert.Equal(t, "patient-snapshots", putter.bucket)
	assert.Equal(t, "patients/20240101T000000.000000000Z.json", putter.object)
	assert.Equal(t, content, putter.content)
	assert.Equal(t, int64(len(content)), putter.size)
	assert.Equal(t, "application/json", putter.contentType)
}

func TestMinioStorage_UploadSnapshotError(t *testing.T) {
	cause := errors.New("bucket unreachable")
	storage := &minioStorage{MinioClient: &fakePutter{err: cause}, BucketName: "patient-snapshots"}

	err := storage.UploadSnapshot(context.Background(), "patients/x.json", []byte("{}"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, customErr.DevMessage, "patient-snapshots")
}
