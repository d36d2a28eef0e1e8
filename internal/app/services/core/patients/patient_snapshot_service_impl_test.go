package patients

import (
	"context"
	"errors"
	"patient-service/internal/app/models"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSnapshotStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
	// onUpload runs before the object is stored
	onUpload func()
}

func (f *fakeSnapshotStorage) UploadSnapshot(ctx context.Context, objectName string, content []byte) error {
	if f.onUpload != nil {
		f.onUpload()
	}
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[objectName] = content
	return nil
}

func newSnapshotService(storage *fakeSnapshotStorage) *patientSnapshotService {
	service := NewPatientSnapshotService(storage, "patients", zap.NewNop()).(*patientSnapshotService)
	service.clock = func() time.Time { return time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC) }
	return service
}

func TestPatientSnapshotService_Upload(t *testing.T) {
	storage := &fakeSnapshotStorage{}
	service := newSnapshotService(storage)

	document := models.PatientDocument{"P001": samplePatient("P001", 30)}
	service.Snapshot(context.Background(), document)

	content, ok := storage.objects["patients/20240302T010000.000000000Z.json"]
	require.True(t, ok, "snapshot should be stored under the timestamped name")

	var uploaded models.PatientDocument
	require.NoError(t, json.Unmarshal(content, &uploaded))
	assert.Equal(t, document, uploaded)
}

func TestPatientSnapshotService_UploadFailureIsSwallowed(t *testing.T) {
	storage := &fakeSnapshotStorage{err: errors.New("minio down")}
	service := newSnapshotService(storage)

	assert.NotPanics(t, func() {
		service.Snapshot(context.Background(), models.PatientDocument{"P001": samplePatient("P001", 30)})
	})
	assert.Empty(t, storage.objects)
}

func TestNoopPatientSnapshotter(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNoopPatientSnapshotter().Snapshot(context.Background(), models.PatientDocument{})
	})
}
