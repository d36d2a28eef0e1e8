package patients

import (
	"context"
	"patient-service/internal/app/contracts"
	"patient-service/internal/app/models"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientSnapshotService struct {
	Storage contracts.SnapshotStorage
	Prefix  string
	Log     *zap.Logger
	clock   func() time.Time
}

// NewPatientSnapshotService uploads a timestamped copy of the committed
// document. Upload failures are logged only.
func NewPatientSnapshotService(storage contracts.SnapshotStorage, prefix string, logger *zap.Logger) contracts.PatientSnapshotter {
	return &patientSnapshotService{
		Storage: storage,
		Prefix:  prefix,
		Log:     logger,
		clock:   time.Now,
	}
}

func (s *patientSnapshotService) Snapshot(ctx context.Context, document models.PatientDocument) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	objectName := utils.GenerateSnapshotObjectName(s.Prefix, s.clock())

	content, err := json.Marshal(document)
	if err == nil {
		err = s.Storage.UploadSnapshot(ctx, objectName, content)
	}
	if err != nil {
		s.Log.Warn("patientSnapshotService.Snapshot upload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return
	}

	s.Log.Debug("patientSnapshotService.Snapshot uploaded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
}

type noopSnapshotter struct{}

// NewNoopPatientSnapshotter is used when MinIO is disabled.
func NewNoopPatientSnapshotter() contracts.PatientSnapshotter {
	return noopSnapshotter{}
}

func (noopSnapshotter) Snapshot(ctx context.Context, document models.PatientDocument) {}
