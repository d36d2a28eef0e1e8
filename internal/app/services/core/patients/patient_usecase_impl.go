package patients

import (
	"cmp"
	"context"
	"patient-service/internal/app/config"
	"patient-service/internal/app/contracts"
	"patient-service/internal/app/models"
	"patient-service/internal/app/services/shared/locker"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/dto/responses"
	"patient-service/internal/pkg/exceptions"
	"patient-service/internal/pkg/utils"
	"slices"
	"time"

	"go.uber.org/zap"
)

const (
	defaultLockTTL         = 10 * time.Second
	defaultLockWaitTimeout = 5 * time.Second
)

var sortableFields = map[string]bool{
	constvars.SortFieldAge:       true,
	constvars.SortFieldPatientID: true,
}

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	LockerService     contracts.LockerService
	EventPublisher    contracts.PatientEventPublisher
	Snapshotter       contracts.PatientSnapshotter
	LockTTL           time.Duration
	LockWaitTimeout   time.Duration
	Log               *zap.Logger
	clock             func() time.Time
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.PatientEventPublisher,
	snapshotter contracts.PatientSnapshotter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	lockTTL := time.Duration(internalConfig.App.LockTTLInSeconds) * time.Second
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}
	lockWaitTimeout := time.Duration(internalConfig.App.LockWaitTimeoutInSeconds) * time.Second
	if lockWaitTimeout <= 0 {
		lockWaitTimeout = defaultLockWaitTimeout
	}

	return &patientUsecase{
		PatientRepository: patientRepository,
		LockerService:     lockerService,
		EventPublisher:    eventPublisher,
		Snapshotter:       snapshotter,
		LockTTL:           lockTTL,
		LockWaitTimeout:   lockWaitTimeout,
		Log:               logger,
		clock:             time.Now,
	}
}

func (uc *patientUsecase) ListAll(ctx context.Context) (models.PatientDocument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	document, err := uc.PatientRepository.Load(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.ListAll error loading document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Debug("patientUsecase.ListAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(document)),
	)
	return document, nil
}

func (uc *patientUsecase) Get(ctx context.Context, patientID string) (*models.Patient, error) {
	document, err := uc.PatientRepository.Load(ctx)
	if err != nil {
		return nil, err
	}

	patient, ok := document[patientID]
	if !ok {
		return nil, exceptions.ErrPatientNotExist(nil, patientID)
	}
	return &patient, nil
}

func (uc *patientUsecase) Create(ctx context.Context, patient *models.Patient) (*responses.CreatePatient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.PatientID),
	)

	err := utils.ValidateStruct(patient)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	document, err := uc.mutateDocument(ctx, func(document models.PatientDocument) error {
		if _, exists := document[patient.PatientID]; exists {
			return exceptions.ErrPatientAlreadyExist(nil, patient.PatientID)
		}
		document[patient.PatientID] = patient.Clone()
		return nil
	})
	if err != nil {
		uc.Log.Error("patientUsecase.Create failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patient.PatientID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.afterCommit(ctx, constvars.PatientEventCreated, patient.PatientID, document)

	return &responses.CreatePatient{
		PatientID: patient.PatientID,
		Name:      patient.DisplayName(),
	}, nil
}

func (uc *patientUsecase) Update(ctx context.Context, patientID string, update *models.PatientUpdate) (*responses.UpdatePatient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	touched := update.TouchedFields()
	uc.Log.Info("patientUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Strings("fields", touched),
	)

	document, err := uc.mutateDocument(ctx, func(document models.PatientDocument) error {
		current, exists := document[patientID]
		if !exists {
			return exceptions.ErrPatientNotExist(nil, patientID)
		}

		updated := update.ApplyTo(current)
		if len(touched) > 0 {
			if err := utils.ValidateStructPartial(updated, touched...); err != nil {
				return exceptions.ErrInputValidation(err)
			}
		}

		document[patientID] = updated
		return nil
	})
	if err != nil {
		uc.Log.Error("patientUsecase.Update failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.afterCommit(ctx, constvars.PatientEventUpdated, patientID, document)

	return &responses.UpdatePatient{PatientID: patientID}, nil
}

func (uc *patientUsecase) Delete(ctx context.Context, patientID string) (*responses.DeletePatient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	document, err := uc.mutateDocument(ctx, func(document models.PatientDocument) error {
		if _, exists := document[patientID]; !exists {
			return exceptions.ErrPatientNotExist(nil, patientID)
		}
		delete(document, patientID)
		return nil
	})
	if err != nil {
		uc.Log.Error("patientUsecase.Delete failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.afterCommit(ctx, constvars.PatientEventDeleted, patientID, document)

	return &responses.DeletePatient{PatientID: patientID}, nil
}

// Sort orders patients by age descending or by patient ID ascending. Ties on
// age keep patient ID order.
func (uc *patientUsecase) Sort(ctx context.Context, field string) ([]models.Patient, error) {
	if !sortableFields[field] {
		return nil, exceptions.ErrInvalidSortField(nil, field)
	}

	document, err := uc.PatientRepository.Load(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]models.Patient, 0, len(document))
	for _, patient := range document {
		sorted = append(sorted, patient)
	}

	slices.SortFunc(sorted, func(a, b models.Patient) int {
		return cmp.Compare(a.PatientID, b.PatientID)
	})
	if field == constvars.SortFieldAge {
		slices.SortStableFunc(sorted, func(a, b models.Patient) int {
			return cmp.Compare(b.Age, a.Age)
		})
	}
	return sorted, nil
}

// mutateDocument runs load, mutate and save while holding the document lock
// and returns the saved document. Nothing is saved when mutate fails.
func (uc *patientUsecase) mutateDocument(ctx context.Context, mutate func(document models.PatientDocument) error) (models.PatientDocument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	lockCtx, cancel := context.WithTimeout(ctx, uc.LockWaitTimeout)
	lockValue, err := locker.Acquire(lockCtx, uc.LockerService, constvars.PatientDocumentLockKey, uc.LockTTL, locker.DefaultRetryInterval)
	cancel()
	if err != nil {
		return nil, err
	}
	defer func() {
		unlockErr := uc.LockerService.Unlock(context.WithoutCancel(ctx), constvars.PatientDocumentLockKey, lockValue)
		if unlockErr != nil {
			uc.Log.Error("patientUsecase.mutateDocument error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	var saved models.PatientDocument
	err = utils.LogOperation(uc.Log, "patientUsecase.mutateDocument", requestID, func() error {
		document, err := uc.PatientRepository.Load(ctx)
		if err != nil {
			return err
		}

		err = mutate(document)
		if err != nil {
			return err
		}

		err = uc.PatientRepository.Save(ctx, document)
		if err != nil {
			return err
		}
		saved = document
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// afterCommit runs once the lock is released.
func (uc *patientUsecase) afterCommit(ctx context.Context, eventName, patientID string, document models.PatientDocument) {
	uc.Snapshotter.Snapshot(ctx, document)
	uc.publish(ctx, eventName, patientID)
}

func (uc *patientUsecase) publish(ctx context.Context, eventName, patientID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := uc.EventPublisher.Publish(ctx, &models.PatientEvent{
		Event:      eventName,
		PatientID:  patientID,
		OccurredAt: uc.clock().UTC(),
		RequestID:  requestID,
	})
	if err != nil {
		uc.Log.Warn("patientUsecase.publish failed to publish patient event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, eventName),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return
	}

	utils.LogBusinessEvent(uc.Log, eventName, requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
}
