package contracts

import (
	"context"
	"patient-service/internal/app/models"
	"patient-service/internal/pkg/dto/responses"
)

// PatientRepository loads and rewrites the whole patient document.
type PatientRepository interface {
	Load(ctx context.Context) (models.PatientDocument, error)
	Save(ctx context.Context, document models.PatientDocument) error
}

type PatientUsecase interface {
	ListAll(ctx context.Context) (models.PatientDocument, error)
	Get(ctx context.Context, patientID string) (*models.Patient, error)
	Create(ctx context.Context, patient *models.Patient) (*responses.CreatePatient, error)
	Update(ctx context.Context, patientID string, update *models.PatientUpdate) (*responses.UpdatePatient, error)
	Delete(ctx context.Context, patientID string) (*responses.DeletePatient, error)
	Sort(ctx context.Context, field string) ([]models.Patient, error)
}

type PatientEventPublisher interface {
	Publish(ctx context.Context, event *models.PatientEvent) error
}

// PatientSnapshotter stores a copy of the document after a committed write.
type PatientSnapshotter interface {
	Snapshot(ctx context.Context, document models.PatientDocument)
}
