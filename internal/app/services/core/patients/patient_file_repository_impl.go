package patients

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"patient-service/internal/app/contracts"
	"patient-service/internal/app/models"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type patientFileRepository struct {
	Fs   afero.Fs
	Path string
	Log  *zap.Logger
}

// NewPatientFileRepository stores the whole patient collection as one JSON
// object on fs at path.
func NewPatientFileRepository(fs afero.Fs, path string, logger *zap.Logger) contracts.PatientRepository {
	return &patientFileRepository{
		Fs:   fs,
		Path: path,
		Log:  logger,
	}
}

func (r *patientFileRepository) Load(ctx context.Context) (models.PatientDocument, error) {
	content, err := afero.ReadFile(r.Fs, r.Path)
	if errors.Is(err, os.ErrNotExist) {
		return make(models.PatientDocument), nil
	}
	if err != nil {
		return nil, exceptions.ErrReadDocument(err, r.Path)
	}

	document := make(models.PatientDocument)
	if len(content) == 0 {
		return document, nil
	}

	err = json.Unmarshal(content, &document)
	if err != nil {
		return nil, exceptions.ErrDecodeDocument(err, r.Path)
	}

	// older documents keep the id only as the key
	for id, patient := range document {
		if patient.PatientID == "" {
			patient.PatientID = id
			document[id] = patient
		}
	}
	return document, nil
}

const defaultDocumentMode os.FileMode = 0o644

// Save writes to a temporary file next to the target and renames it into
// place, so readers see either the old or the new document.
func (r *patientFileRepository) Save(ctx context.Context, document models.PatientDocument) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	content, err := json.Marshal(document)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	dir := filepath.Dir(r.Path)
	err = r.Fs.MkdirAll(dir, 0o755)
	if err != nil {
		return exceptions.ErrWriteDocument(err, r.Path)
	}

	// temp files are created 0600; keep the document's existing mode
	mode := defaultDocumentMode
	if info, statErr := r.Fs.Stat(r.Path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(r.Fs, dir, filepath.Base(r.Path)+".tmp-*")
	if err != nil {
		return exceptions.ErrWriteDocument(err, r.Path)
	}
	tmpName := tmp.Name()

	err = writeAndClose(tmp, content)
	if err == nil {
		err = r.Fs.Chmod(tmpName, mode)
	}
	if err == nil {
		err = r.Fs.Rename(tmpName, r.Path)
	}
	if err != nil {
		if removeErr := r.Fs.Remove(tmpName); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
			r.Log.Warn("patientFileRepository.Save failed to remove temporary file",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingFilePathKey, tmpName),
				zap.Error(removeErr),
			)
		}
		return exceptions.ErrWriteDocument(err, r.Path)
	}

	r.Log.Debug("patientFileRepository.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilePathKey, r.Path),
		zap.Int(constvars.LoggingRecordCountKey, len(document)),
	)
	return nil
}

func writeAndClose(file afero.File, content []byte) error {
	_, err := file.Write(content)
	if err == nil {
		err = file.Sync()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}
