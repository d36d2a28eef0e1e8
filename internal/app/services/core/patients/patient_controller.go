package patients

import (
	"context"
	"io"
	"net/http"
	"patient-service/internal/app/config"
	"patient-service/internal/app/contracts"
	"patient-service/internal/app/models"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/exceptions"
	"patient-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PatientController) Root(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WelcomeMessage, nil)
}

func (ctrl *PatientController) About(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AboutMessage, nil)
}

func (ctrl *PatientController) FindAllPatients(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("PatientController.FindAllPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.ListAll(ctx)
	if err != nil {
		ctrl.writeError(w, requestID, "PatientController.FindAllPatients", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, result)
}

func (ctrl *PatientController) FindPatientByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Info("PatientController.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.Get(ctx, patientID)
	if err != nil {
		ctrl.writeError(w, requestID, "PatientController.FindPatientByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, result)
}

func (ctrl *PatientController) SortPatients(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sortBy := r.URL.Query().Get(constvars.URLQueryParamSortBy)
	ctrl.Log.Info("PatientController.SortPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSortFieldKey, sortBy),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.Sort(ctx, sortBy)
	if err != nil {
		ctrl.writeError(w, requestID, "PatientController.SortPatients", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SortPatientsSuccessMessage, result)
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("PatientController.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Bind body to request
	request := new(models.Patient)
	err := json.NewDecoder(ctrl.limitBody(w, r)).Decode(request)
	if err != nil {
		ctrl.writeError(w, requestID, "PatientController.CreatePatient", exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreatePatientRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.Create(ctx, request)
	if err != nil {
		ctrl.writeError(w, requestID, "PatientController.CreatePatient", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccessMessage, result)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Info("PatientController.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	request := new(models.PatientUpdate)
	err := json.NewDecoder(ctrl.limitBody(w, r)).Decode(request)
	if err != nil {
		ctrl.writeError(w, requestID, "PatientController.UpdatePatient", exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdatePatientRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.Update(ctx, patientID, request)
	if err != nil {
		ctrl.writeError(w, requestID, "PatientController.UpdatePatient", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, result)
}

func (ctrl *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Info("PatientController.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.Delete(ctx, patientID)
	if err != nil {
		ctrl.writeError(w, requestID, "PatientController.DeletePatient", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePatientSuccessMessage, result)
}

func (ctrl *PatientController) writeError(w http.ResponseWriter, requestID, operation string, err error) {
	err = exceptions.MapDeadlineExceeded(err)
	ctrl.Log.Error(operation+" error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

func (ctrl *PatientController) requestTimeout() time.Duration {
	if ctrl.InternalConfig == nil || ctrl.InternalConfig.App.RequestTimeoutInSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *PatientController) limitBody(w http.ResponseWriter, r *http.Request) io.Reader {
	if ctrl.InternalConfig != nil && ctrl.InternalConfig.App.RequestBodyLimitInMegabyte > 0 {
		return http.MaxBytesReader(w, r.Body, int64(ctrl.InternalConfig.App.RequestBodyLimitInMegabyte)<<20)
	}
	return r.Body
}
