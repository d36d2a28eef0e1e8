package exceptions

import (
	"fmt"
	"patient-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrValidation, constvars.StatusUnprocessableEntity, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrClientTooManyRequests)
	}

	// Patient
	ErrPatientNotExist = func(err error, patientID string) *CustomError {
		return BuildNewCustomError(err, ErrNotFound, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf(constvars.ErrDevPatientNotExists, patientID))
	}
	ErrPatientAlreadyExist = func(err error, patientID string) *CustomError {
		return BuildNewCustomError(err, ErrAlreadyExists, constvars.StatusConflict, constvars.ErrClientPatientAlreadyExists, fmt.Sprintf(constvars.ErrDevPatientAlreadyExists, patientID))
	}
	ErrInvalidSortField = func(err error, field string) *CustomError {
		return BuildNewCustomError(err, ErrInvalidField, constvars.StatusBadRequest, constvars.ErrClientInvalidSortField, fmt.Sprintf(constvars.ErrDevInvalidSortField, field))
	}

	// Auth
	ErrUserNotExist = func(err error, userID string) *CustomError {
		return BuildNewCustomError(err, ErrNotFound, constvars.StatusNotFound, constvars.ErrClientUserNotFound, fmt.Sprintf(constvars.ErrDevUserNotExists, userID))
	}
	ErrIncorrectPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrInvalidCredential, constvars.StatusUnauthorized, constvars.ErrClientIncorrectPassword, constvars.ErrDevInvalidCredentials)
	}

	// Document
	ErrReadDocument = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDocumentRead, path))
	}
	ErrDecodeDocument = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDocumentDecode, path))
	}
	ErrWriteDocument = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDocumentWrite, path))
	}

	// Locker
	ErrLockNotAcquired = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, fmt.Sprintf(constvars.ErrDevLockNotAcquired, key))
	}
	ErrLockNotOwned = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevLockNotOwned, key))
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
