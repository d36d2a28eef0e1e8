package constvars

// Validation messages for patients, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"oneof":    "must be one of: %s",
}

// Tags whose message carries the tag parameter
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientPatientAlreadyExists          = "patient already exists"
	ErrClientInvalidSortField              = "not a valid field to sort by"
	ErrClientUserNotFound                  = "user not found"
	ErrClientIncorrectPassword             = "incorrect password"
	ErrClientTooManyRequests               = "too many requests, you are blocked temporarily"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevServerProcess          = "failed to process request"
	ErrDevServerDeadlineExceeded = "deadline exceeded"

	// Patient messages
	ErrDevPatientNotExists     = "patient %s does not exist"
	ErrDevPatientAlreadyExists = "patient %s already exists"
	ErrDevInvalidSortField     = "sort field %s is not supported"

	// Auth messages
	ErrDevUserNotExists      = "user %s does not exist"
	ErrDevInvalidCredentials = "invalid credentials"

	// Document messages
	ErrDevDocumentRead   = "failed to read patient document %s"
	ErrDevDocumentDecode = "failed to decode patient document %s"
	ErrDevDocumentWrite  = "failed to write patient document %s"

	// Locker messages
	ErrDevLockNotAcquired = "failed to acquire lock %s"
	ErrDevLockNotOwned    = "lock %s not owned by this client"

	// Redis messages
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
