package constvars

type ContextKey string

const (
	ResourcePatients = "patients"
	ResourceAuth     = "auth"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PTNT_SVC_"
)

const (
	PatientDocumentLockKey = "patients:document"
)

const (
	SortFieldAge       = "age"
	SortFieldPatientID = "patient_id"
)

const (
	PatientEventCreated = "patient.created"
	PatientEventUpdated = "patient.updated"
	PatientEventDeleted = "patient.deleted"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)
