package constvars

const (
	// Root messages
	WelcomeMessage = "PATIENT MANAGEMENT API"
	AboutMessage   = "API manages patient data and provides health predictions."

	// Patient-related messages
	GetPatientsSuccessMessage   = "get patients successfully"
	GetPatientSuccessMessage    = "get patient successfully"
	SortPatientsSuccessMessage  = "sort patients successfully"
	CreatePatientSuccessMessage = "patient created successfully"
	UpdatePatientSuccessMessage = "patient data updated successfully"
	DeletePatientSuccessMessage = "patient deleted successfully"

	// Auth messages
	LoginSuccessMessage = "login successful"
)
