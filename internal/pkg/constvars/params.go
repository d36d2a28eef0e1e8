package constvars

const (
	URLParamPatientID = "patient_id"
	URLParamUserID    = "user_id"
	URLParamPassword  = "password"
)

const (
	URLQueryParamSortBy = "sort_by"
)
