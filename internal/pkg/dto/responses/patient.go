package responses

type CreatePatient struct {
	PatientID string `json:"patient_id"`
	Name      string `json:"name"`
}

type UpdatePatient struct {
	PatientID string `json:"patient_id"`
}

type DeletePatient struct {
	PatientID string `json:"patient_id"`
}
