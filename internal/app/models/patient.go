package models

import (
	"slices"
	"time"

	"github.com/goccy/go-json"
)

type Patient struct {
	PatientID          string   `json:"patient_id" validate:"required"`
	FirstName          string   `json:"first_name" validate:"required"`
	LastName           string   `json:"last_name" validate:"required"`
	Age                int      `json:"age" validate:"min=1,max=120"`
	Gender             string   `json:"gender" validate:"required,oneof=male female others"`
	BloodGroup         string   `json:"blood_group" validate:"required,oneof=O- O+ A+ A- B+ B- AB+ AB-"`
	ContactNumber      string   `json:"contact_number" validate:"required"`
	Email              string   `json:"email" validate:"required"`
	Address            string   `json:"address" validate:"required"`
	MedicalHistory     []string `json:"medical_history" validate:"required"`
	Allergies          []string `json:"allergies" validate:"required"`
	CurrentMedications []string `json:"current_medications" validate:"required"`
}

func (p Patient) DisplayName() string {
	return p.FirstName + " " + p.LastName
}

// Clone returns a copy that shares no slices with p.
func (p Patient) Clone() Patient {
	p.MedicalHistory = slices.Clone(p.MedicalHistory)
	p.Allergies = slices.Clone(p.Allergies)
	p.CurrentMedications = slices.Clone(p.CurrentMedications)
	return p
}

// PatientDocument is the whole persisted collection keyed by patient ID.
type PatientDocument map[string]Patient

// PatientUpdate carries a partial patient. A field is present when it was
// set programmatically or when its key appeared in the decoded JSON body,
// including an explicit null.
type PatientUpdate struct {
	FirstName          *string  `json:"first_name"`
	LastName           *string  `json:"last_name"`
	Age                *int     `json:"age"`
	Gender             *string  `json:"gender"`
	BloodGroup         *string  `json:"blood_group"`
	ContactNumber      *string  `json:"contact_number"`
	Email              *string  `json:"email"`
	Address            *string  `json:"address"`
	MedicalHistory     []string `json:"medical_history"`
	Allergies          []string `json:"allergies"`
	CurrentMedications []string `json:"current_medications"`

	present map[string]bool
}

// json name -> Patient struct field name
var patientUpdateFields = map[string]string{
	"first_name":          "FirstName",
	"last_name":           "LastName",
	"age":                 "Age",
	"gender":              "Gender",
	"blood_group":         "BloodGroup",
	"contact_number":      "ContactNumber",
	"email":               "Email",
	"address":             "Address",
	"medical_history":     "MedicalHistory",
	"allergies":           "Allergies",
	"current_medications": "CurrentMedications",
}

func (u *PatientUpdate) UnmarshalJSON(data []byte) error {
	type plain PatientUpdate

	var keys map[string]interface{}
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*u = PatientUpdate(decoded)
	u.present = make(map[string]bool, len(keys))
	for name := range keys {
		if _, ok := patientUpdateFields[name]; ok {
			u.present[name] = true
		}
	}
	return nil
}

// Has reports whether the field, named by its JSON key, is part of the update.
func (u *PatientUpdate) Has(field string) bool {
	if u.present[field] {
		return true
	}
	switch field {
	case "first_name":
		return u.FirstName != nil
	case "last_name":
		return u.LastName != nil
	case "age":
		return u.Age != nil
	case "gender":
		return u.Gender != nil
	case "blood_group":
		return u.BloodGroup != nil
	case "contact_number":
		return u.ContactNumber != nil
	case "email":
		return u.Email != nil
	case "address":
		return u.Address != nil
	case "medical_history":
		return u.MedicalHistory != nil
	case "allergies":
		return u.Allergies != nil
	case "current_medications":
		return u.CurrentMedications != nil
	}
	return false
}

// TouchedFields returns the Patient struct field names covered by the update,
// in a stable order.
func (u *PatientUpdate) TouchedFields() []string {
	touched := make([]string, 0, len(patientUpdateFields))
	for name, structField := range patientUpdateFields {
		if u.Has(name) {
			touched = append(touched, structField)
		}
	}
	slices.Sort(touched)
	return touched
}

// ApplyTo returns a copy of patient with every present field overwritten.
// A present field holding nil becomes the zero value.
func (u *PatientUpdate) ApplyTo(patient Patient) Patient {
	updated := patient.Clone()
	if u.Has("first_name") {
		updated.FirstName = stringValue(u.FirstName)
	}
	if u.Has("last_name") {
		updated.LastName = stringValue(u.LastName)
	}
	if u.Has("age") {
		updated.Age = 0
		if u.Age != nil {
			updated.Age = *u.Age
		}
	}
	if u.Has("gender") {
		updated.Gender = stringValue(u.Gender)
	}
	if u.Has("blood_group") {
		updated.BloodGroup = stringValue(u.BloodGroup)
	}
	if u.Has("contact_number") {
		updated.ContactNumber = stringValue(u.ContactNumber)
	}
	if u.Has("email") {
		updated.Email = stringValue(u.Email)
	}
	if u.Has("address") {
		updated.Address = stringValue(u.Address)
	}
	if u.Has("medical_history") {
		updated.MedicalHistory = slices.Clone(u.MedicalHistory)
	}
	if u.Has("allergies") {
		updated.Allergies = slices.Clone(u.Allergies)
	}
	if u.Has("current_medications") {
		updated.CurrentMedications = slices.Clone(u.CurrentMedications)
	}
	return updated
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type PatientEvent struct {
	Event      string    `json:"event"`
	PatientID  string    `json:"patient_id"`
	OccurredAt time.Time `json:"occurred_at"`
	RequestID  string    `json:"request_id,omitempty"`
}
