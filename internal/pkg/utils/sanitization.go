package utils

import (
	"patient-service/internal/app/models"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	if input == nil {
		return nil
	}
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func trimStringPointer(input *string) {
	if input != nil {
		*input = strings.TrimSpace(*input)
	}
}

func SanitizeCreatePatientRequest(input *models.Patient) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Gender = strings.TrimSpace(input.Gender)
	input.BloodGroup = strings.TrimSpace(input.BloodGroup)
	input.ContactNumber = strings.TrimSpace(input.ContactNumber)
	input.Email = strings.TrimSpace(input.Email)
	input.Address = strings.TrimSpace(input.Address)
	input.MedicalHistory = cleanWhiteSpaceFromEachStringOfAnArray(input.MedicalHistory)
	input.Allergies = cleanWhiteSpaceFromEachStringOfAnArray(input.Allergies)
	input.CurrentMedications = cleanWhiteSpaceFromEachStringOfAnArray(input.CurrentMedications)
}

func SanitizeUpdatePatientRequest(input *models.PatientUpdate) {
	trimStringPointer(input.FirstName)
	trimStringPointer(input.LastName)
	trimStringPointer(input.ContactNumber)
	trimStringPointer(input.Email)
	trimStringPointer(input.Address)
	trimStringPointer(input.Gender)
	trimStringPointer(input.BloodGroup)
	input.MedicalHistory = cleanWhiteSpaceFromEachStringOfAnArray(input.MedicalHistory)
	input.Allergies = cleanWhiteSpaceFromEachStringOfAnArray(input.Allergies)
	input.CurrentMedications = cleanWhiteSpaceFromEachStringOfAnArray(input.CurrentMedications)
}
