package routers

import (
	"patient-service/internal/app/delivery/http/middlewares"
	"patient-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, writeLimiter *middlewares.RateLimiter, patientController *patients.PatientController) {
	router.Get("/", patientController.FindAllPatients)
	router.Get("/sort", patientController.SortPatients)
	router.Get("/{patient_id}", patientController.FindPatientByID)

	router.Group(func(r chi.Router) {
		if writeLimiter != nil {
			r.Use(writeLimiter.Limit)
		}
		r.Post("/", patientController.CreatePatient)
		r.Put("/{patient_id}", patientController.UpdatePatient)
		r.Delete("/{patient_id}", patientController.DeletePatient)
	})
}
