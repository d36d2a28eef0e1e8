package routers

import (
	"patient-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, authController *auth.AuthController) {
	router.Post("/login/{user_id}/{password}", authController.Login)
}
