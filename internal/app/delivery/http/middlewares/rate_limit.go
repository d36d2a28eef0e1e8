package middlewares

import (
	"net/http"
	"patient-service/internal/pkg/exceptions"
	"patient-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiter limits every request per client IP to MaxRequests per
// second.
func (m *Middlewares) CreateRateLimiter() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
