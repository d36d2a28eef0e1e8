package middlewares

import (
	"net"
	"net/http"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/exceptions"
	"patient-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per client IP with a token bucket. A client
// that exhausts its bucket is blocked for blockTime. Clients idle for longer
// than per plus blockTime are dropped, their bucket would be full again anyway.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	lastSeen  map[string]time.Time
	lastPrune time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(rps int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		lastSeen:  make(map[string]time.Time),
		requests:  rps,
		per:       per,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !r.allow(ip) {
			utils.LogSecurityEvent(r.log, "write_throttled", utils.GetRequestID(req.Context()),
				zap.String(constvars.LoggingRemoteAddrKey, ip),
				zap.String(constvars.LoggingEndpointKey, req.URL.Path),
			)
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.prune(now)
	r.lastSeen[ip] = now

	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(r.blocked, ip)
	}

	limiter, exists := r.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(r.per/time.Duration(max(r.requests, 1))), max(r.requests, 1))
		r.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		return false
	}
	return true
}

func (r *RateLimiter) idleTTL() time.Duration {
	return r.per + r.blockTime
}

func (r *RateLimiter) prune(now time.Time) {
	idleTTL := r.idleTTL()
	if now.Sub(r.lastPrune) < idleTTL {
		return
	}
	r.lastPrune = now

	for ip, seen := range r.lastSeen {
		if now.Sub(seen) < idleTTL {
			continue
		}
		if blockedUntil, found := r.blocked[ip]; found && now.Before(blockedUntil) {
			continue
		}
		delete(r.lastSeen, ip)
		delete(r.limiters, ip)
		delete(r.blocked, ip)
	}
}
