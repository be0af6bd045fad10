package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
)

// AuthMiddleware rejects requests without the configured API key
func AuthMiddleware(apiKey string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := clientIP(r)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware blocks clients that exceed the request budget of the window
func RateLimitMiddleware(detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(clientIP(r)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, HeaderValueNoSniff)
		w.Header().Set(HeaderFrameOptions, HeaderValueDeny)
		w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerNoReferrer)
		next.ServeHTTP(w, r)
	})
}

// SuspiciousActivityDetector counts failed logins and requests per client
// over a fixed window.
type SuspiciousActivityDetector struct {
	mu          sync.Mutex
	failedAuth  map[string]int
	requests    map[string]int
	windowStart time.Time
	limit       int
	now         func() time.Time
}

// NewSuspiciousActivityDetector creates a detector allowing limit requests per window
func NewSuspiciousActivityDetector(limit int) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failedAuth:  make(map[string]int),
		requests:    make(map[string]int),
		windowStart: time.Now(),
		limit:       limit,
		now:         time.Now,
	}
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetIfExpired()
	s.failedAuth[ip]++
	if s.failedAuth[ip] >= FailedAuthAlertAfter {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", s.failedAuth[ip])
	}
}

// RecordRequest records a request and reports false once the client is over the limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetIfExpired()
	s.requests[ip]++
	if s.requests[ip] > s.limit {
		if s.requests[ip]%100 == 0 {
			slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", s.requests[ip])
		}
		return false
	}
	return true
}

// caller holds the mutex
func (s *SuspiciousActivityDetector) resetIfExpired() {
	if s.now().Sub(s.windowStart) > RateWindow {
		s.requests = make(map[string]int)
		s.failedAuth = make(map[string]int)
		s.windowStart = s.now()
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
