package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/BabyEggBot_Go/internal/clock"
	"github.com/osse101/BabyEggBot_Go/internal/logger"
)

// AuthMiddleware requires X-API-Key on ProtectedPrefixes routes. An empty apiKey
// leaves every route open.
func AuthMiddleware(apiKey string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || !isProtected(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

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

func isProtected(path string) bool {
	for _, prefix := range ProtectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
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

// SuspiciousActivityDetector counts requests and failed authentications per IP
// over a fixed window
type SuspiciousActivityDetector struct {
	clk clock.Clock

	mu               sync.Mutex
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	windowStart      time.Time
}

func NewSuspiciousActivityDetector(clk clock.Clock) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		clk:              clk,
		failedAuthByIP:   make(map[string]int),
		requestCountByIP: make(map[string]int),
		windowStart:      clk.Now(),
	}
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetIfExpired()
	s.failedAuthByIP[ip]++
	if s.failedAuthByIP[ip] >= FailedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", s.failedAuthByIP[ip])
	}
}

// RecordRequest counts a request and returns false once ip exceeds the window limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetIfExpired()
	s.requestCountByIP[ip]++
	if n := s.requestCountByIP[ip]; n > MaxRequestsPerWindow {
		if n%HighRateLogEvery == 0 {
			slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
		}
		return false
	}
	return true
}

// Caller must hold the mutex
func (s *SuspiciousActivityDetector) resetIfExpired() {
	if s.clk.Since(s.windowStart) > RateWindow {
		s.requestCountByIP = make(map[string]int)
		s.failedAuthByIP = make(map[string]int)
		s.windowStart = s.clk.Now()
	}
}

// RateLimitMiddleware rejects clients over the per-window request limit
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

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueDeny)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
