package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopped    = "Server stopped"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueDeny                 = "DENY"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// ProtectedPrefixes are the path prefixes that require an API key when one is configured
var ProtectedPrefixes = []string{
	"/api/",
	"/swagger/",
}

// UnloggedPaths are scraped often enough that request logging would be noise
var UnloggedPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Rate limiting
const (
	RateWindow            = 5 * time.Minute
	MaxRequestsPerWindow  = 1000
	FailedAuthAlertCount  = 5
	HighRateLogEvery      = 100
	MaxRequestBodyBytes   = 1 << 20
	ReadHeaderTimeout     = 5 * time.Second
	DefaultShutdownPeriod = 10 * time.Second
)

// RedactedValue replaces secret header values in logs
const RedactedValue = "[REDACTED]"
