// Package common contains shared constants and sentinel errors used across
// jobpilot components.
package common

// RequestIDHeaderName is the HTTP header carrying the per-request correlation
// id on outbound calls and stub backend responses.
const RequestIDHeaderName = "X-Request-Id"

// DefaultCurrency is assumed when a job carries no currency code.
const DefaultCurrency = "RUB"

// DefaultAPIURL is the backend base URL used when nothing else is configured.
const DefaultAPIURL = "http://localhost:8000/api"
