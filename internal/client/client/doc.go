// Package client contains the typed HTTP client for the jobpilot backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) with one
//     method per backend endpoint: users, resumes, jobs and Telegram
//     notifications, plus a Ping health probe.
//  2. A concrete REST/JSON implementation (see HTTPClient). It is
//     constructed explicitly with New and passed to whoever needs it; there
//     is no package-level instance.
//
// # Transport
//
// Every method issues exactly one HTTP request against baseURL+path on the
// calling goroutine. Requests carry Content-Type: application/json (merged
// with per-call headers, caller wins), Accept: application/json and an
// X-Request-Id used to correlate log lines. Resume uploads are multipart and
// send only the multipart content type. The client never retries and sets no
// timeout of its own; inject an *http.Client with WithHTTPClient to change
// that.
//
// # Error Handling
//
// Three failure kinds reach the caller, never with partial data:
//   - non-2xx responses yield *StatusError (errors.Is(err, ErrHTTPStatus));
//   - network failures are wrapped with %w, so context.Canceled and
//     *url.Error stay reachable through errors.Is/As;
//   - malformed 2xx bodies yield *DecodeError (errors.Is(err, ErrDecode)).
//
// Each failure is logged at error level before it is returned.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Concurrent calls are independent;
// nothing is queued, deduplicated or cached.
//
// See Also
//
//   - Interface: Client
//   - HTTP impl: HTTPClient, New, WithHTTPClient, WithLogger
//   - Errors:    ErrHTTPStatus, ErrDecode, ErrUnavailable, StatusError, DecodeError
package client
