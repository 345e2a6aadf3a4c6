package stackhost

import "fmt"

// CredentialError indicates that no complete credential source could be
// found. It is fatal at startup and never retried.
type CredentialError struct {
	Reason string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("credentials unresolved: %s", e.Reason)
}

// ContextResolutionError indicates that the account identifier could not be
// determined. The account cache is never poisoned by this error, so a later
// call will attempt resolution again.
type ContextResolutionError struct {
	Err error
}

func (e *ContextResolutionError) Error() string {
	return fmt.Sprintf("account context resolution failed: %v", e.Err)
}

func (e *ContextResolutionError) Unwrap() error {
	return e.Err
}

// HTMLResponseError indicates the backend returned an HTML payload instead of
// JSON. This is the dominant failure mode for wrong authentication or a
// mistyped endpoint path, so the status code and a tag-stripped preview of
// the page text are preserved for diagnostics.
type HTMLResponseError struct {
	StatusCode int
	Preview    string
}

func (e *HTMLResponseError) Error() string {
	return fmt.Sprintf("backend returned HTML instead of JSON (status %d): %s", e.StatusCode, e.Preview)
}

// ResponseFormatError indicates the backend returned a non-JSON, non-HTML
// string that looks like an unquoted object literal. It is distinct from a
// plain parse failure so callers can tell "backend returned garbage" apart
// from "backend returned nothing".
type ResponseFormatError struct {
	Snippet string
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("backend returned a malformed object-literal response: %q", e.Snippet)
}

// UpstreamAPIError carries a structured JSON error body returned by the
// backend with a non-2xx status. Message and status are preserved verbatim.
type UpstreamAPIError struct {
	StatusCode int
	Message    string
	Method     string
	Path       string
}

func (e *UpstreamAPIError) Error() string {
	return fmt.Sprintf("upstream API error (%s %s, status %d): %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// TransportError wraps a network-level failure (connection refused, timeout,
// malformed URL) tagged with the request that produced it.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error (%s %s): %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
