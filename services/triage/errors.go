package triage

import "fmt"

// User-facing messages. The wording is fixed; clients render these verbatim.
const (
	MsgSymptomsTooShort = "Please describe your symptoms in more detail."
	MsgGenericFailure   = "An unexpected error occurred. Please try again."
)

// ValidationError reports locally rejected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validationError: %s", e.Message)
}

// UpstreamFormatError reports a model response that violates the expected
// schema (missing field, non-integer score, score out of range).
type UpstreamFormatError struct {
	Detail string
}

func (e *UpstreamFormatError) Error() string {
	return fmt.Sprintf("upstreamFormatError: %s", e.Detail)
}

// UpstreamUnavailableError reports a failed model call (network, timeout,
// auth). The caller surfaces a generic retryable message; no automatic
// retry is attempted.
type UpstreamUnavailableError struct {
	Err error
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("upstreamUnavailableError: %v", e.Err)
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Err
}
