package ai

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel failures of the generation adapter. All of them leave the
// caller's document untouched.
var (
	// ErrMissingAPIKey is returned before any network attempt when no
	// credential is configured.
	ErrMissingAPIKey = errors.New("API key is missing (set FATURA_API_KEY or run 'fatura config set api_key ...')")

	// ErrEmptyResponse is returned when the service reply carries no text.
	ErrEmptyResponse = errors.New("no text in model response")

	// ErrMalformedResponse is returned when the reply text does not match
	// the required invoice schema.
	ErrMalformedResponse = errors.New("model response does not match the invoice schema")
)

// AuthError indicates authentication/authorization failures (401/403).
type AuthError struct{ *APIError }

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.APIError.Error())
}

// RateLimitError indicates 429 responses and may include a Retry-After.
type RateLimitError struct {
	*APIError
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: wait about %ds before retrying: %s", int(e.RetryAfter.Seconds()), e.APIError.Error())
	}
	return fmt.Sprintf("rate limited: %s", e.APIError.Error())
}

// BadRequestError indicates a 400 validation problem.
type BadRequestError struct{ *APIError }

func (e *BadRequestError) Error() string { return fmt.Sprintf("bad request: %s", e.APIError.Error()) }

// QuotaExceededError indicates billing/quota problems.
type QuotaExceededError struct{ *APIError }

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded: %s", e.APIError.Error())
}

// ServerError indicates 5xx errors from the provider.
type ServerError struct{ *APIError }

func (e *ServerError) Error() string { return fmt.Sprintf("provider error: %s", e.APIError.Error()) }
