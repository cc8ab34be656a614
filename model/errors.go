package model

import (
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrMissingUsername  = errors.New("MISSING_USERNAME")
	ErrRateLimitReached = errors.New("RATE_LIMIT_REACHED")
	ErrRateLimiterError = errors.New("RATE_LIMITER_ERROR")
	ErrInvalidResponse  = errors.New("INVALID_RESPONSE")
	ErrFetch            = errors.New("FETCH_ERROR")
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewAPIError converts an error returned by the services to the payload sent to API consumers
func NewAPIError(errReason error) APIError {
	switch {
	case errors.Is(errReason, ErrMissingUsername):
		return APIError{
			Code:    ErrMissingUsername.Error(),
			Message: "a github username is required",
		}

	case errors.Is(errReason, ErrRateLimitReached):
		return APIError{
			Code:    ErrRateLimitReached.Error(),
			Message: "github rate limit reached. consider using a token to increase the limit or wait few minutes and try again",
		}

	case errors.Is(errReason, ErrInvalidResponse):
		return APIError{
			Code:    ErrInvalidResponse.Error(),
			Message: "github returned an unexpected response. contact our support with the reason code for assistance",
		}

	case errors.Is(errReason, ErrRateLimiterError):
		return APIError{
			Code:    ErrRateLimiterError.Error(),
			Message: "internal server error. contact our support with the reason code for assistance",
		}

	case errors.Is(errReason, ErrFetch):
		return APIError{
			Code:    ErrFetch.Error(),
			Message: "internal server error. contact our support with the reason code for assistance",
		}
	}

	return APIError{
		Code:    "GENERIC_ERROR",
		Message: "internal server error. contact our support with the reason code for assistance",
	}
}

// StatusCode returns the HTTP status matching the error
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingUsername):
		return http.StatusBadRequest
	case errors.Is(err, ErrRateLimitReached):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrInvalidResponse), errors.Is(err, ErrFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
