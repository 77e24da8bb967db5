package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Custom errors
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// AuthConfigError means the provider rejected or never received our credential.
type AuthConfigError struct{ Err error }

func (e *AuthConfigError) Error() string { return "provider auth: " + e.Err.Error() }
func (e *AuthConfigError) Unwrap() error { return e.Err }

type QuotaExceededError struct{ Err error }

func (e *QuotaExceededError) Error() string { return "provider quota: " + e.Err.Error() }
func (e *QuotaExceededError) Unwrap() error { return e.Err }

// UpstreamError covers every other provider or network failure.
type UpstreamError struct{ Err error }

func (e *UpstreamError) Error() string { return "provider: " + e.Err.Error() }
func (e *UpstreamError) Unwrap() error { return e.Err }

var errMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

// classifyProviderError maps a raw provider failure onto AuthConfigError,
// QuotaExceededError or UpstreamError. Status codes win; the message is only
// inspected when the error carries no usable status.
func classifyProviderError(err error) error {
	if err == nil {
		return nil
	}

	var (
		authErr     *AuthConfigError
		quotaErr    *QuotaExceededError
		upstreamErr *UpstreamError
	)
	if errors.As(err, &authErr) || errors.As(err, &quotaErr) || errors.As(err, &upstreamErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &UpstreamError{Err: err}
	}

	switch statusCategory(err) {
	case categoryAuth:
		return &AuthConfigError{Err: err}
	case categoryQuota:
		return &QuotaExceededError{Err: err}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key"):
		return &AuthConfigError{Err: err}
	case strings.Contains(msg, "quota"):
		return &QuotaExceededError{Err: err}
	default:
		return &UpstreamError{Err: err}
	}
}

type category int

const (
	categoryUnknown category = iota
	categoryAuth
	categoryQuota
)

func statusCategory(err error) category {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		if c := httpCategory(apiErr.HTTPCode()); c != categoryUnknown {
			return c
		}
		if st := apiErr.GRPCStatus(); st != nil {
			return grpcCategory(st.Code())
		}
	}

	if st, ok := status.FromError(err); ok {
		return grpcCategory(st.Code())
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return httpCategory(gErr.Code)
	}

	return categoryUnknown
}

func httpCategory(code int) category {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return categoryAuth
	case http.StatusTooManyRequests:
		return categoryQuota
	}
	return categoryUnknown
}

func grpcCategory(code codes.Code) category {
	switch code {
	case codes.Unauthenticated, codes.PermissionDenied:
		return categoryAuth
	case codes.ResourceExhausted:
		return categoryQuota
	}
	return categoryUnknown
}
