package errors

import "net/http"

// Code classifies an error for transport mapping
type Code string

// Codes used by the encounter service. Names follow the gRPC status codes.
const (
	CodeOK                Code = "OK"
	CodeCanceled          Code = "CANCELED"
	CodeInvalidArgument   Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded  Code = "DEADLINE_EXCEEDED"
	CodeNotFound          Code = "NOT_FOUND"
	CodeResourceExhausted Code = "RESOURCE_EXHAUSTED"
	CodeInternal          Code = "INTERNAL"
	CodeUnavailable       Code = "UNAVAILABLE"
)

func (c Code) String() string {
	return string(c)
}

// HTTPStatus maps the code onto the status the JSON API answers with
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeResourceExhausted:
		return http.StatusTooManyRequests
	case CodeCanceled:
		return http.StatusRequestTimeout
	case CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Retryable reports whether the same request may succeed later without changes.
// Exhausted generation providers and an unreachable store both qualify.
func (c Code) Retryable() bool {
	return c == CodeResourceExhausted || c == CodeUnavailable
}
