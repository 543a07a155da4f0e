package errors

import (
	"context"
	"errors"
)

// Metadata keys shared by producers and the transports
const (
	MetaValidationErrors = "validation_errors"
	MetaProviderErrors   = "provider_errors"
)

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with a formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with a formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// ResourceExhausted creates a resource exhausted error
func ResourceExhausted(message string) *Error {
	return New(CodeResourceExhausted, message)
}

// Canceled creates a canceled error
func Canceled(message string) *Error {
	return New(CodeCanceled, message)
}

// GenerationUnavailable reports that every generation provider failed.
// providerErrors maps provider name to its last error text.
func GenerationUnavailable(providerErrors map[string]string) *Error {
	failures := make(map[string]interface{}, len(providerErrors))
	for name, msg := range providerErrors {
		failures[name] = msg
	}
	return ResourceExhausted("no generation provider is available, retry later").
		WithMeta(MetaProviderErrors, failures)
}

// FromContext classifies a context error as deadline exceeded or canceled
func FromContext(err error, message string) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return WrapWithCode(err, CodeDeadlineExceeded, message)
	}
	return WrapWithCode(err, CodeCanceled, message)
}

// GetCode returns the code of the outermost *Error in the chain.
// Plain errors are internal; nil is OK.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the outermost *Error in the chain
func GetMeta(err error) map[string]interface{} {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return nil
	}
	return e.Meta
}

// GetMessage returns the caller-facing message, falling back to err.Error()
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsNotFound reports whether err carries CodeNotFound
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument reports whether err carries CodeInvalidArgument
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsResourceExhausted reports whether err carries CodeResourceExhausted
func IsResourceExhausted(err error) bool {
	return GetCode(err) == CodeResourceExhausted
}

// IsUnavailable reports whether err carries CodeUnavailable
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

// IsCanceled reports whether err carries CodeCanceled
func IsCanceled(err error) bool {
	return GetCode(err) == CodeCanceled
}
