package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/muhammadheryan/kidswear/constant"
)

// FieldError names one failing field of a validated payload.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type CustomError struct {
	errType        constant.ErrorType
	fields         []FieldError
	service        string
	upstreamStatus int
}

func (c CustomError) Error() string {
	msg := constant.ErrorTypeMessage[c.errType]
	if c.service != "" {
		if c.upstreamStatus != 0 {
			return fmt.Sprintf("%s: %s (status %d)", c.service, msg, c.upstreamStatus)
		}
		return fmt.Sprintf("%s: %s", c.service, msg)
	}
	return msg
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Fields() []FieldError {
	return c.fields
}

func (c CustomError) Service() string {
	return c.service
}

func (c CustomError) UpstreamStatus() int {
	return c.upstreamStatus
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetValidationError lists every failing field.
func SetValidationError(fields []FieldError) CustomError {
	return CustomError{
		errType: constant.ErrValidation,
		fields:  fields,
	}
}

// SetUpstreamError describes a failed call to an external service. A zero
// status means the service could not be reached at all.
func SetUpstreamError(service string, status int) CustomError {
	errType := constant.ErrUpstream
	if status == 0 {
		errType = constant.ErrUpstreamUnreachable
	}
	return CustomError{
		errType:        errType,
		service:        service,
		upstreamStatus: status,
	}
}

func SetNotConfiguredError(service string) CustomError {
	return CustomError{
		errType: constant.ErrNotConfigured,
		service: service,
	}
}

// Is reports whether err carries the given error type.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if !stderrors.As(err, &ce) {
		return false
	}
	return ce.errType == errorType
}

// Classify returns err as a CustomError, collapsing anything unclassified
// into ErrInternal.
func Classify(err error) CustomError {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	return SetCustomError(constant.ErrInternal)
}
