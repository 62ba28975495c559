// Package apperr provides a coded error shared by the game and word services,
// with a mapping onto gRPC status codes.
package apperr

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeUnknown         Code = "UNKNOWN"
	CodeUnavailable     Code = "UNAVAILABLE"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeGameOver        Code = "GAME_OVER"
	CodeNotFound        Code = "NOT_FOUND"
)

// GRPCCode maps a code to its gRPC status code.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeUnavailable:
		return codes.Unavailable
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeGameOver:
		return codes.FailedPrecondition
	case CodeNotFound:
		return codes.NotFound
	default:
		return codes.Internal
	}
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// New creates an error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an error with a code and message around cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Sentinels for errors.Is checks.
var (
	ErrUnavailable = New(CodeUnavailable, "unavailable")
	ErrGameOver    = New(CodeGameOver, "game over")
)

// ToStatus converts err into a gRPC status error. A coded error wins over any
// status it wraps; other status errors pass through and uncoded errors become
// Internal.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return status.Error(e.Code.GRPCCode(), e.Error())
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codes.Internal, err.Error())
}
