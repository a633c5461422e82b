package internal

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedMacMode  = errors.New("unsupported mac mode")
	ErrMissingPrivateKey   = errors.New("private key not configured")
	ErrMissingCertificate  = errors.New("certificate not configured")
	ErrMalformedCallback   = errors.New("malformed callback")
	ErrUnsupportedTrType   = errors.New("unsupported transaction type")
	ErrRequestNotValidated = errors.New("request has validation errors")
)

// ParameterValidationError reports malformed input to a setter or to the
// gateway configuration.
type ParameterValidationError struct {
	Field   string
	Message string
}

func (e *ParameterValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func parameterError(field, format string, args ...interface{}) error {
	return &ParameterValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// SignatureError is returned when key material cannot be loaded, when signing
// fails or when verification cannot even be attempted.
type SignatureError struct {
	Op  string
	Err error
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SignatureError) Unwrap() error {
	return e.Err
}

func signatureError(op string, err error) error {
	return &SignatureError{Op: op, Err: err}
}
