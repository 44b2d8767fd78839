package models

import "errors"

// ErrorType identifies the category of error that occurred.
type ErrorType string

const (
	// Credential prompts
	ErrInputEmpty ErrorType = "input_empty"

	// Credential gate
	ErrCredentialFormatInvalid ErrorType = "credential_format_invalid"
	ErrCredentialRejected      ErrorType = "credential_rejected"

	// Process level
	ErrUserInterruptType ErrorType = "user_interrupt"
	ErrUnhandledFault    ErrorType = "unhandled_fault"
)

var (
	// ErrUserInterrupt is returned when the process receives an interrupt signal.
	ErrUserInterrupt = errors.New("interrupted by user")

	// ErrInputClosed is returned when standard input ends while a prompt is waiting.
	ErrInputClosed = errors.New("input closed")
)
