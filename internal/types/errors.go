package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ExecutionError reports a command that ran and exited non-zero.
type ExecutionError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExecutionError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = "no error output"
	}
	return fmt.Sprintf("command %s exited with code %d: %s", e.Command, e.ExitCode, msg)
}

// TimeoutError reports a command that was killed after exceeding its timeout.
type TimeoutError struct {
	Command string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("command %s timed out after %s", e.Command, e.Timeout)
}

// ParseError reports successful command output that did not match the expected format.
type ParseError struct {
	Command   string
	RawOutput string
	Reason    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse output of %s: %s", e.Command, e.Reason)
}

// NotFoundError reports a well-formed query that legitimately found nothing.
type NotFoundError struct {
	Resource string
	Command  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ValidationError reports caller input rejected before any command was issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsExecution(err error) bool {
	var target *ExecutionError
	return errors.As(err, &target)
}

func IsTimeout(err error) bool {
	var target *TimeoutError
	return errors.As(err, &target)
}

func IsParse(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
