//go:build unit

package types

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Run("Execution", func(t *testing.T) {
		err := &ExecutionError{Command: "nmcli connection up id Home", ExitCode: 10, Stderr: "profile not found\n"}
		assert.Equal(t, "command nmcli connection up id Home exited with code 10: profile not found", err.Error())

		err.Stderr = "  "
		assert.Contains(t, err.Error(), "no error output")
	})

	t.Run("Timeout", func(t *testing.T) {
		err := &TimeoutError{Command: "nmcli device wifi list", Timeout: 30 * time.Second}
		assert.Equal(t, "command nmcli device wifi list timed out after 30s", err.Error())
	})

	t.Run("NotFound", func(t *testing.T) {
		assert.Equal(t, "IPv4 address not found", (&NotFoundError{Resource: "IPv4 address"}).Error())
	})

	t.Run("Validation", func(t *testing.T) {
		assert.Equal(t, "invalid ssid: must not be empty", (&ValidationError{Field: "ssid", Reason: "must not be empty"}).Error())
	})

	t.Run("Parse", func(t *testing.T) {
		err := &ParseError{Command: "nmcli", RawOutput: "junk", Reason: "bad"}
		assert.Equal(t, "failed to parse output of nmcli: bad", err.Error())
	})
}

func TestErrorClassification(t *testing.T) {
	errs := map[string]error{
		"execution":  &ExecutionError{},
		"timeout":    &TimeoutError{},
		"parse":      &ParseError{},
		"notfound":   &NotFoundError{},
		"validation": &ValidationError{},
	}
	checks := map[string]func(error) bool{
		"execution":  IsExecution,
		"timeout":    IsTimeout,
		"parse":      IsParse,
		"notfound":   IsNotFound,
		"validation": IsValidation,
	}

	for kind, err := range errs {
		wrapped := fmt.Errorf("request failed: %w", err)
		for checkKind, check := range checks {
			assert.Equal(t, kind == checkKind, check(wrapped), "%s classified by %s", kind, checkKind)
		}
	}

	assert.False(t, IsExecution(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}
