//go:build unit

package command

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"golang-nmgateway/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shell(script string) types.Command {
	return types.Command{Name: "sh", Args: []string{"-c", script}, Op: "test"}
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping test")
	}
}

func TestNewRunnerAdapter(t *testing.T) {
	adapter := NewRunnerAdapter()
	require.NotNil(t, adapter)
	assert.Contains(t, adapter.env, "LC_ALL=C")
}

func TestRunnerAdapter_Run(t *testing.T) {
	requireShell(t)
	adapter := NewRunnerAdapter()
	ctx := context.Background()

	t.Run("CapturesOutput", func(t *testing.T) {
		result, err := adapter.Run(ctx, shell("echo out; echo err >&2"), time.Second)
		require.NoError(t, err)
		assert.Equal(t, 0, result.ExitCode)
		assert.Equal(t, "out\n", result.Stdout)
		assert.Equal(t, "err\n", result.Stderr)
	})

	t.Run("NonZeroExitIsNotAnError", func(t *testing.T) {
		result, err := adapter.Run(ctx, shell("echo 'profile not found' >&2; exit 3"), time.Second)
		require.NoError(t, err)
		assert.Equal(t, 3, result.ExitCode)
		assert.Equal(t, "profile not found\n", result.Stderr)
	})

	t.Run("ArgumentsNotInterpreted", func(t *testing.T) {
		result, err := adapter.Run(ctx, types.Command{Name: "sh", Args: []string{"-c", `printf %s "$1"`, "sh", "$(id) ; `ls`"}}, time.Second)
		require.NoError(t, err)
		assert.Equal(t, "$(id) ; `ls`", result.Stdout)
	})

	t.Run("CLocale", func(t *testing.T) {
		result, err := adapter.Run(ctx, shell(`printf %s "$LC_ALL"`), time.Second)
		require.NoError(t, err)
		assert.Equal(t, "C", result.Stdout)
	})

	t.Run("Timeout", func(t *testing.T) {
		start := time.Now()
		_, err := adapter.Run(ctx, shell("sleep 10"), 100*time.Millisecond)
		require.Error(t, err)

		var timeoutErr *types.TimeoutError
		require.ErrorAs(t, err, &timeoutErr)
		assert.Equal(t, 100*time.Millisecond, timeoutErr.Timeout)
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("ChildrenKilledOnTimeout", func(t *testing.T) {
		start := time.Now()
		_, err := adapter.Run(ctx, shell("sleep 10 & sleep 10; wait"), 100*time.Millisecond)
		assert.True(t, types.IsTimeout(err))
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("ParentCancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := adapter.Run(cancelled, shell("sleep 1"), time.Second)
		require.Error(t, err)
		assert.False(t, types.IsTimeout(err))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("MissingProgram", func(t *testing.T) {
		_, err := adapter.Run(ctx, types.Command{Name: "/nonexistent/nmcli"}, time.Second)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to run")
	})
}
