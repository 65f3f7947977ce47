package types

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

const redactedArg = "******"

// Command is a single external program invocation expressed as an argument vector.
// It is never passed through a shell.
type Command struct {
	Name string
	Args []string

	// Op names the sub-command for logs and metrics (e.g. "connection up").
	Op string

	// Secret lists indexes into Args whose values must not appear in logs or errors.
	Secret []int
}

// Argv returns the full argument vector, program name first.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	return append(argv, c.Args...)
}

// String renders the command as a quoted POSIX shell line with secrets masked.
// The mask is spliced in after quoting so it reads literally.
func (c Command) String() string {
	secret := make(map[int]bool, len(c.Secret))
	for _, idx := range c.Secret {
		if idx >= 0 && idx < len(c.Args) {
			secret[idx+1] = true
		}
	}

	tokens := c.Argv()
	for i, token := range tokens {
		if secret[i] {
			tokens[i] = redactedArg
			continue
		}
		tokens[i] = shellquote.Join(token)
	}
	return strings.Join(tokens, " ")
}

// Label returns the operation name, falling back to the program name.
func (c Command) Label() string {
	if c.Op != "" {
		return c.Op
	}
	return strings.TrimSpace(c.Name)
}

// CommandResult is what a finished process reported.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}
