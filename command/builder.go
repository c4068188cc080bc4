package command

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the default command execution timeout
	DefaultTimeout = 2 * time.Minute

	// NoTimeout disables the timeout entirely. Clones and install hooks run
	// without a deadline; a hung command blocks the run until interrupted.
	NoTimeout time.Duration = 0
)

// SafeBuilder provides secure command execution with validation
type SafeBuilder struct {
	defaultTimeout time.Duration
	validators     map[string]func(string) error
	executor       Executor
}

// NewSafeBuilder creates a new SafeBuilder instance with a RealExecutor
func NewSafeBuilder() *SafeBuilder {
	return NewSafeBuilderWithExecutor(&RealExecutor{})
}

// NewSafeBuilderWithExecutor creates a new SafeBuilder with a custom Executor
func NewSafeBuilderWithExecutor(exec Executor) *SafeBuilder {
	return &SafeBuilder{
		defaultTimeout: DefaultTimeout,
		validators:     makeDefaultValidators(),
		executor:       exec,
	}
}

// makeDefaultValidators returns the default set of validators
func makeDefaultValidators() map[string]func(string) error {
	return map[string]func(string) error{
		"gitURL":      validateGitURL,
		"relPath":     validateRelPath,
		"commandName": validateCommandName,
	}
}

// validateGitURL ensures clone URLs are safe to pass to git
func validateGitURL(url string) error {
	if url == "" {
		return fmt.Errorf("git URL cannot be empty")
	}

	// Prevent option injection ("-u..." style arguments)
	if strings.HasPrefix(url, "-") {
		return fmt.Errorf("invalid git URL: %s (cannot start with '-')", url)
	}

	// Prevent command injection via shell metacharacters
	if strings.ContainsAny(url, ";|&`\n") {
		return fmt.Errorf("git URL contains invalid characters: %s", url)
	}

	return nil
}

// validateRelPath ensures destination paths stay inside the workspace root
func validateRelPath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if filepath.IsAbs(path) {
		return fmt.Errorf("path must be relative: %s", path)
	}

	// Prevent directory traversal
	for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
		if part == ".." {
			return fmt.Errorf("path cannot contain '..': %s", path)
		}
	}

	// Prevent command injection via shell metacharacters
	if strings.ContainsAny(path, ";|&$`\n") {
		return fmt.Errorf("path contains invalid characters: %s", path)
	}

	return nil
}

// validateCommandName ensures prerequisite command names are plain words
func validateCommandName(name string) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	validName := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._+-]*$`)
	if !validName.MatchString(name) {
		return fmt.Errorf("invalid command name: %s", name)
	}

	return nil
}

// Command represents a safe command configuration
type Command struct {
	ctx      context.Context
	name     string
	args     []string
	timeout  time.Duration
	executor Executor
}

// Build creates a new command with validation
func (sb *SafeBuilder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	// Validate command name
	if name == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}

	// Apply timeout to context
	timeoutCtx, cancel := context.WithTimeout(ctx, sb.defaultTimeout)

	// Important: We don't call cancel here as the caller needs to execute the command
	// The cancel will be handled by the command execution
	_ = cancel

	return &Command{
		ctx:      timeoutCtx,
		name:     name,
		args:     args,
		timeout:  sb.defaultTimeout,
		executor: sb.executor,
	}, nil
}

// WithTimeout sets a custom timeout for the command. Passing NoTimeout
// removes the deadline.
func (c *Command) WithTimeout(timeout time.Duration) *Command {
	if timeout == NoTimeout {
		c.ctx = context.Background()
		c.timeout = NoTimeout
		return c
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	_ = cancel // Will be handled during execution

	c.ctx = ctx
	c.timeout = timeout
	return c
}

// Validate validates specific arguments
func (sb *SafeBuilder) Validate(argType string, value string) error {
	validator, exists := sb.validators[argType]
	if !exists {
		return fmt.Errorf("no validator for argument type: %s", argType)
	}

	return validator(value)
}

// Exec creates and returns an exec.Cmd
func (c *Command) Exec() *exec.Cmd {
	return c.executor.CommandContext(c.ctx, c.name, c.args...) //nolint:gosec // SafeBuilder provides validation
}
