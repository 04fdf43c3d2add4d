package bootstrap

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Options carries the arguments forwarded to the bootstrap helper.
type Options struct {
	Name        string // Repository name
	Description string // Repository description, may be empty
	Org         string // Org/owner, may be empty
	Branch      string // Default branch, e.g. "main"
	Visibility  string // "public" or "private"
}

// Runner initializes version control and a remote repository for a project
// directory. A failed Init never touches files already written to dir.
type Runner interface {
	Init(ctx context.Context, dir string, opts Options) error
}

// Error reports a failed bootstrap invocation. The scaffold on disk is
// complete and usable; the operator can re-run the helper manually.
type Error struct {
	Cmd    string // The command that failed, e.g. "shortgit init"
	Err    error  // Underlying exec error
	Output string // Combined stdout/stderr from the helper
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s failed: %v", e.Cmd, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Shortgit runs the shortgit CLI on the local PATH.
type Shortgit struct{}

// Init runs `shortgit init` against dir. The helper creates the local and
// remote repository but does not push.
func (Shortgit) Init(ctx context.Context, dir string, opts Options) error {
	args := initArgs(dir, opts)
	cmd := exec.CommandContext(ctx, "shortgit", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &Error{Cmd: "shortgit init", Err: err, Output: string(out)}
	}
	return nil
}

// initArgs builds the shortgit init argument list from opts.
func initArgs(dir string, opts Options) []string {
	args := []string{
		"init", dir,
		"--name", opts.Name,
		"--visibility", opts.Visibility,
		"--branch", opts.Branch,
	}
	if opts.Description != "" {
		args = append(args, "--description", opts.Description)
	}
	if opts.Org != "" {
		args = append(args, "--org", opts.Org)
	}
	return args
}

// EnsureTool verifies that name is on PATH, returning an install hint if not.
func EnsureTool(name, url string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%q not found on PATH; install it: %s", name, url)
	}
	return nil
}
