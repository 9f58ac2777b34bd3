package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"actionkit/internal/command"
)

const (
	ExitSuccess           = 0
	ExitNoMatches         = 1
	ExitInvalidInvocation = 2
	ExitConfigError       = 3
	ExitInternalError     = 4
)

type Subcommand string

const (
	SubcommandIssue Subcommand = "issue"
	SubcommandGlob  Subcommand = "glob"
)

// IssueInvocation describes a single command to write.
type IssueInvocation struct {
	Name       string
	Properties command.Properties
	Payload    string
}

// GlobInvocation describes a single resolution. Patterns given on the
// command line are appended after those loaded from ConfigPath.
type GlobInvocation struct {
	Directory   string
	ConfigPath  string
	Include     []string
	Exclude     []string
	Hash        bool
	Relative    bool
	FailOnEmpty bool
}

// CLIInvocation is the fully parsed description of a run.
type CLIInvocation struct {
	Command Subcommand
	Issue   IssueInvocation
	Glob    GlobInvocation
}

type InvocationError struct {
	ExitCode int
	Message  string
	Err      error
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *InvocationError) Unwrap() error { return e.Err }

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

func configError(err error) error {
	return &InvocationError{ExitCode: ExitConfigError, Message: err.Error(), Err: err}
}

// ParseInvocation parses CLI arguments (excluding argv[0]) into a CLIInvocation.
func ParseInvocation(args []string) (CLIInvocation, error) {
	if len(args) == 0 {
		return CLIInvocation{}, invalidInvocationf("missing subcommand (expected issue|glob)")
	}
	switch Subcommand(args[0]) {
	case SubcommandIssue:
		issue, err := parseIssue(args[1:])
		return CLIInvocation{Command: SubcommandIssue, Issue: issue}, err
	case SubcommandGlob:
		g, err := parseGlob(args[1:])
		return CLIInvocation{Command: SubcommandGlob, Glob: g}, err
	default:
		return CLIInvocation{}, invalidInvocationf("unknown subcommand %q (expected issue|glob)", args[0])
	}
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed
	return fs
}

func parseIssue(args []string) (IssueInvocation, error) {
	fs := newFlagSet("issue")
	var rawProps []string
	var inv IssueInvocation
	fs.StringArrayVarP(&rawProps, "property", "p", nil, "Command property as key=value. Repeatable; order is kept.")
	fs.StringVar(&inv.Payload, "payload", "", "Command payload.")

	if err := fs.Parse(args); err != nil {
		return IssueInvocation{}, invalidInvocationf("issue: %v", err)
	}
	if fs.NArg() != 1 {
		return IssueInvocation{}, invalidInvocationf("issue: expected exactly one command name, got %d arguments", fs.NArg())
	}
	inv.Name = fs.Arg(0)

	for _, raw := range rawProps {
		key, value, ok := strings.Cut(raw, "=")
		if !ok || key == "" {
			return IssueInvocation{}, invalidInvocationf("issue: property %q is not key=value", raw)
		}
		inv.Properties = append(inv.Properties, command.Property{Key: key, Value: value})
	}
	return inv, nil
}

func parseGlob(args []string) (GlobInvocation, error) {
	fs := newFlagSet("glob")
	var inv GlobInvocation
	fs.StringVarP(&inv.Directory, "dir", "d", "", "Base directory (default: config directory, then the working directory).")
	fs.StringVarP(&inv.ConfigPath, "config", "c", "", "YAML or JSONC file with include/exclude lists.")
	fs.StringArrayVarP(&inv.Include, "include", "i", nil, "Include pattern. Repeatable.")
	fs.StringArrayVarP(&inv.Exclude, "exclude", "e", nil, "Exclude pattern. Repeatable.")
	fs.BoolVar(&inv.Hash, "hash", false, "Print a digest of the matched files instead of their paths.")
	fs.BoolVar(&inv.Relative, "relative", false, "Print paths relative to the base directory.")
	fs.BoolVar(&inv.FailOnEmpty, "fail-on-empty", false, "Exit 1 when patterns are configured but nothing matches.")

	if err := fs.Parse(args); err != nil {
		return GlobInvocation{}, invalidInvocationf("glob: %v", err)
	}
	if fs.NArg() != 0 {
		return GlobInvocation{}, invalidInvocationf("glob: unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}
	return inv, nil
}

// ExitCode extracts a semantic exit code from an error.
// If the error is not a known invocation error, it returns ExitInternalError.
func ExitCode(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	if err == nil {
		return ExitSuccess
	}
	return ExitInternalError
}
