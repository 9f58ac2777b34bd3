package cli

import (
	"errors"
	"reflect"
	"testing"

	"actionkit/internal/command"
)

func TestParseInvocation_Issue(t *testing.T) {
	inv, err := ParseInvocation([]string{"issue", "-p", "z=1", "--property", "a=b=c", "set-output", "--payload", "done"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Command != SubcommandIssue {
		t.Fatalf("Command = %q", inv.Command)
	}
	want := IssueInvocation{
		Name:       "set-output",
		Properties: command.Props("z", "1", "a", "b=c"),
		Payload:    "done",
	}
	if !reflect.DeepEqual(inv.Issue, want) {
		t.Fatalf("Issue = %#v, want %#v", inv.Issue, want)
	}
}

func TestParseInvocation_Glob(t *testing.T) {
	args := []string{"glob", "-d", "/work", "-i", "*.go", "--include", "go.mod", "-e", "*_test.go", "--hash", "--fail-on-empty"}
	inv, err := ParseInvocation(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := GlobInvocation{
		Directory:   "/work",
		Include:     []string{"*.go", "go.mod"},
		Exclude:     []string{"*_test.go"},
		Hash:        true,
		FailOnEmpty: true,
	}
	if !reflect.DeepEqual(inv.Glob, want) {
		t.Fatalf("Glob = %#v, want %#v", inv.Glob, want)
	}
}

func TestParseInvocation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no subcommand", nil},
		{"unknown subcommand", []string{"deploy"}},
		{"issue without name", []string{"issue"}},
		{"issue with two names", []string{"issue", "a", "b"}},
		{"issue bad property", []string{"issue", "-p", "novalue", "x"}},
		{"issue empty key", []string{"issue", "-p", "=v", "x"}},
		{"glob unknown flag", []string{"glob", "--nope"}},
		{"glob positional", []string{"glob", "*.go"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInvocation(tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			var invErr *InvocationError
			if !errors.As(err, &invErr) {
				t.Fatalf("error %v is not an InvocationError", err)
			}
			if ExitCode(err) != ExitInvalidInvocation {
				t.Fatalf("ExitCode = %d, want %d", ExitCode(err), ExitInvalidInvocation)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != ExitSuccess {
		t.Errorf("ExitCode(nil) = %d", got)
	}
	if got := ExitCode(errors.New("boom")); got != ExitInternalError {
		t.Errorf("ExitCode(plain) = %d", got)
	}
	if got := ExitCode(&InvocationError{Message: "x"}); got != ExitInvalidInvocation {
		t.Errorf("ExitCode(zero code) = %d", got)
	}
	if got := ExitCode(configError(errors.New("bad"))); got != ExitConfigError {
		t.Errorf("ExitCode(config) = %d", got)
	}
}
