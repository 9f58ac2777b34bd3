package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"actionkit/internal/command"
	"actionkit/internal/config"
	"actionkit/internal/glob"
)

type CLIResult struct {
	ExitCode int
	Glob     *glob.Result
}

// Run is a high-level CLI entrypoint suitable for black-box tests.
// It accepts the argument slice (excluding argv[0]) and returns the semantic
// exit code plus any error.
func Run(ctx context.Context, args []string, stdout io.Writer, logger *slog.Logger) (CLIResult, error) {
	inv, err := ParseInvocation(args)
	if err != nil {
		return CLIResult{ExitCode: ExitCode(err)}, err
	}
	return Execute(ctx, inv, stdout, logger)
}

// Execute runs a parsed invocation, writing its output to stdout.
func Execute(ctx context.Context, inv CLIInvocation, stdout io.Writer, logger *slog.Logger) (CLIResult, error) {
	if err := ctx.Err(); err != nil {
		return CLIResult{ExitCode: ExitInternalError}, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	switch inv.Command {
	case SubcommandIssue:
		return executeIssue(inv.Issue, stdout, logger)
	case SubcommandGlob:
		return executeGlob(inv.Glob, stdout, logger)
	default:
		err := invalidInvocationf("unknown subcommand %q", inv.Command)
		return CLIResult{ExitCode: ExitCode(err)}, err
	}
}

func executeIssue(inv IssueInvocation, stdout io.Writer, logger *slog.Logger) (CLIResult, error) {
	issuer := command.NewIssuer(command.WriterSink{W: stdout}, logger.With("command", "issue"))
	if err := issuer.IssueCommand(inv.Name, inv.Properties, inv.Payload); err != nil {
		return CLIResult{ExitCode: ExitInternalError}, err
	}
	return CLIResult{ExitCode: ExitSuccess}, nil
}

func executeGlob(inv GlobInvocation, stdout io.Writer, logger *slog.Logger) (CLIResult, error) {
	var cfg glob.Config
	dir := inv.Directory
	if inv.ConfigPath != "" {
		f, err := config.Load(inv.ConfigPath)
		if err != nil {
			cfgErr := configError(err)
			return CLIResult{ExitCode: ExitCode(cfgErr)}, cfgErr
		}
		cfg = f.Config
		if dir == "" {
			dir = f.Directory
		}
	}
	cfg.Include = append(cfg.Include, inv.Include...)
	cfg.Exclude = append(cfg.Exclude, inv.Exclude...)

	resolver, err := glob.NewResolver(cfg)
	if err != nil {
		cfgErr := configError(err)
		return CLIResult{ExitCode: ExitCode(cfgErr)}, cfgErr
	}

	res := resolver.ResolveDetailed(dir)
	logger.Debug("resolved patterns",
		"root", res.Root,
		"include", len(cfg.Include),
		"exclude", len(cfg.Exclude),
		"matches", len(res.Files),
	)

	result := CLIResult{ExitCode: ExitSuccess, Glob: res}
	if err := writeGlobResult(stdout, res, inv); err != nil {
		result.ExitCode = ExitInternalError
		return result, err
	}

	if res.HasPatterns && res.IsEmpty() {
		logger.Warn("patterns matched no paths", "root", res.Root)
		if inv.FailOnEmpty {
			result.ExitCode = ExitNoMatches
		}
	}
	return result, nil
}

func writeGlobResult(w io.Writer, res *glob.Result, inv GlobInvocation) error {
	if inv.Hash {
		digest, err := glob.HashFiles(res)
		if err != nil {
			return err
		}
		if digest == "" {
			return nil
		}
		_, err = fmt.Fprintln(w, digest)
		return err
	}

	paths := res.Files
	if inv.Relative {
		paths = res.Relative()
	}
	for _, p := range paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
	}
	return nil
}
