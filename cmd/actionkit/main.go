package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"actionkit/internal/cli"
)

// Usage:
//
//	actionkit issue NAME [-p key=value]... [--payload TEXT]
//	actionkit glob [-d DIR] [-c FILE] [-i PATTERN]... [-e PATTERN]... [--relative] [--hash] [--fail-on-empty]
func main() {
	logger := cli.NewLogger(slog.LevelInfo)

	result, err := cli.Run(context.Background(), os.Args[1:], os.Stdout, logger)
	if err != nil {
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			fmt.Fprintln(os.Stderr, invErr.Message)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	os.Exit(result.ExitCode)
}
