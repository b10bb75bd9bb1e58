// Command rinchi decomposes, rebuilds, keys and indexes reaction InChIs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/rinchi/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.NewRootCommand().ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || !exitErr.Reported {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return cli.GetExitCode(err)
}
