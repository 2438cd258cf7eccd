// Package main is the entry point for the scaff CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/uikit-tools/scaff/internal/cmd"
	oerrors "github.com/uikit-tools/scaff/internal/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cmd.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return cmd.ExitSuccess
	}

	// Only print if the command layer hasn't already printed it
	var exitErr *oerrors.ExitError
	if !errors.As(err, &exitErr) || !exitErr.Printed {
		fmt.Fprintln(os.Stderr, describe(err))
	}
	return cmd.ExitCodeFromError(err)
}

// describe renders err for the operator. Detailed errors carry their own layout.
func describe(err error) string {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return detail.Error()
	}
	return "Error: " + err.Error()
}
