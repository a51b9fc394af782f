// Package main provides the wrdlstab CLI: solve boards from the command line,
// edit them interactively, simulate games, manage the frequency corpus and
// serve the JSON API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/robalobadob/wrdlstab/internal/words"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitNoWords   = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	red := color.New(color.FgRed, color.Bold)
	if errors.Is(err, words.ErrNoWordSource) {
		red.Fprintln(os.Stderr, "No word list available.")
		fmt.Fprintf(os.Stderr, "%v\n\nEither:\n", err)
		fmt.Fprintln(os.Stderr, "  1. pass a newline-delimited list with --words-file FILE")
		fmt.Fprintln(os.Stderr, "  2. import a frequency list with 'wrdlstab freq import FILE'")
		return exitNoWords
	}
	red.Fprintf(os.Stderr, "error: %v\n", err)
	return exitUserError
}
