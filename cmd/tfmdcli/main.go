package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/vk/tfmdcli/internal/app"
	"github.com/vk/tfmdcli/internal/cli"
)

// main is the entrypoint for the tfmdcli application.
func main() {
	// Use a minimal logger until the app configures its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:], colorEnabled(os.Stdout)); err != nil {
		code, msg := 1, err.Error()
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			code, msg = exitErr.Code, exitErr.Message
		}
		fmt.Fprint(os.Stderr, cli.FormatError(msg, colorEnabled(os.Stderr)))
		os.Exit(code)
	}
}

// colorEnabled reports whether styled output should be written to f.
func colorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string, color bool) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW, color)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("application panicked: %v", r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return app.NewApp(outW, errW, appConfig).Run(ctx)
}
