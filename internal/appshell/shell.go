// Package appshell turns a command's run function into a process: it wires
// up signal cancellation and maps the result to an exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Entry is a command's top-level run function.
type Entry func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main executes entry under a context cancelled by SIGINT or SIGTERM and
// exits with its code. An interrupted run exits 130 even when the entry
// reported success.
func Main(entry Entry) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := entry(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	os.Exit(code)
}
