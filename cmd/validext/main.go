// Command validext checks JSON documents against declarative rule sets.
//
//	validext check --rules rules.yaml order.json customer.json
//	validext check --rules rules.yaml --catalog messages.yaml --lang de - < order.json
//	validext operators --allow-like
//
// Settings can also come from VALIDEXT_* environment variables or a .env
// file; flags win. The exit code is 1 when a document fails validation and
// 2 on any other error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := newRootCmd(in, out, errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errDocumentsInvalid):
		return 1
	default:
		fmt.Fprintln(errOut, "Error:", err)
		return 2
	}
}
