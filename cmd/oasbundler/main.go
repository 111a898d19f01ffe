// Command oasbundler bundles an OpenAPI document spread across local files
// into one self-contained document.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasbundler/cmd/oasbundler/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
