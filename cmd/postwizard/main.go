// Command postwizard opens the campaign creation wizard in the terminal.
//
//	postwizard open /campaigns/42/create --protect
//
// The first step composes the campaign's email template and saves it to the
// campaign backend. Settings come from POSTWIZARD_* environment variables or a
// YAML file given with --config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
