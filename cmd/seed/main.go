// Package main loads demo member interfaces into a local console database.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	seedcmd "github.com/inex/ixp-console/internal/cmd/seed"
	"github.com/inex/ixp-console/internal/platform/config"
)

func main() {
	cfg, err := seedcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	config.ExitOnError(err, "parse flags")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seedcmd.Run(ctx, cfg, os.Stdout); err != nil {
		stop()
		config.Exitf("Error: %v", err)
	}
}
