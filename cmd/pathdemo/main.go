// Package main provides a CLI that runs the hex path finder on a board and
// prints the found and shortest path costs.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/hexpath/internal/config"

	pathdemocmd "github.com/katalvlaran/hexpath/internal/cmd/pathdemo"
)

func main() {
	cfg, err := pathdemocmd.ParseConfig(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := pathdemocmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
