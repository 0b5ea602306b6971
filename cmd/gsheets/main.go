package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheetops/gsheets/commands"
	"github.com/sheetops/gsheets/config"
	"github.com/sheetops/gsheets/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %v\n\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := commands.NewRootCmd(commands.NewApp(cfg)).ExecuteContext(ctx); err != nil {
		logging.Errorf("%v", err)
		return 1
	}

	return 0
}
