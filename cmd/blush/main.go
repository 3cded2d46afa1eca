package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rosedew/blush/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	dataDir := flag.String("data", "", "override data directory (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, DataDir: *dataDir}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "blush: %v\n", err)
		return 1
	}
	return 0
}
