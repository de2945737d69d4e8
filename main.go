package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"ramos/app"
	"ramos/hal"
)

func main() {
	var (
		cfg      hal.HeadlessConfig
		scale    int
		stateDir string
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&scale, "scale", 1, "Window scale factor.")
	flag.StringVar(&stateDir, "state-dir", "", "State volume directory (defaults to ramos-disk, or RAMOS_STATE_DIR).")
	flag.Parse()

	if cfg.Enabled {
		cfg.StateDir = stateDir
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, app.New, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(app.New, hal.WindowConfig{Scale: scale, StateDir: stateDir}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
