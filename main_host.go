//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"cydgui/app"
	"cydgui/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var termMode bool
	var scale int
	acfg := app.DefaultConfig()
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 200, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&termMode, "term", false, "Render into the terminal with mouse input.")
	flag.Int64Var(&acfg.Seed, "seed", acfg.Seed, "Seed for the initial chart and slider values.")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.Parse()

	newApp := app.NewStep(acfg)

	var err error
	switch {
	case cfg.Enabled || termMode:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if termMode {
			err = hal.RunTerminal(ctx, newApp, hal.TermConfig{Hz: cfg.Hz})
		} else {
			err = hal.RunHeadless(ctx, newApp, cfg)
		}
		if errors.Is(err, context.Canceled) {
			return
		}
	default:
		err = hal.RunWindow(newApp, hal.WindowConfig{Scale: scale})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
