package app

import (
	"fmt"
	"time"

	"cydgui/hal"
)

// Run sets up the system with DefaultConfig and runs the loop forever
// (TinyGo entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

// RunWithConfig never returns. Setup failures and latched faults are logged,
// shown on the panel if it still works, and then the loop halts.
func RunWithConfig(h hal.HAL, cfg Config) {
	defer func() {
		if r := recover(); r != nil {
			halt(h, fmt.Errorf("panic: %v", r))
		}
	}()

	s, err := New(h, cfg)
	if err != nil {
		halt(h, err)
	}
	halt(h, loop(s.Step, cfg.Tick, nil))
}

// loop calls step and then yields for tick until step fails or stop is
// closed.
func loop(step hal.StepFunc, tick time.Duration, stop <-chan struct{}) error {
	for {
		select {
		case <-stop:
			return nil
		default:
		}
		if err := step(); err != nil {
			return err
		}
		time.Sleep(tick)
	}
}

func halt(h hal.HAL, err error) {
	if err != nil {
		showFault(h, err)
	}
	select {}
}
