//go:build tinygo && baremetal && !esp32

package hal

import (
	"machine"
	"time"
)

type stubHAL struct {
	logger *uartLogger
	led    *pinLED
}

// New returns a HAL for boards without a supported panel. Setup fails at frame
// allocation and the failure is logged on UART0.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	return &stubHAL{
		logger: &uartLogger{uart: uart},
		led:    &pinLED{pin: ledPin},
	}
}

func (h *stubHAL) Logger() Logger     { return h.logger }
func (h *stubHAL) Backlight() LED     { return h.led }
func (h *stubHAL) Display() Display   { return stubDisplay{} }
func (h *stubHAL) Touch() TouchSensor { return stubTouch{} }

type stubDisplay struct{}

func (stubDisplay) Width() int                       { return 240 }
func (stubDisplay) Height() int                      { return 320 }
func (stubDisplay) Transport() Transport             { return stubTransport{} }
func (stubDisplay) AllocFrame(int) ([]uint16, error) { return nil, ErrNotImplemented }

type stubTransport struct{}

func (stubTransport) BeginWrite()                    {}
func (stubTransport) SetAddrWindow(x, y, w, h int16) {}
func (stubTransport) PushPixels(px []uint16) error   { return ErrNotImplemented }
func (stubTransport) EndWrite()                      {}

type stubTouch struct{}

func (stubTouch) SetCalibration(Calibration) {}
func (stubTouch) GetTouch(time.Duration) (x, y int16, touched bool) {
	return 0, 0, false
}
