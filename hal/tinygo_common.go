//go:build tinygo && baremetal

package hal

import "machine"

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// allocDMAFrame hands out bulk-transfer buffers from the heap. ESP32 internal
// SRAM is DMA capable; the cap keeps one strip within a single SPI DMA chain.
func allocDMAFrame(pixels, panelPixels int) ([]uint16, error) {
	const maxFrameBytes = 32 * 1024
	if pixels <= 0 || pixels > panelPixels || pixels*2 > maxFrameBytes {
		return nil, ErrFrameSize
	}
	return make([]uint16, pixels), nil
}
