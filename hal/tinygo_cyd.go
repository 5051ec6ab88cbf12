//go:build tinygo && baremetal && esp32

package hal

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/drivers/xpt2046"
)

// ESP32-2432S028 ("Cheap Yellow Display") wiring.
const (
	pinLCDSCK  = machine.GPIO14
	pinLCDSDO  = machine.GPIO13
	pinLCDSDI  = machine.GPIO12
	pinLCDCS   = machine.GPIO15
	pinLCDDC   = machine.GPIO2
	pinLCDBL   = machine.GPIO21
	pinLCDEN   = machine.GPIO27 // low while the controller initializes
	pinTouchCK = machine.GPIO25
	pinTouchCS = machine.GPIO33
	pinTouchDI = machine.GPIO32
	pinTouchDO = machine.GPIO39
	pinTouchIQ = machine.GPIO36

	cydWidth  = 240
	cydHeight = 320
)

type cydHAL struct {
	logger *uartLogger
	led    *pinLED
	panel  *cydPanel
	touch  *xptSensor
}

// New returns the CYD HAL. GPIO27 is held low while the ILI9341 is brought up
// and raised afterwards. The backlight on GPIO21 starts off; the caller turns
// it on through Backlight().
//
// UART: UART0, 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	pinLCDBL.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led := &pinLED{pin: pinLCDBL}
	led.Low()
	pinLCDEN.Configure(machine.PinConfig{Mode: machine.PinOutput})

	machine.SPI2.Configure(machine.SPIConfig{
		SCK:       pinLCDSCK,
		SDO:       pinLCDSDO,
		SDI:       pinLCDSDI,
		Frequency: 40_000_000,
	})
	lcd := ili9341.NewSPI(machine.SPI2, pinLCDDC, pinLCDCS, machine.NoPin)
	powerUpPanel(&pinLED{pin: pinLCDEN}, func() {
		lcd.Configure(ili9341.Config{
			Width:    cydWidth,
			Height:   cydHeight,
			Rotation: ili9341.Rotation0,
		})
	})

	tp := xpt2046.New(pinTouchCK, pinTouchCS, pinTouchDI, pinTouchDO, pinTouchIQ)
	tp.Configure(&xpt2046.Config{Precision: 4})

	return &cydHAL{
		logger: &uartLogger{uart: uart},
		led:    led,
		panel:  &cydPanel{t: &ili9341Transport{dev: lcd}},
		touch:  &xptSensor{dev: &tp, w: cydWidth, h: cydHeight},
	}
}

func (h *cydHAL) Logger() Logger     { return h.logger }
func (h *cydHAL) Backlight() LED     { return h.led }
func (h *cydHAL) Display() Display   { return h.panel }
func (h *cydHAL) Touch() TouchSensor { return h.touch }

type cydPanel struct {
	t *ili9341Transport
}

func (p *cydPanel) Width() int           { return cydWidth }
func (p *cydPanel) Height() int          { return cydHeight }
func (p *cydPanel) Transport() Transport { return p.t }

func (p *cydPanel) AllocFrame(pixels int) ([]uint16, error) {
	return allocDMAFrame(pixels, cydWidth*cydHeight)
}

// ili9341Transport maps the window/push session onto DrawRGBBitmap, which sets
// CASET/PASET and streams the block in one chip-select cycle.
type ili9341Transport struct {
	dev        *ili9341.Device
	x, y, w, h int16
	open       bool
}

func (t *ili9341Transport) BeginWrite() { t.open = true }
func (t *ili9341Transport) EndWrite()   { t.open = false }

func (t *ili9341Transport) SetAddrWindow(x, y, w, h int16) {
	t.x, t.y, t.w, t.h = x, y, w, h
}

func (t *ili9341Transport) PushPixels(px []uint16) error {
	if !t.open {
		return ErrNotImplemented
	}
	if len(px) != int(t.w)*int(t.h) {
		return ErrWindow
	}
	return t.dev.DrawRGBBitmap(t.x, t.y, px, t.w, t.h)
}

// xptSensor reads the XPT2046 and applies the board calibration.
type xptSensor struct {
	dev  *xpt2046.Device
	cal  Calibration
	w, h int
}

func (s *xptSensor) SetCalibration(c Calibration) { s.cal = c }

func (s *xptSensor) GetTouch(timeout time.Duration) (x, y int16, touched bool) {
	return sampleTouch(s.dev, s.cal, s.w, s.h, timeout)
}
