package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"cydgui/app"
	"cydgui/hal"
)

type tap struct {
	x, y int16
}

func main() {
	var (
		outPath = flag.String("out", "snapshot.png", "Output PNG path.")
		taps    = flag.String("taps", "", "Semicolon-separated x,y taps applied in order, e.g. \"120,35;60,150\".")
		settle  = flag.Int("settle", 20, "Ticks run before, during and after each tap.")
		seed    = flag.Int64("seed", app.DefaultConfig().Seed, "Seed for the initial chart and slider values.")
		verbose = flag.Bool("v", false, "Log to stderr.")
	)
	flag.Parse()

	script, err := parseTaps(*taps)
	if err != nil {
		fatalf("taps: %v", err)
	}
	if *settle <= 0 {
		fatalf("settle must be positive: %d", *settle)
	}

	cfg := app.DefaultConfig()
	cfg.Seed = *seed

	var logw io.Writer
	if *verbose {
		logw = os.Stderr
	}
	h := hal.NewHost(cfg.Width, cfg.Height, logw)
	s, err := app.New(h, cfg)
	if err != nil {
		fatalf("setup: %v", err)
	}

	run := func(n int) {
		for i := 0; i < n; i++ {
			if err := s.Step(); err != nil {
				fatalf("step: %v", err)
			}
		}
	}

	run(*settle)
	for _, t := range script {
		h.Sensor().Press(t.x, t.y)
		run(*settle)
		h.Sensor().Release()
		run(*settle)
	}

	if err := writePNG(*outPath, h.Panel()); err != nil {
		fatalf("write: %v", err)
	}
	fmt.Printf("%s: view=%s\n", *outPath, s.View())
}

func parseTaps(s string) ([]tap, error) {
	var out []tap
	for _, f := range strings.Split(s, ";") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("%q: want x,y", f)
		}
		x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", f, err)
		}
		y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", f, err)
		}
		out = append(out, tap{x: int16(x), y: int16(y)})
	}
	return out, nil
}

func writePNG(path string, p *hal.MemPanel) error {
	w, h := p.Width(), p.Height()
	pix := make([]uint16, w*h)
	p.Snapshot(pix)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := hal.RGB888(pix[y*w+x])
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
