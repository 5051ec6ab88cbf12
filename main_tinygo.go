//go:build tinygo

package main

import (
	"cydgui/app"
	"cydgui/hal"
)

func main() {
	app.Run(hal.New())
}
