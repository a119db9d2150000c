//go:build rp2040 || rp2350

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

// Dashboard palette.
var (
	black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	white      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	cyan       = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	darkGreen  = color.RGBA{R: 0, G: 125, B: 0, A: 255}
	darkYellow = color.RGBA{R: 128, G: 125, B: 0, A: 255}
	darkCyan   = color.RGBA{R: 0, G: 125, B: 125, A: 255}
)

// Dashboard geometry, 320x240 landscape. Three labeled boxes; only
// each box's value area is repainted on updates.
const (
	titleX = 10
	titleY = 10

	boxX = 10
	boxW = 300
	boxH = 30

	foodBoxY   = 40
	energyBoxY = 75
	statusBoxY = 110

	labelX = 15
	valueX = 110

	// Baseline offset for 12pt text inside a box.
	textBaseline = 22
)

var dashFont = &freesans.Regular12pt7b

// dashboard renders the pad's readout on an ILI9341 over SPI0.
type dashboard struct {
	dev *ili9341.Device
}

func newDashboard() (*dashboard, error) {
	err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 40000000,
		SCK:       pinDisplaySCK,
		SDO:       pinDisplaySDO,
		SDI:       pinDisplaySDI,
	})
	if err != nil {
		return nil, err
	}

	dev := ili9341.NewSPI(machine.SPI0, pinDisplayDC, pinDisplayCS, pinDisplayRST)
	dev.Configure(ili9341.Config{Rotation: ili9341.Rotation270})

	return &dashboard{dev: dev}, nil
}

// drawChrome paints the static parts: background, title and the three
// labeled boxes. Values are painted separately so chrome is drawn
// exactly once.
func (d *dashboard) drawChrome() {
	d.dev.FillScreen(black)
	tinyfont.WriteLine(d.dev, dashFont, titleX, titleY+textBaseline, "Treasure Hunt", white)

	d.dev.FillRectangle(boxX, foodBoxY, boxW, boxH, darkGreen)
	tinyfont.WriteLine(d.dev, dashFont, labelX, foodBoxY+textBaseline, "Food:", white)

	d.dev.FillRectangle(boxX, energyBoxY, boxW, boxH, darkYellow)
	tinyfont.WriteLine(d.dev, dashFont, labelX, energyBoxY+textBaseline, "Energy:", white)

	d.dev.FillRectangle(boxX, statusBoxY, boxW, boxH, darkCyan)
	tinyfont.WriteLine(d.dev, dashFont, labelX, statusBoxY+textBaseline, "Status:", white)
}

func (d *dashboard) ShowFood(n int) {
	d.paintValue(foodBoxY, itoa(n), green, darkGreen)
}

func (d *dashboard) ShowEnergy(n int) {
	d.paintValue(energyBoxY, itoa(n), yellow, darkYellow)
}

func (d *dashboard) ShowStatus(s string) {
	// Status text arrives verbatim, terminator and all; control bytes
	// mean nothing on a canvas.
	d.paintValue(statusBoxY, trimControl(s), cyan, darkCyan)
}

// paintValue clears a box's value area to its background and draws the
// new text over it.
func (d *dashboard) paintValue(boxY int16, text string, fg, bg color.RGBA) {
	d.dev.FillRectangle(valueX, boxY, boxX+boxW-valueX, boxH, bg)
	tinyfont.WriteLine(d.dev, dashFont, valueX+5, boxY+textBaseline, text, fg)
}

// trimControl drops trailing CR/LF so the font renderer does not wrap
// into the next box.
func trimControl(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
