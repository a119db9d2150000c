package sim

import (
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Dashboard geometry. One terminal row per hardware box, same order
// as the pad's screen.
const (
	titleRow     = 1
	foodRow      = 3
	energyRow    = 5
	statusRow    = 7
	indicatorRow = 9
	helpRow      = 11

	boxCol   = 2
	boxWidth = 56
	labelCol = 3
	valueCol = 13
)

// The pad's display palette, carried over verbatim: dark box fills
// with bright value text.
var (
	styleTitle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHelp  = tcell.StyleDefault.Foreground(tcell.ColorGray)

	styleFoodBox   = boxStyle(0, 125, 0).Foreground(tcell.ColorWhite)
	styleFoodVal   = boxStyle(0, 125, 0).Foreground(tcell.NewRGBColor(0, 255, 0))
	styleEnergyBox = boxStyle(128, 125, 0).Foreground(tcell.ColorWhite)
	styleEnergyVal = boxStyle(128, 125, 0).Foreground(tcell.NewRGBColor(255, 255, 0))
	styleStatusBox = boxStyle(0, 125, 125).Foreground(tcell.ColorWhite)
	styleStatusVal = boxStyle(0, 125, 125).Foreground(tcell.NewRGBColor(0, 255, 255))

	styleLampOn  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleLampOff = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBuzzOn  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleLinkUp  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

func boxStyle(r, g, b int32) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(r, g, b))
}

// dashboard renders the pad's readout on a terminal. It implements
// both the display and the lamp; updates arrive from the controller
// goroutine and the event loop, so every draw takes the mutex.
type dashboard struct {
	mu     sync.Mutex
	screen tcell.Screen

	food   string
	energy string
	status string
	lamp   bool
	duty   uint8
	linked bool
}

func newDashboard(screen tcell.Screen) *dashboard {
	return &dashboard{screen: screen}
}

func (d *dashboard) ShowFood(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.food = strconv.Itoa(n)
	d.paintValue(foodRow, d.food, styleFoodBox, styleFoodVal)
	d.screen.Show()
}

func (d *dashboard) ShowEnergy(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.energy = strconv.Itoa(n)
	d.paintValue(energyRow, d.energy, styleEnergyBox, styleEnergyVal)
	d.screen.Show()
}

func (d *dashboard) ShowStatus(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = trimControl(s)
	d.paintValue(statusRow, d.status, styleStatusBox, styleStatusVal)
	d.screen.Show()
}

// Set drives the activity lamp indicator, satisfying the board's lamp.
func (d *dashboard) Set(on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lamp = on
	d.paintIndicators()
	d.screen.Show()
}

func (d *dashboard) setDuty(percent uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.duty = percent
	d.paintIndicators()
	d.screen.Show()
}

func (d *dashboard) setLinked(up bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.linked = up
	d.paintIndicators()
	d.screen.Show()
}

// redraw repaints everything from the cached values, for startup and
// terminal resizes.
func (d *dashboard) redraw() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.screen.Clear()
	d.drawText(boxCol, titleRow, "Treasure Hunt", styleTitle)

	d.paintBox(foodRow, "Food:", styleFoodBox)
	d.paintBox(energyRow, "Energy:", styleEnergyBox)
	d.paintBox(statusRow, "Status:", styleStatusBox)

	d.paintValue(foodRow, d.food, styleFoodBox, styleFoodVal)
	d.paintValue(energyRow, d.energy, styleEnergyBox, styleEnergyVal)
	d.paintValue(statusRow, d.status, styleStatusBox, styleStatusVal)

	d.paintIndicators()
	d.drawText(boxCol, helpRow, "arrows: stick   space: button   q: quit", styleHelp)

	d.screen.Show()
}

func (d *dashboard) paintBox(row int, label string, box tcell.Style) {
	for col := boxCol; col < boxCol+boxWidth; col++ {
		d.screen.SetContent(col, row, ' ', nil, box)
	}
	d.drawText(labelCol, row, label, box)
}

func (d *dashboard) paintValue(row int, text string, box, val tcell.Style) {
	for col := valueCol; col < boxCol+boxWidth; col++ {
		d.screen.SetContent(col, row, ' ', nil, box)
	}
	if max := boxCol + boxWidth - valueCol; len(text) > max {
		text = text[:max]
	}
	d.drawText(valueCol, row, text, val)
}

func (d *dashboard) paintIndicators() {
	lampStyle := styleLampOff
	if d.lamp {
		lampStyle = styleLampOn
	}
	d.drawText(boxCol, indicatorRow, " LAMP ", lampStyle)

	buzz := " buzz off "
	buzzStyle := styleLampOff
	if d.duty > 0 {
		buzz = " BUZZ " + strconv.Itoa(int(d.duty)) + "% "
		buzzStyle = styleBuzzOn
	}
	d.drawText(boxCol+8, indicatorRow, pad(buzz, 12), buzzStyle)

	link := "link: waiting for host"
	linkStyle := styleLampOff
	if d.linked {
		link = "link: host attached   "
		linkStyle = styleLinkUp
	}
	d.drawText(boxCol+22, indicatorRow, link, linkStyle)
}

func (d *dashboard) drawText(col, row int, text string, style tcell.Style) {
	for i, r := range text {
		d.screen.SetContent(col+i, row, r, nil, style)
	}
}

// pad right-fills text with spaces so a shorter indicator overwrites
// a longer one.
func pad(text string, width int) string {
	for len(text) < width {
		text += " "
	}
	return text
}

// trimControl drops trailing CR/LF from status text before it hits
// the terminal.
func trimControl(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
