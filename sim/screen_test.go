package sim

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestDashboard(t *testing.T) (*dashboard, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	d := newDashboard(screen)
	d.redraw()
	return d, screen
}

// cellText reads n cells starting at (col, row) off the simulated
// terminal.
func cellText(s tcell.SimulationScreen, col, row, n int) string {
	cells, w, _ := s.GetContents()

	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		cell := cells[row*w+col+i]
		if len(cell.Runes) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, cell.Runes[0])
	}
	return string(out)
}

// TestChromeLabels verifies the static dashboard text lands where the
// layout says.
func TestChromeLabels(t *testing.T) {
	_, screen := newTestDashboard(t)

	if got := cellText(screen, boxCol, titleRow, 13); got != "Treasure Hunt" {
		t.Errorf("Expected title, got %q", got)
	}
	if got := cellText(screen, labelCol, foodRow, 5); got != "Food:" {
		t.Errorf("Expected food label, got %q", got)
	}
	if got := cellText(screen, labelCol, energyRow, 7); got != "Energy:" {
		t.Errorf("Expected energy label, got %q", got)
	}
	if got := cellText(screen, labelCol, statusRow, 7); got != "Status:" {
		t.Errorf("Expected status label, got %q", got)
	}
}

// TestShowFoodPaintsValue verifies a food update reaches the food box.
func TestShowFoodPaintsValue(t *testing.T) {
	d, screen := newTestDashboard(t)

	d.ShowFood(42)
	if got := cellText(screen, valueCol, foodRow, 2); got != "42" {
		t.Errorf("Expected food value 42, got %q", got)
	}
}

// TestShorterValueClearsOldDigits verifies repainting a value erases
// what the previous value left behind.
func TestShorterValueClearsOldDigits(t *testing.T) {
	d, screen := newTestDashboard(t)

	d.ShowEnergy(100)
	d.ShowEnergy(7)
	if got := cellText(screen, valueCol, energyRow, 3); got != "7  " {
		t.Errorf("Expected stale digits cleared, got %q", got)
	}
}

// TestShowStatusTrimsTerminator verifies the frame terminator never
// reaches the terminal.
func TestShowStatusTrimsTerminator(t *testing.T) {
	d, screen := newTestDashboard(t)

	d.ShowStatus("Treasure Found\n")
	if got := cellText(screen, valueCol, statusRow, 14); got != "Treasure Found" {
		t.Errorf("Expected trimmed status, got %q", got)
	}
	if d.status != "Treasure Found" {
		t.Errorf("Expected cached status trimmed, got %q", d.status)
	}
}

// TestBuzzIndicatorFollowsDuty verifies the buzzer readout switches
// with the duty.
func TestBuzzIndicatorFollowsDuty(t *testing.T) {
	d, screen := newTestDashboard(t)

	d.setDuty(50)
	if got := cellText(screen, boxCol+9, indicatorRow, 8); got != "BUZZ 50%" {
		t.Errorf("Expected buzz indicator on, got %q", got)
	}

	d.setDuty(0)
	if got := cellText(screen, boxCol+9, indicatorRow, 8); got != "buzz off" {
		t.Errorf("Expected buzz indicator off, got %q", got)
	}
}

// TestLinkIndicator verifies attach and detach repaint the link state.
func TestLinkIndicator(t *testing.T) {
	d, screen := newTestDashboard(t)

	d.setLinked(true)
	if got := cellText(screen, boxCol+22, indicatorRow, 19); got != "link: host attached" {
		t.Errorf("Expected attached link indicator, got %q", got)
	}

	d.setLinked(false)
	if got := cellText(screen, boxCol+22, indicatorRow, 22); got != "link: waiting for host" {
		t.Errorf("Expected waiting link indicator, got %q", got)
	}
}

// TestResizeRepaintsCachedValues verifies redraw restores the last
// pushed values.
func TestResizeRepaintsCachedValues(t *testing.T) {
	d, screen := newTestDashboard(t)

	d.ShowFood(3)
	d.ShowStatus("Ready")
	d.redraw()

	if got := cellText(screen, valueCol, foodRow, 1); got != "3" {
		t.Errorf("Expected food to survive redraw, got %q", got)
	}
	if got := cellText(screen, valueCol, statusRow, 5); got != "Ready" {
		t.Errorf("Expected status to survive redraw, got %q", got)
	}
}
