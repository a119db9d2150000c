// Package sim runs a treasure pad without the hardware: a tcell
// dashboard for the display and lamp, the keyboard for the joystick,
// beep for the buzzer, and a TCP listener standing in for the UART so
// the host tools connect to it unchanged.
package sim

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/PhoneMk/treasure-hunt/core"
)

// Options configures a simulated pad.
type Options struct {
	// ListenAddr is the TCP address the link listens on.
	ListenAddr string

	// Mute skips audio entirely.
	Mute bool
}

// Pad is a simulated treasure pad.
type Pad struct {
	screen tcell.Screen
	dash   *dashboard
	stick  *stick
	tone   *tone
	link   *tcpLink
	ctrl   *core.Controller
}

// New builds a pad and claims the terminal.
func New(opts Options) (*Pad, error) {
	p := &Pad{}

	// Audio first: a failed speaker leaves a working, silent pad, and
	// the warning still reaches stderr before tcell owns the screen.
	if !opts.Mute {
		t, err := newTone()
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio unavailable, running silent: %v\n", err)
		} else {
			p.tone = t
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	p.screen = screen
	p.dash = newDashboard(screen)

	link, err := newTCPLink(opts.ListenAddr, p.dash)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	p.link = link

	p.stick = newStick()
	p.ctrl = core.NewController(core.Board{
		Link:    p.link,
		Display: p.dash,
		Buzzer:  &simBuzzer{dash: p.dash, tone: p.tone},
		Lamp:    p.dash,
		Button:  p.stick,
		Clock:   core.SystemClock{},
	})

	return p, nil
}

// Addr returns the address the link actually listens on, useful when
// Options asked for port 0.
func (p *Pad) Addr() string {
	return p.link.Addr()
}

// Run paints the dashboard, starts the pad goroutines and blocks on
// the keyboard until the user quits.
func (p *Pad) Run() error {
	defer p.cleanup()

	p.dash.redraw()
	p.ctrl.RenderAll()

	go p.link.serve(p.ctrl)
	go p.stick.sampleLoop(p.ctrl)
	go p.ctrl.Run()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- p.screen.PollEvent()
		}
	}()

	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyUp:
				p.stick.deflect(0, +stickSwing)
			case tcell.KeyDown:
				p.stick.deflect(0, -stickSwing)
			case tcell.KeyLeft:
				p.stick.deflect(-stickSwing, 0)
			case tcell.KeyRight:
				p.stick.deflect(+stickSwing, 0)
			case tcell.KeyRune:
				switch ev.Rune() {
				case ' ':
					p.stick.press()
				case 'q':
					return nil
				}
			}
		case *tcell.EventResize:
			p.dash.redraw()
		}
	}
	return nil
}

func (p *Pad) cleanup() {
	p.link.close()
	if p.tone != nil {
		p.tone.close()
	}
	p.screen.Fini()
}

// simBuzzer fans buzzer duty out to the dashboard indicator and, when
// audio came up, the speaker.
type simBuzzer struct {
	dash *dashboard
	tone *tone
}

func (b *simBuzzer) SetDuty(percent uint8) {
	b.dash.setDuty(percent)
	if b.tone != nil {
		b.tone.SetDuty(percent)
	}
}
