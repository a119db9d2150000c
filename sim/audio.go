package sim

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// Matches the pad's PWM carrier.
	toneFreq = 2000.0
)

// tone plays the buzzer through the host's speaker. The generator
// streams continuously; duty 0 just streams silence so the speaker
// never has to restart.
type tone struct {
	gen *toneGenerator
}

func newTone() (*tone, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}

	gen := &toneGenerator{sr: sampleRate, freq: toneFreq}
	speaker.Play(gen)
	return &tone{gen: gen}, nil
}

func (t *tone) SetDuty(percent uint8) {
	if percent > 100 {
		percent = 100
	}
	atomic.StoreUint32(&t.gen.level, uint32(percent))
}

func (t *tone) close() {
	speaker.Close()
}

// toneGenerator streams a square wave whose amplitude follows the
// buzzer duty. The speaker goroutine reads level while SetDuty writes
// it, hence the atomic.
type toneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	level uint32
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	level := float64(atomic.LoadUint32(&g.level)) / 100

	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.12 * level
		if math.Sin(2*math.Pi*g.freq*t) < 0 {
			sample = -sample
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
