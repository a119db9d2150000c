package sim

import (
	"math"
	"testing"
)

func maxAmplitude(g *toneGenerator, n int) float64 {
	samples := make([][2]float64, n)
	g.Stream(samples)

	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s[0]); a > peak {
			peak = a
		}
	}
	return peak
}

// TestToneSilentAtZeroDuty verifies duty 0 streams pure silence.
func TestToneSilentAtZeroDuty(t *testing.T) {
	g := &toneGenerator{sr: sampleRate, freq: toneFreq}

	if peak := maxAmplitude(g, 1024); peak != 0 {
		t.Errorf("Expected silence at duty 0, got peak %f", peak)
	}
}

// TestToneAmplitudeFollowsDuty verifies louder duty streams louder
// samples.
func TestToneAmplitudeFollowsDuty(t *testing.T) {
	quiet := &toneGenerator{sr: sampleRate, freq: toneFreq}
	loud := &toneGenerator{sr: sampleRate, freq: toneFreq}

	(&tone{gen: quiet}).SetDuty(25)
	(&tone{gen: loud}).SetDuty(100)

	quietPeak := maxAmplitude(quiet, 1024)
	loudPeak := maxAmplitude(loud, 1024)

	if quietPeak <= 0 {
		t.Error("Expected audible output at duty 25")
	}
	if loudPeak <= quietPeak {
		t.Errorf("Expected duty 100 louder than duty 25, got %f <= %f", loudPeak, quietPeak)
	}
}

// TestSetDutyClamps verifies duty above 100 percent behaves as full
// scale, like the hardware PWM.
func TestSetDutyClamps(t *testing.T) {
	g := &toneGenerator{sr: sampleRate, freq: toneFreq}
	(&tone{gen: g}).SetDuty(150)

	if g.level != 100 {
		t.Errorf("Expected duty clamped to 100, got %d", g.level)
	}
}

// TestToneStreamNeverEnds verifies the generator keeps the speaker fed.
func TestToneStreamNeverEnds(t *testing.T) {
	g := &toneGenerator{sr: sampleRate, freq: toneFreq}

	samples := make([][2]float64, 128)
	n, ok := g.Stream(samples)
	if n != len(samples) || !ok {
		t.Errorf("Expected full buffer and ok, got n=%d ok=%v", n, ok)
	}
	if err := g.Err(); err != nil {
		t.Errorf("Expected no stream error, got %v", err)
	}
}
