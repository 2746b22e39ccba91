package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChimeGenerator generates the coin pickup chime: two quick rising
// sine notes.
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChimeGenerator creates a chime sound generator
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.sr.N(time.Millisecond * 60)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 880.0
		if g.pos >= half {
			freq = 1320.0
		}

		// Short envelope per note to avoid clicks
		notePos := g.pos % half
		envelope := 1.0 - float64(notePos)/float64(half)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// CrashGenerator generates the collision sound: a noise burst with a
// low rumble, decaying exponentially.
type CrashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewCrashGenerator creates a crash sound generator
func NewCrashGenerator(sr beep.SampleRate) *CrashGenerator {
	return &CrashGenerator{sr: sr, seed: 0x5eed}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.35 * math.Sin(2*math.Pi*55*t)

		sample := envelope * (0.4*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}

// SweepGenerator generates the lane-change whoosh: filtered noise with
// a rising band center.
type SweepGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewSweepGenerator creates a whoosh sound generator
func NewSweepGenerator(sr beep.SampleRate) *SweepGenerator {
	return &SweepGenerator{sr: sr, seed: 0x77aa}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.sr.N(time.Millisecond * 150)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(total)
		if progress > 1 {
			progress = 1
		}

		// Frequency sweep 300Hz -> 900Hz over the burst
		freq := 300 + 600*progress

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// Bell envelope: silent at both ends
		envelope := math.Sin(progress * math.Pi)
		sample := envelope * (0.1*noise + 0.15*math.Sin(2*math.Pi*freq*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// RiseGenerator generates the power-up pickup sound: an ascending sine
// sweep with sparkle harmonics.
type RiseGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewRiseGenerator creates a power-up sound generator
func NewRiseGenerator(sr beep.SampleRate) *RiseGenerator {
	return &RiseGenerator{sr: sr}
}

func (g *RiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.sr.N(time.Millisecond * 300)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(total)
		if progress > 1 {
			progress = 1
		}

		freq := 400 + 800*progress

		sample := 0.2 * math.Sin(2*math.Pi*freq*t)
		sample += 0.08 * math.Sin(2*math.Pi*freq*2*t)

		// Fade out near the end
		if progress > 0.7 {
			sample *= (1 - progress) / 0.3
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *RiseGenerator) Err() error {
	return nil
}

// ComboGenerator generates the combo milestone sound: two stacked
// fifths.
type ComboGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewComboGenerator creates a combo sound generator
func NewComboGenerator(sr beep.SampleRate) *ComboGenerator {
	return &ComboGenerator{sr: sr}
}

func (g *ComboGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.sr.N(time.Millisecond * 80)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 660.0
		if g.pos >= half {
			freq = 990.0
		}

		notePos := g.pos % half
		envelope := 1.0 - 0.8*float64(notePos)/float64(half)
		sample := 0.22 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ComboGenerator) Err() error {
	return nil
}

// BlipGenerator generates a short UI acknowledge tone.
type BlipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBlipGenerator creates a blip sound generator
func NewBlipGenerator(sr beep.SampleRate, freq float64) *BlipGenerator {
	return &BlipGenerator{sr: sr, freq: freq}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.2 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.06 * math.Sin(2*math.Pi*g.freq*2*t)

		// Quick attack to avoid clicks
		attack := math.Min(float64(g.pos)/float64(g.sr)/0.01, 1.0)
		sample *= attack

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// JingleGenerator generates the run-start jingle: a three-note major
// arpeggio.
type JingleGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewJingleGenerator creates a start jingle generator
func NewJingleGenerator(sr beep.SampleRate) *JingleGenerator {
	return &JingleGenerator{sr: sr}
}

func (g *JingleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	noteLen := g.sr.N(time.Millisecond * 150)
	freqs := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		note := g.pos / noteLen
		if note >= len(freqs) {
			note = len(freqs) - 1
		}
		freq := freqs[note]

		notePos := g.pos % noteLen
		envelope := 1.0 - 0.6*float64(notePos)/float64(noteLen)
		sample := 0.22 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *JingleGenerator) Err() error {
	return nil
}

// HumGenerator generates the looping engine hum: a low tone with a slow
// wobble.
type HumGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewHumGenerator creates an engine hum generator
func NewHumGenerator(sr beep.SampleRate) *HumGenerator {
	return &HumGenerator{
		sr:      sr,
		samples: sr.N(time.Second * 2), // 2 second wobble cycle
	}
}

func (g *HumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		freq := 75 + 10*math.Sin(cyclePos*2*math.Pi)

		sample := 0.08 * math.Sin(2*math.Pi*freq*t)
		sample += 0.04 * math.Sin(2*math.Pi*freq*2*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HumGenerator) Err() error {
	return nil
}
