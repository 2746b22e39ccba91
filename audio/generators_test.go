package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

const testSampleRate = beep.SampleRate(48000)

func allGenerators() map[string]beep.Streamer {
	return map[string]beep.Streamer{
		"chime":  NewChimeGenerator(testSampleRate),
		"crash":  NewCrashGenerator(testSampleRate),
		"sweep":  NewSweepGenerator(testSampleRate),
		"rise":   NewRiseGenerator(testSampleRate),
		"combo":  NewComboGenerator(testSampleRate),
		"blip":   NewBlipGenerator(testSampleRate, 700),
		"jingle": NewJingleGenerator(testSampleRate),
		"hum":    NewHumGenerator(testSampleRate),
	}
}

func TestGeneratorsFillBuffers(t *testing.T) {
	for name, gen := range allGenerators() {
		buf := make([][2]float64, 512)
		n, ok := gen.Stream(buf)

		if !ok {
			t.Errorf("%s: Stream reported not ok", name)
		}
		if n != len(buf) {
			t.Errorf("%s: Stream filled %d of %d samples", name, n, len(buf))
		}
	}
}

func TestGeneratorsStayInRange(t *testing.T) {
	for name, gen := range allGenerators() {
		// One second of audio, streamed in chunks
		buf := make([][2]float64, 512)
		for streamed := 0; streamed < int(testSampleRate); streamed += len(buf) {
			gen.Stream(buf)
			for i, s := range buf {
				if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
					t.Fatalf("%s: sample %d out of range: %v", name, streamed+i, s)
				}
			}
		}
	}
}

func TestGeneratorsNeverError(t *testing.T) {
	for name, gen := range allGenerators() {
		buf := make([][2]float64, 256)
		gen.Stream(buf)
		if err := gen.Err(); err != nil {
			t.Errorf("%s: Err() = %v, want nil", name, err)
		}
	}
}

func TestGeneratorsAreStereoBalanced(t *testing.T) {
	for name, gen := range allGenerators() {
		buf := make([][2]float64, 256)
		gen.Stream(buf)
		for i, s := range buf {
			if s[0] != s[1] {
				t.Fatalf("%s: sample %d channels differ: %v vs %v", name, i, s[0], s[1])
			}
		}
	}
}
