package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Sound identifies a fire-and-forget effect the simulation can request.
type Sound int

const (
	SoundCoin Sound = iota // Coin collected
	SoundCrash             // Unshielded collision, run over
	SoundPowerUp           // Power-up collected
	SoundWhoosh            // Lane change
	SoundCombo             // Combo milestone
	SoundBeep              // UI acknowledge (toggles, resets)
	SoundStart             // Run start jingle
)

// SoundManager manages all game audio. The simulation never blocks on
// it: Play pushes a bounded streamer into the mixer and returns.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	humStreamer *beep.Ctrl
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system. Failure leaves the manager in a
// silent state; callers keep using it without error handling.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and clears the mixer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.humStreamer != nil {
		sm.humStreamer.Paused = true
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// SetMuted toggles all effect output. The engine hum follows the flag.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.humStreamer != nil {
		sm.humStreamer.Paused = muted || sm.humStreamer.Paused
	}
}

// Muted returns the current mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a one-shot effect.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	var streamer beep.Streamer
	switch s {
	case SoundCoin:
		streamer = beep.Take(sampleRate.N(time.Millisecond*120), NewChimeGenerator(sampleRate))
	case SoundCrash:
		streamer = beep.Take(sampleRate.N(time.Millisecond*400), NewCrashGenerator(sampleRate))
	case SoundPowerUp:
		streamer = beep.Take(sampleRate.N(time.Millisecond*300), NewRiseGenerator(sampleRate))
	case SoundWhoosh:
		streamer = beep.Take(sampleRate.N(time.Millisecond*150), NewSweepGenerator(sampleRate))
	case SoundCombo:
		streamer = beep.Take(sampleRate.N(time.Millisecond*160), NewComboGenerator(sampleRate))
	case SoundBeep:
		streamer = beep.Take(sampleRate.N(time.Millisecond*80), NewBlipGenerator(sampleRate, 700))
	case SoundStart:
		streamer = beep.Take(sampleRate.N(time.Millisecond*450), NewJingleGenerator(sampleRate))
	default:
		return
	}

	sm.mixer.Add(streamer)
}

// StartHum begins the looping engine hum for an active run.
func (sm *SoundManager) StartHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	if sm.humStreamer != nil && !sm.humStreamer.Paused {
		return
	}

	// The hum generator streams forever; no loop wrapper needed
	ctrl := &beep.Ctrl{Streamer: NewHumGenerator(sampleRate), Paused: false}
	sm.humStreamer = ctrl
	sm.mixer.Add(ctrl)
}

// StopHum pauses the engine hum (run ended or paused).
func (sm *SoundManager) StopHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.humStreamer != nil {
		sm.humStreamer.Paused = true
	}
}
