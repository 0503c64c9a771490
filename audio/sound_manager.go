package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snake/constants"
)

// SoundManager plays effects and background music through one mixer under a
// master volume. Every method is a no-op until Initialize succeeds, so the
// game runs unchanged without an audio device
type SoundManager struct {
	mu sync.Mutex

	rate   beep.SampleRate
	mixer  *beep.Mixer
	master *effects.Volume
	music  *beep.Ctrl

	volume      float64
	initialized bool
}

// NewSoundManager creates a manager at the given master volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		rate:   beep.SampleRate(constants.AudioSampleRate),
		mixer:  mixer,
		master: newVolume(mixer, clampUnit(volume)),
		volume: clampUnit(volume),
	}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sound and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.music = nil
	sm.initialized = false
}

// Play starts a one-shot effect
func (sm *SoundManager) Play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s, err := GetSoundEffect(t, sm.rate)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartMusic starts or resumes the background loop
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.music != nil {
		sm.music.Paused = false
		return
	}
	sm.music = &beep.Ctrl{Streamer: newVolume(NewMusicGenerator(sm.rate), constants.MusicVolume)}
	sm.mixer.Add(sm.music)
}

// StopMusic pauses the background loop
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// SetVolume changes the master volume, clamped to [0, 1]
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.volume = clampUnit(v)
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	setLevel(sm.master, sm.volume)
}

func clampUnit(v float64) float64 {
	if v != v {
		return 0
	}
	return min(max(v, 0), 1)
}
