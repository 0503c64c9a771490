package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave of the given frequency and duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, length: rate.N(duration), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}
		v := waveAt(o.wave, o.phase)
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func waveAt(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope shapes a stream with a linear attack and release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		gain := 1.0
		switch {
		case e.position < e.attack:
			gain = float64(e.position) / float64(e.attack)
		case e.release > 0 && e.position >= releaseStart:
			gain = max(float64(e.total-e.position)/float64(e.release), 0)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly, zero meaning silent. effects.Volume is
// logarithmic so the level is converted through log2
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setLevel(v, vol)
	return v
}

func setLevel(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume, v.Silent = 0, true
		return
	}
	v.Volume, v.Silent = math.Log2(vol), false
}

// CreateFoodSound is a short rising blip
func CreateFoodSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(660, constants.FoodSoundDuration, WaveSine, rate)
	over := NewOscillator(1320, constants.FoodSoundDuration, WaveSine, rate)
	mixed := beep.Mix(newVolume(osc, 0.7), newVolume(over, 0.3))
	return NewEnvelope(mixed, constants.FoodSoundDuration, constants.FoodSoundAttack, constants.FoodSoundRelease, rate)
}

// CreatePowerUpSound is a two-note chime
func CreatePowerUpSound(rate beep.SampleRate) beep.Streamer {
	// B5 then E6
	n1 := NewOscillator(987.77, constants.PowerUpNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.PowerUpNote1Duration, constants.PowerUpSoundAttack, constants.PowerUpNote1Release, rate)

	n2 := NewOscillator(1318.51, constants.PowerUpNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.PowerUpNote2Duration, constants.PowerUpSoundAttack, constants.PowerUpNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.4)
}

// CreateCollisionSound is a falling saw crunch over noise
func CreateCollisionSound(rate beep.SampleRate) beep.Streamer {
	saw := NewOscillator(90, constants.CollisionSoundDuration, WaveSaw, rate)
	noise := NewOscillator(0, constants.CollisionSoundDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(saw, 0.6), newVolume(noise, 0.25))
	return NewEnvelope(mixed, constants.CollisionSoundDuration, constants.CollisionSoundAttack, constants.CollisionSoundRelease, rate)
}

// GetSoundEffect builds a fresh streamer for t
func GetSoundEffect(t SoundType, rate beep.SampleRate) (beep.Streamer, error) {
	switch t {
	case SoundFood:
		return CreateFoodSound(rate), nil
	case SoundPowerUp:
		return CreatePowerUpSound(rate), nil
	case SoundCollision:
		return CreateCollisionSound(rate), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownSound, t)
}

// musicGenerator is an endless kick and bass pattern
type musicGenerator struct {
	rate beep.SampleRate
	pos  int
	beat int
	kick int
}

// NewMusicGenerator creates the background loop. It never drains
func NewMusicGenerator(rate beep.SampleRate) beep.Streamer {
	return &musicGenerator{
		rate: rate,
		beat: rate.N(constants.MusicBeatDuration),
		kick: rate.N(constants.MusicBeatDuration / 6),
	}
}

// Bass roots per beat, A2 C3 D3 E3
var musicRoots = [...]float64{110, 130.81, 146.83, 164.81}

func (g *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.beat
		bar := (g.pos / g.beat) % len(musicRoots)
		t := float64(beatPos) / float64(g.rate)

		var kick float64
		if beatPos < g.kick {
			env := 1 - float64(beatPos)/float64(g.kick)
			kick = 0.4 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}
		bass := 0.15 * math.Sin(2*math.Pi*musicRoots[bar]*t)

		v := kick + bass
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *musicGenerator) Err() error { return nil }
