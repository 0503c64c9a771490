package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Food Sound Timing
const (
	FoodSoundDuration = 90 * time.Millisecond
	FoodSoundAttack   = 5 * time.Millisecond
	FoodSoundRelease  = 60 * time.Millisecond
)

// Power-up Sound Timing
const (
	PowerUpNote1Duration = 80 * time.Millisecond
	PowerUpNote2Duration = 220 * time.Millisecond
	PowerUpSoundAttack   = 5 * time.Millisecond
	PowerUpNote1Release  = 40 * time.Millisecond
	PowerUpNote2Release  = 160 * time.Millisecond
)

// Collision Sound Timing
const (
	CollisionSoundDuration = 400 * time.Millisecond
	CollisionSoundAttack   = 5 * time.Millisecond
	CollisionSoundRelease  = 300 * time.Millisecond
)

// Music
const (
	// MusicBeatDuration is the length of one bass beat (100 BPM)
	MusicBeatDuration = 600 * time.Millisecond

	// MusicVolume scales the background loop relative to effects
	MusicVolume = 0.35
)
