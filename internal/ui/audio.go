package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundInvalid
	SoundRollback // one step into the past
	SoundForward  // one step back towards the live position
	SoundGameEnd  // decisive result
	SoundDraw
)

const (
	sampleRate = 44100
)

// voice describes one generated effect: a phrase of notes, each note a
// set of frequencies sounded together.
type voice struct {
	freqs     []float64
	duration  float64 // seconds per note
	amplitude float64
	decay     float64 // exponential decay rate; 0 uses attack and a linear release
	attack    float64 // fraction of the note spent fading in
	overtone  float64 // weight of the second harmonic
	notes     int
	step      float64 // pitch ratio from one note to the next
	gap       float64 // seconds of silence between notes
}

var voices = map[SoundType]voice{
	// Short wooden click
	SoundMove: {freqs: []float64{440}, duration: 0.08, amplitude: 0.3, decay: 30, notes: 1},
	// Low buzz
	SoundInvalid: {freqs: []float64{150}, duration: 0.1, amplitude: 0.15, overtone: 0.3, notes: 1},
	// Two soft clicks, falling when going back and rising when going forward
	SoundRollback: {freqs: []float64{600}, duration: 0.04, amplitude: 0.2, decay: 30, notes: 2, step: 0.9, gap: 0.05},
	SoundForward:  {freqs: []float64{600}, duration: 0.04, amplitude: 0.2, decay: 30, notes: 2, step: 1.1, gap: 0.05},
	// C major for a win, C minor for a draw
	SoundGameEnd: {freqs: []float64{261.63, 329.63, 392.00}, duration: 0.4, amplitude: 0.5, attack: 0.1, notes: 1},
	SoundDraw:    {freqs: []float64{261.63, 311.13, 392.00}, duration: 0.6, amplitude: 0.4, attack: 0.2, notes: 1},
}

// AudioManager handles sound effect playback.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager. Only one may exist per
// process because Ebitengine allows a single audio context.
func NewAudioManager(enabled bool, volume float64) *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  generateSounds(),
		enabled: enabled,
	}
	am.SetVolume(volume)
	return am
}

// generateSounds renders every voice to 16-bit stereo PCM.
func generateSounds() map[SoundType][]byte {
	sounds := make(map[SoundType][]byte, len(voices))
	for s, v := range voices {
		sounds[s] = v.synthesize()
	}
	return sounds
}

// putSample writes one 16-bit stereo frame at index i.
func putSample(data []byte, i int, sample float64) {
	if sample > 1 {
		sample = 1
	} else if sample < -1 {
		sample = -1
	}
	val := int16(sample * 32767)
	data[i*4] = byte(val)
	data[i*4+1] = byte(val >> 8)
	data[i*4+2] = byte(val)
	data[i*4+3] = byte(val >> 8)
}

// frames returns the length of the phrase in stereo frames.
func (v voice) frames() int {
	n := int(sampleRate * v.duration)
	gap := int(sampleRate * v.gap)
	notes := max(v.notes, 1)
	return n*notes + gap*(notes-1)
}

// envelope returns the gain at t seconds into a note.
func (v voice) envelope(t float64) float64 {
	if v.decay > 0 {
		return math.Exp(-t * v.decay)
	}
	progress := t / v.duration
	if progress < v.attack {
		return progress / v.attack
	}
	return (1 - progress) / (1 - v.attack)
}

// synthesize renders the phrase. Later notes are quieter by a fifth.
func (v voice) synthesize() []byte {
	data := make([]byte, v.frames()*4)
	n := int(sampleRate * v.duration)
	gap := int(sampleRate * v.gap)

	pitch, amp := 1.0, v.amplitude
	offset := 0
	for note := 0; note < max(v.notes, 1); note++ {
		for i := 0; i < n; i++ {
			t := float64(i) / sampleRate
			sample := 0.0
			for _, f := range v.freqs {
				f *= pitch
				sample += math.Sin(2*math.Pi*f*t) + v.overtone*math.Sin(4*math.Pi*f*t)
			}
			sample /= float64(len(v.freqs))
			putSample(data, offset+i, sample*v.envelope(t)*amp)
		}
		offset += n + gap
		if v.step > 0 {
			pitch *= v.step
		}
		amp *= 0.8
	}
	return data
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}

	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// Create a new player for each play (allows overlapping sounds)
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// SetVolume sets the audio volume (0.0 to 1.0).
func (am *AudioManager) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	am.volume = volume
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
