package constants

import "time"

// Audio Setup
const (
	// AudioSampleRate is the sample rate used for all cues
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Envelopes
const (
	// PickUpCueLength is the noise swoosh when a student leaves the roster
	PickUpCueLength  = 160 * time.Millisecond
	PickUpCueAttack  = 80 * time.Millisecond
	PickUpCueRelease = 80 * time.Millisecond

	// SeatedCueLength is the bell when a student takes a seat
	SeatedCueLength          = 400 * time.Millisecond
	SeatedCueAttack          = 5 * time.Millisecond
	SeatedCueRelease         = 350 * time.Millisecond
	SeatedCueOvertoneRelease = 150 * time.Millisecond

	// EvictedCueFirst and EvictedCueSecond are the two falling notes of an eviction
	EvictedCueFirst         = 80 * time.Millisecond
	EvictedCueSecond        = 200 * time.Millisecond
	EvictedCueAttack        = 5 * time.Millisecond
	EvictedCueFirstRelease  = 40 * time.Millisecond
	EvictedCueSecondRelease = 150 * time.Millisecond

	// RefusedCueLength is the buzz for a drop on a disabled seat
	RefusedCueLength  = 80 * time.Millisecond
	RefusedCueAttack  = 5 * time.Millisecond
	RefusedCueRelease = 20 * time.Millisecond
)
