package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	c "github.com/lixenwraith/seat-planner/constants"
)

// waveform selects the oscillator shape of a partial
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
	waveNoise
)

// at returns the waveform value for a phase in [0, 1)
func (w waveform) at(phase float64) float64 {
	switch w {
	case waveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case waveSaw:
		return 2*phase - 1
	case waveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// partial is one tone with a linear attack and release
type partial struct {
	freq    float64
	wave    waveform
	length  time.Duration
	attack  time.Duration
	release time.Duration
	gain    float64
}

// recipe is a cue as a sequence of steps, partials in a step sound together
type recipe [][]partial

var recipes = map[Cue]recipe{
	CuePickUp: {
		{{wave: waveNoise, length: c.PickUpCueLength, attack: c.PickUpCueAttack, release: c.PickUpCueRelease, gain: 0.5}},
	},
	CueSeated: {
		{
			{freq: 880, wave: waveSine, length: c.SeatedCueLength, attack: c.SeatedCueAttack, release: c.SeatedCueRelease, gain: 0.7},
			{freq: 1760, wave: waveSine, length: c.SeatedCueLength, attack: c.SeatedCueAttack, release: c.SeatedCueOvertoneRelease, gain: 0.3},
		},
	},
	CueEvicted: {
		{{freq: 1318.51, wave: waveSquare, length: c.EvictedCueFirst, attack: c.EvictedCueAttack, release: c.EvictedCueFirstRelease, gain: 0.6}},
		{{freq: 987.77, wave: waveSquare, length: c.EvictedCueSecond, attack: c.EvictedCueAttack, release: c.EvictedCueSecondRelease, gain: 0.6}},
	},
	CueRefused: {
		{{freq: 100, wave: waveSaw, length: c.RefusedCueLength, attack: c.RefusedCueAttack, release: c.RefusedCueRelease, gain: 1}},
	},
}

// tone streams one partial
type tone struct {
	p       partial
	rate    beep.SampleRate
	phase   float64
	pos     int
	total   int
	attackN int
	relN    int
}

func newTone(p partial, rate beep.SampleRate) *tone {
	return &tone{
		p:       p,
		rate:    rate,
		total:   rate.N(p.length),
		attackN: rate.N(p.attack),
		relN:    rate.N(p.release),
	}
}

// level is the envelope gain at the current position
func (t *tone) level() float64 {
	switch {
	case t.attackN > 0 && t.pos < t.attackN:
		return float64(t.pos) / float64(t.attackN)
	case t.relN > 0 && t.pos >= t.total-t.relN:
		return math.Max(0, float64(t.total-t.pos)/float64(t.relN))
	}
	return 1
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		v := t.p.wave.at(t.phase) * t.level()
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.p.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// math.Log2(0) is -Inf, so zero volume is mapped to a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// build renders a recipe into a single streamer at the given master volume
func (r recipe) build(rate beep.SampleRate, master float64) beep.Streamer {
	steps := make([]beep.Streamer, 0, len(r))
	for _, chord := range r {
		voices := make([]beep.Streamer, 0, len(chord))
		for _, p := range chord {
			voices = append(voices, newVolume(newTone(p, rate), p.gain))
		}
		if len(voices) == 1 {
			steps = append(steps, voices[0])
			continue
		}
		steps = append(steps, beep.Mix(voices...))
	}
	return newVolume(beep.Seq(steps...), master)
}

// CueStreamer returns the streamer for a cue, nil for unknown cues
func CueStreamer(cue Cue, cfg Config) beep.Streamer {
	r, ok := recipes[cue]
	if !ok {
		return nil
	}
	return r.build(beep.SampleRate(cfg.SampleRate), cfg.MasterVolume)
}
