package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestToneRange verifies every waveform stays within [-1, 1] on both channels
func TestToneRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := []struct {
		name string
		wave waveform
		freq float64
	}{
		{"Sine", waveSine, 440},
		{"Square", waveSquare, 220},
		{"Saw", waveSaw, 110},
		{"Noise", waveNoise, 0},
	}

	for _, w := range waves {
		t.Run(w.name, func(t *testing.T) {
			tn := newTone(partial{freq: w.freq, wave: w.wave, length: 50 * time.Millisecond}, rate)
			samples := make([][2]float64, 100)
			n, ok := tn.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Expected 100 samples ok, got n=%d ok=%v", n, ok)
			}
			for i := 0; i < n; i++ {
				if math.Abs(samples[i][0]) > 1.0 || samples[i][0] != samples[i][1] {
					t.Fatalf("Sample %d invalid: %v", i, samples[i])
				}
			}
		})
	}
}

// TestToneLength verifies a tone drains at its length
func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	length := 10 * time.Millisecond
	expected := rate.N(length)

	tn := newTone(partial{freq: 440, length: length}, rate)
	n, ok := tn.Stream(make([][2]float64, expected*2))
	if n != expected || !ok {
		t.Errorf("Expected %d samples ok, got n=%d ok=%v", expected, n, ok)
	}

	n2, ok2 := tn.Stream(make([][2]float64, 10))
	if ok2 || n2 != 0 {
		t.Errorf("Expected drained tone, got n=%d ok=%v", n2, ok2)
	}
}

// TestToneEnvelope verifies the attack ramps up and the release fades out
func TestToneEnvelope(t *testing.T) {
	rate := beep.SampleRate(44100)
	p := partial{freq: 100, wave: waveSquare, length: 100 * time.Millisecond, attack: 50 * time.Millisecond, release: 20 * time.Millisecond}
	tn := newTone(p, rate)

	attack := make([][2]float64, rate.N(p.attack))
	n, _ := tn.Stream(attack)
	if first, last := math.Abs(attack[0][0]), math.Abs(attack[n-1][0]); first >= last {
		t.Errorf("Expected attack to ramp up, first=%f last=%f", first, last)
	}

	rest := make([][2]float64, rate.N(p.length))
	n, _ = tn.Stream(rest)
	if tail := math.Abs(rest[n-1][0]); tail > 0.01 {
		t.Errorf("Expected release to end near silence, got %f", tail)
	}
}

// TestCueStreamers verifies each cue produces samples
func TestCueStreamers(t *testing.T) {
	cfg := DefaultConfig()

	for cue := CuePickUp; cue < cueCount; cue++ {
		t.Run(cue.String(), func(t *testing.T) {
			s := CueStreamer(cue, cfg)
			if s == nil {
				t.Fatalf("Expected streamer for %v", cue)
			}
			n, ok := s.Stream(make([][2]float64, 200))
			if !ok || n == 0 {
				t.Errorf("Expected %v to stream, got n=%d ok=%v", cue, n, ok)
			}
		})
	}

	if CueStreamer(Cue(99), cfg) != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}

// TestEvictedPlaysBothNotes verifies sequenced steps add up in length
func TestEvictedPlaysBothNotes(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	want := rate.N(80*time.Millisecond) + rate.N(200*time.Millisecond)

	s := CueStreamer(CueEvicted, cfg)
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

// TestZeroVolumeIsSilent verifies a muted cue produces near-zero amplitude
func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	s := CueStreamer(CueRefused, cfg)
	samples := make([][2]float64, 100)
	n, _ := s.Stream(samples)
	for i := 0; i < n; i++ {
		if math.Abs(samples[i][0]) > 0.01 {
			t.Fatalf("Expected silence, sample %d = %f", i, samples[i][0])
		}
	}
}
