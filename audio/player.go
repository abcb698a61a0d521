package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/seat-planner/constants"
)

// Player mixes cues onto the system speaker
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player; nothing is opened until Initialize
func NewPlayer(cfg Config) *Player {
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker when audio is enabled
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	if err := p.cfg.Validate(); err != nil {
		return err
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("Audio initialized at %d Hz", p.cfg.SampleRate)
	return nil
}

// Play queues a cue; no-op when audio is not running
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := CueStreamer(cue, p.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
