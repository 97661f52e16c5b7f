package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// maxVoices caps how many effects may overlap. Extra requests are dropped.
const maxVoices = 16

// Player mixes sound effects into the speaker. A Player whose speaker failed
// to open stays usable and plays nothing.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	enabled bool
	logger  *slog.Logger
}

// New opens the speaker. On failure the returned Player is silent and the
// error says why.
func New(volume float64, logger *slog.Logger) (*Player, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return p, fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.enabled = true
	return p, nil
}

// Enabled reports whether sounds reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play starts sound unless the player is silent or saturated.
func (p *Player) Play(sound Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if p.mixer.Len() >= maxVoices {
		p.logger.Debug("sound dropped", "sound", sound, "voices", p.mixer.Len())
		return
	}
	p.mixer.Add(NewSound(sound, p.volume))
}

// Close stops every playing sound and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.enabled = false
}
