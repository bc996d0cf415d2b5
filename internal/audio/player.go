package audio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

// Player plays cached MP3 handles through the system audio device. The
// underlying speaker is initialized once, on first playback, with the
// sample rate of the first decoded stream; later streams are resampled.
type Player struct {
	mu          sync.Mutex
	initialized bool
	sampleRate  beep.SampleRate
}

// NewPlayer constructs an idle Player.
func NewPlayer() *Player {
	return &Player{}
}

// Play decodes and plays a handle. onDone runs on the speaker goroutine
// when playback finishes. Playing a released handle returns ErrReleased.
func (p *Player) Play(h *Handle, onDone func()) error {
	data, err := h.Bytes()
	if err != nil {
		return err
	}
	streamer, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("failed to decode audio: %w", err)
	}

	p.mu.Lock()
	if !p.initialized {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			p.mu.Unlock()
			return fmt.Errorf("failed to initialize speaker: %w", err)
		}
		p.initialized = true
		p.sampleRate = format.SampleRate
	}
	rate := p.sampleRate
	p.mu.Unlock()

	var stream beep.Streamer = streamer
	if format.SampleRate != rate {
		stream = beep.Resample(4, format.SampleRate, rate, streamer)
	}

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		if cerr := streamer.Close(); cerr != nil {
			// Best-effort close of the decoded stream.
			_ = cerr
		}
		if onDone != nil {
			onDone()
		}
	})))
	return nil
}
