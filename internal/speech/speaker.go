// Package speech drives read-aloud playback through a host text-to-speech
// engine. Playback is single-slot: at most one utterance is active, and the
// speaker is a two-state machine (idle, speaking) where a same-language start
// is ignored while speaking, a new-language start replaces the utterance, and
// stop while idle is a no-op.
package speech

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/primelabel/labelview/internal/api/metrics"
)

// State is the speaker's playback state.
type State string

const (
	StateIdle     State = "idle"
	StateSpeaking State = "speaking"
)

// ErrNoVoices is returned when the synthesizer offers no voices at all.
var ErrNoVoices = errors.New("speech: no voices available")

// Synthesizer abstracts the platform speech facility.
type Synthesizer interface {
	// Voices lists the available voices.
	Voices() []Voice
	// Speak plays the text with the given voice, blocking until the
	// utterance ends, fails, or ctx is cancelled.
	Speak(ctx context.Context, voice Voice, text string) error
}

// Speaker serializes utterances over a Synthesizer. Safe for concurrent use.
type Speaker struct {
	synth Synthesizer
	log   zerolog.Logger

	mu     sync.Mutex
	state  State
	lang   string
	cancel context.CancelFunc
	// gen invalidates the cleanup of an utterance that was stopped or
	// replaced before its goroutine observed the cancellation.
	gen uint64
}

// NewSpeaker returns an idle Speaker.
func NewSpeaker(synth Synthesizer, log zerolog.Logger) *Speaker {
	return &Speaker{synth: synth, log: log, state: StateIdle}
}

// State returns the current playback state.
func (s *Speaker) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start begins reading text aloud in the voice matching lang. While already
// speaking in the same language it is a no-op reporting the speaking state
// unchanged; a different language cancels the active utterance and starts
// over with the new voice.
func (s *Speaker) Start(lang, text string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSpeaking && lang == s.lang {
		metrics.SpeechEventsTotal.WithLabelValues("busy").Inc()
		return StateSpeaking, nil
	}

	voice, ok := MatchVoice(s.synth.Voices(), lang)
	if !ok {
		return s.state, ErrNoVoices
	}

	event := "start"
	if s.state == StateSpeaking {
		s.cancel()
		event = "replace"
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.state = StateSpeaking
	s.lang = lang
	s.gen++

	metrics.SpeechEventsTotal.WithLabelValues(event).Inc()
	s.log.Debug().Str("lang", lang).Str("voice", voice.Name).Msg("read-aloud started")

	go s.run(ctx, s.gen, voice, text)
	return StateSpeaking, nil
}

func (s *Speaker) run(ctx context.Context, gen uint64, voice Voice, text string) {
	err := s.synth.Speak(ctx, voice, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// Stopped or replaced; the state was already settled.
		return
	}
	s.state = StateIdle
	s.lang = ""
	s.cancel = nil

	switch {
	case err == nil:
		metrics.SpeechEventsTotal.WithLabelValues("ended").Inc()
	case errors.Is(err, context.Canceled):
		metrics.SpeechEventsTotal.WithLabelValues("stop").Inc()
	default:
		metrics.SpeechEventsTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Msg("read-aloud failed")
	}
}

// Stop cancels the active utterance immediately. While idle it is a no-op.
func (s *Speaker) Stop() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle {
		return StateIdle
	}

	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = nil
	s.state = StateIdle
	s.lang = ""
	s.gen++

	metrics.SpeechEventsTotal.WithLabelValues("stop").Inc()
	return StateIdle
}
