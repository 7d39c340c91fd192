package speech

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSynth blocks inside Speak until released or cancelled. started carries
// the voice each utterance was requested with.
type stubSynth struct {
	calls   atomic.Int32
	started chan Voice
	release chan error
}

func newStubSynth() *stubSynth {
	return &stubSynth{
		started: make(chan Voice, 8),
		release: make(chan error),
	}
}

func (s *stubSynth) Voices() []Voice {
	return []Voice{{Name: "en-us", Lang: "en-US"}, {Name: "es", Lang: "es-ES"}}
}

func (s *stubSynth) Speak(ctx context.Context, voice Voice, _ string) error {
	s.calls.Add(1)
	s.started <- voice
	select {
	case err := <-s.release:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func waitForIdle(t *testing.T, sp *Speaker) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if sp.State() == StateIdle {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("speaker did not return to idle")
}

func TestSpeaker_StartWhileSpeakingIsNoOp(t *testing.T) {
	synth := newStubSynth()
	sp := NewSpeaker(synth, zerolog.Nop())

	state, err := sp.Start("en", "first utterance")
	require.NoError(t, err)
	assert.Equal(t, StateSpeaking, state)
	<-synth.started

	state, err = sp.Start("en", "second utterance")
	require.NoError(t, err)
	assert.Equal(t, StateSpeaking, state)
	assert.Equal(t, int32(1), synth.calls.Load(), "second start must not reach the synthesizer")

	sp.Stop()
	waitForIdle(t, sp)
}

func TestSpeaker_NewLanguageReplacesUtterance(t *testing.T) {
	synth := newStubSynth()
	sp := NewSpeaker(synth, zerolog.Nop())

	_, err := sp.Start("en", "english text")
	require.NoError(t, err)
	first := <-synth.started
	assert.Equal(t, "en-us", first.Name)

	state, err := sp.Start("es", "texto en español")
	require.NoError(t, err)
	assert.Equal(t, StateSpeaking, state)

	second := <-synth.started
	assert.Equal(t, "es", second.Name, "the new utterance must use the new language's voice")
	assert.Equal(t, int32(2), synth.calls.Load())
	assert.Equal(t, StateSpeaking, sp.State(), "replacing must not settle back to idle")

	sp.Stop()
	waitForIdle(t, sp)
}

func TestSpeaker_StopWhileIdleIsNoOp(t *testing.T) {
	sp := NewSpeaker(newStubSynth(), zerolog.Nop())

	assert.Equal(t, StateIdle, sp.Stop())
	assert.Equal(t, StateIdle, sp.State())
}

func TestSpeaker_StopCancelsUtterance(t *testing.T) {
	synth := newStubSynth()
	sp := NewSpeaker(synth, zerolog.Nop())

	_, err := sp.Start("en", "text")
	require.NoError(t, err)
	<-synth.started

	assert.Equal(t, StateIdle, sp.Stop())
	assert.Equal(t, StateIdle, sp.State())

	// A new utterance can start right away.
	state, err := sp.Start("es", "siguiente")
	require.NoError(t, err)
	assert.Equal(t, StateSpeaking, state)
	<-synth.started
	sp.Stop()
}

func TestSpeaker_ReturnsToIdleWhenUtteranceEnds(t *testing.T) {
	synth := newStubSynth()
	sp := NewSpeaker(synth, zerolog.Nop())

	_, err := sp.Start("en", "text")
	require.NoError(t, err)
	<-synth.started

	synth.release <- nil
	waitForIdle(t, sp)
}

func TestSpeaker_ReturnsToIdleOnSynthesizerError(t *testing.T) {
	synth := newStubSynth()
	sp := NewSpeaker(synth, zerolog.Nop())

	_, err := sp.Start("en", "text")
	require.NoError(t, err)
	<-synth.started

	synth.release <- errors.New("device busy")
	waitForIdle(t, sp)
}

func TestSpeaker_NoVoices(t *testing.T) {
	sp := NewSpeaker(emptySynth{}, zerolog.Nop())

	_, err := sp.Start("en", "text")
	require.ErrorIs(t, err, ErrNoVoices)
	assert.Equal(t, StateIdle, sp.State())
}

type emptySynth struct{}

func (emptySynth) Voices() []Voice                            { return nil }
func (emptySynth) Speak(context.Context, Voice, string) error { return nil }
