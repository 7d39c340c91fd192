package speech

import (
	"context"
	"fmt"
	"os/exec"
)

// defaultVoices is the voice table for espeak-ng, which resolves voice names
// by language code.
var defaultVoices = []Voice{
	{Name: "en-us", Lang: "en-US"},
	{Name: "es", Lang: "es-ES"},
	{Name: "fr-fr", Lang: "fr-FR"},
	{Name: "de", Lang: "de-DE"},
	{Name: "ja", Lang: "ja-JP"},
	{Name: "hi", Lang: "hi-IN"},
	{Name: "fi", Lang: "fi-FI"},
}

// CommandSynthesizer speaks by shelling out to a host TTS command in the
// espeak-ng argument convention: <command> -v <voice> <text>. Cancelling the
// context kills the process, which is how Stop interrupts playback.
type CommandSynthesizer struct {
	command string
	voices  []Voice
}

// NewCommandSynthesizer builds a synthesizer around the given command. An
// empty voice table falls back to the espeak-ng defaults.
func NewCommandSynthesizer(command string, voices []Voice) *CommandSynthesizer {
	if len(voices) == 0 {
		voices = defaultVoices
	}
	return &CommandSynthesizer{command: command, voices: voices}
}

func (s *CommandSynthesizer) Voices() []Voice {
	return s.voices
}

func (s *CommandSynthesizer) Speak(ctx context.Context, voice Voice, text string) error {
	cmd := exec.CommandContext(ctx, s.command, "-v", voice.Name, text)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("speech: %s: %w", s.command, err)
	}
	return nil
}
