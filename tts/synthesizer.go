// Package tts renders the final script into MP3 audio with Google Cloud
// Text-to-Speech.
package tts

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	texttospeech "google.golang.org/api/texttospeech/v1"

	"shortstudio/config"
	"shortstudio/studio"
)

// Synthesizer issues one synthesis request per call. Credentials are resolved
// from the environment at call time.
type Synthesizer struct{}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer() *Synthesizer { return &Synthesizer{} }

// Synthesize produces MP3 audio bytes for script using voiceName, at normal
// (1.0x) speaking rate. No retries, no streaming.
func (s *Synthesizer) Synthesize(ctx context.Context, script, voiceName string) ([]byte, error) {
	if script == "" {
		return nil, fmt.Errorf("%w: script text is required", studio.ErrInvalidInput)
	}

	projectID := config.TTSProjectID()
	credsJSON := config.TTSCredentialsJSON()
	if projectID == "" || credsJSON == "" {
		return nil, fmt.Errorf("%w: %s and %s must both be set",
			studio.ErrConfiguration, config.TTSProjectIDEnv, config.TTSCredentialsEnv)
	}

	jwtCfg, err := google.JWTConfigFromJSON([]byte(credsJSON), texttospeech.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parse service account credentials: %w", studio.ErrConfiguration, err)
	}

	svc, err := texttospeech.NewService(ctx,
		option.WithHTTPClient(jwtCfg.Client(ctx)),
		option.WithQuotaProject(projectID),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: create TTS service: %w", studio.ErrSynthesis, err)
	}

	if voiceName == "" {
		voiceName = config.DefaultVoice
	}

	ctx, cancel := context.WithTimeout(ctx, config.SynthesizeTimeout)
	defer cancel()

	resp, err := svc.Text.Synthesize(&texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: script},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: LanguageFromVoice(voiceName),
			Name:         voiceName,
		},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding: "MP3",
			SpeakingRate:  1.0,
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", studio.ErrSynthesis, err)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("%w: decode audio payload: %w", studio.ErrSynthesis, err)
	}
	return audio, nil
}

// LanguageFromVoice derives the language code as the first two
// hyphen-separated segments of a voice name, e.g. "en-US-Neural2-C" -> "en-US".
func LanguageFromVoice(voiceName string) string {
	parts := strings.SplitN(voiceName, "-", 3)
	if len(parts) >= 2 {
		return parts[0] + "-" + parts[1]
	}
	return "en-US"
}
