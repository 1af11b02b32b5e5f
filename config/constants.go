package config

import "time"

// Preview Rendering Constants
const (
	// PreviewWidth is the placeholder canvas width (9:16 aspect ratio)
	PreviewWidth = 1080

	// PreviewHeight is the placeholder canvas height (9:16 aspect ratio)
	PreviewHeight = 1920

	// PreviewWrapWidth is the maximum characters per wrapped text line
	PreviewWrapWidth = 28

	// PreviewMaxPromptLen truncates prompts longer than this before rendering
	PreviewMaxPromptLen = 160

	// PreviewLineSpacing is the vertical gap between wrapped lines in pixels
	PreviewLineSpacing = 6

	// PreviewMaxImages caps how many prompts get placeholder previews
	PreviewMaxImages = 3
)

// External Service Constants
const (
	// FetchTimeout bounds the article HTTP GET
	FetchTimeout = 10 * time.Second

	// GenerateTimeout bounds the text-generation call
	GenerateTimeout = 60 * time.Second

	// SynthesizeTimeout bounds the text-to-speech call
	SynthesizeTimeout = 60 * time.Second

	// DefaultModel is the Cohere chat model used for package generation
	DefaultModel = "command-r-08-2024"

	// DefaultVoice is the TTS voice used when none is selected
	DefaultVoice = "en-US-Standard-C"
)

// VoiceChoices lists the TTS voices offered by the interactive surfaces
var VoiceChoices = []string{
	"en-US-Standard-C",
	"en-US-Standard-D",
	"en-US-Neural2-C",
}

// Video Assembly Constants
const (
	// VideoWidth is the assembled slideshow width
	VideoWidth = 1080

	// VideoHeight is the assembled slideshow height
	VideoHeight = 1920

	// VideoCodec is the video encoding codec
	VideoCodec = "libx264"

	// AudioCodec is the audio encoding codec
	AudioCodec = "aac"

	// AudioBitrate is the audio quality bitrate
	AudioBitrate = "192k"

	// VideoPreset is the ffmpeg encoding speed preset
	VideoPreset = "fast"

	// SlideSeconds is how long each preview image stays on screen
	SlideSeconds = 4.0
)
