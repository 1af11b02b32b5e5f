// Package video assembles the preview images and voiceover into a vertical
// slideshow clip. Optional final stage; requires ffmpeg on the host.
package video

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"shortstudio/config"
	"shortstudio/studio"
)

// Assemble writes previews and voiceover to temp files and renders a
// slideshow: each image held for a fixed duration, scaled to the vertical
// canvas, audio trimmed with -shortest.
func Assemble(previews [][]byte, voiceover []byte, outputPath string) error {
	if len(previews) == 0 {
		return fmt.Errorf("%w: preview images are required", studio.ErrInvalidInput)
	}
	if len(voiceover) == 0 {
		return fmt.Errorf("%w: voiceover audio is required", studio.ErrInvalidInput)
	}

	tmpDir := os.TempDir()
	id := uuid.New().String()

	audioPath := filepath.Join(tmpDir, fmt.Sprintf("%s_voiceover.mp3", id))
	if err := os.WriteFile(audioPath, voiceover, 0o644); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}
	defer os.Remove(audioPath)

	streams := make([]*ffmpeg.Stream, 0, len(previews))
	for i, img := range previews {
		imgPath := filepath.Join(tmpDir, fmt.Sprintf("%s_preview_%02d.png", id, i))
		if err := os.WriteFile(imgPath, img, 0o644); err != nil {
			return fmt.Errorf("write preview %d: %w", i, err)
		}
		defer os.Remove(imgPath)

		slide := ffmpeg.Input(imgPath, ffmpeg.KwArgs{
			"loop":      1,
			"t":         fmt.Sprintf("%.2f", config.SlideSeconds),
			"framerate": 30,
		}).Filter("scale", ffmpeg.Args{fmt.Sprintf("%d:%d", config.VideoWidth, config.VideoHeight)})
		streams = append(streams, slide)
	}

	slides := ffmpeg.Concat(streams)
	audio := ffmpeg.Input(audioPath)

	err := ffmpeg.Output([]*ffmpeg.Stream{slides, audio}, outputPath, ffmpeg.KwArgs{
		"c:v":      config.VideoCodec,
		"c:a":      config.AudioCodec,
		"b:a":      config.AudioBitrate,
		"preset":   config.VideoPreset,
		"pix_fmt":  "yuv420p",
		"shortest": "",
	}).OverWriteOutput().Run()
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}
