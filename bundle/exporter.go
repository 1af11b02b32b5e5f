// Package bundle serializes the final short-package artifacts into a single
// downloadable ZIP archive.
package bundle

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"shortstudio/studio"
	"shortstudio/types"
)

// Archive entry names. The layout is fixed; voiceover.mp3 appears only when
// audio was synthesized.
const (
	ScriptEntry       = "script.txt"
	MetadataEntry     = "metadata.json"
	VisualPromptEntry = "visual_prompts.txt"
	OnscreenTextEntry = "onscreen_text.txt"
	VoiceoverEntry    = "voiceover.mp3"
)

// Metadata is the stable shape of metadata.json.
type Metadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Exporter builds export bundles.
type Exporter struct{}

// NewExporter creates an Exporter.
func NewExporter() *Exporter { return &Exporter{} }

// Build assembles the archive in memory. The bundle is all-or-nothing: bytes
// are returned only after every entry was written and the archive closed
// cleanly. Upstream stages have already guaranteed field presence, so the
// only failure mode is the archive writer itself.
func (e *Exporter) Build(script, title, description, tagsStr string, visualIdeas, onscreenText []string, voiceover []byte) ([]byte, error) {
	meta, err := json.MarshalIndent(Metadata{
		Title:       title,
		Description: description,
		Tags:        types.SplitTags(tagsStr),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: marshal metadata: %w", studio.ErrExport, err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := []struct {
		name string
		data []byte
	}{
		{ScriptEntry, []byte(script)},
		{MetadataEntry, meta},
		{VisualPromptEntry, []byte(strings.Join(visualIdeas, "\n"))},
		{OnscreenTextEntry, []byte(strings.Join(onscreenText, "\n"))},
	}
	if len(voiceover) > 0 {
		entries = append(entries, struct {
			name string
			data []byte
		}{VoiceoverEntry, voiceover})
	}

	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			return nil, fmt.Errorf("%w: create %s: %w", studio.ErrExport, entry.name, err)
		}
		if _, err := w.Write(entry.data); err != nil {
			return nil, fmt.Errorf("%w: write %s: %w", studio.ErrExport, entry.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: close archive: %w", studio.ErrExport, err)
	}
	return buf.Bytes(), nil
}
