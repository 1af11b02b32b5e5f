// Package preview renders placeholder images for visual-idea prompts: a dark
// vertical canvas with the prompt text wrapped and centered. These are local
// stand-ins for AI-generated footage, regenerable at any time.
package preview

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fogleman/gg"

	"shortstudio/config"
	"shortstudio/studio"
)

// Options controls canvas geometry and text layout. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	Width        int
	Height       int
	WrapWidth    int
	MaxPromptLen int
	LineSpacing  int
}

// DefaultOptions returns the standard 9:16 placeholder geometry.
func DefaultOptions() Options {
	return Options{
		Width:        config.PreviewWidth,
		Height:       config.PreviewHeight,
		WrapWidth:    config.PreviewWrapWidth,
		MaxPromptLen: config.PreviewMaxPromptLen,
		LineSpacing:  config.PreviewLineSpacing,
	}
}

// Renderer draws placeholder previews. Purely local, no service calls.
type Renderer struct {
	opts Options
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render produces one encoded PNG per prompt, order preserved. Empty input
// yields empty output.
func (r *Renderer) Render(prompts []string) ([][]byte, error) {
	images := make([][]byte, 0, len(prompts))
	for _, prompt := range prompts {
		img, err := r.renderOne(prompt)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func (r *Renderer) renderOne(prompt string) ([]byte, error) {
	lines := WrapText(Truncate(prompt, r.opts.MaxPromptLen), r.opts.WrapWidth)

	dc := gg.NewContext(r.opts.Width, r.opts.Height)
	dc.SetRGB255(24, 24, 24)
	dc.Clear()
	dc.SetRGB255(240, 240, 240)

	lineHeight := dc.FontHeight() + float64(r.opts.LineSpacing)
	blockHeight := lineHeight*float64(len(lines)) - float64(r.opts.LineSpacing)
	startY := (float64(r.opts.Height)-blockHeight)/2 + dc.FontHeight()/2

	for i, line := range lines {
		dc.DrawStringAnchored(line, float64(r.opts.Width)/2, startY+lineHeight*float64(i), 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%w: encode png: %w", studio.ErrRender, err)
	}
	return buf.Bytes(), nil
}

// Truncate cuts text to at most max characters, appending an ellipsis marker
// when anything was removed.
func Truncate(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max]) + "…"
}

// WrapText wraps text greedily into lines of at most width characters. A word
// is appended to the current line only while the line stays at or under the
// width; a single word longer than the width still gets its own line.
func WrapText(text string, width int) []string {
	words := strings.Fields(text)
	lines := []string{}
	current := ""

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if utf8.RuneCountInString(candidate) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{text}
	}
	return lines
}
