package types

import (
	"encoding/json"
	"strings"
)

// ShortPackage is the structured output of article-to-script generation.
// Every field is always present after coercion; callers never need
// defensive shape checks.
type ShortPackage struct {
	Summary      string   `json:"summary"`
	Concepts     []string `json:"concepts"`
	Script       string   `json:"script"`
	OnscreenText []string `json:"onscreen_text"`
	VisualIdeas  []string `json:"visual_ideas"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
}

// rawPackage mirrors ShortPackage but leaves the list fields untyped, since
// the generator sometimes returns them as a single newline-joined string.
type rawPackage struct {
	Summary      string          `json:"summary"`
	Concepts     json.RawMessage `json:"concepts"`
	Script       string          `json:"script"`
	OnscreenText json.RawMessage `json:"onscreen_text"`
	VisualIdeas  json.RawMessage `json:"visual_ideas"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Tags         json.RawMessage `json:"tags"`
}

// CoercePackage decodes an untrusted JSON object into a fully-populated
// ShortPackage. Missing fields become empty values; list fields delivered as
// a single string are split on newlines with empty lines dropped; list fields
// of any other shape are replaced with empty slices.
func CoercePackage(data []byte) (*ShortPackage, error) {
	var raw rawPackage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return &ShortPackage{
		Summary:      raw.Summary,
		Concepts:     coerceList(raw.Concepts),
		Script:       raw.Script,
		OnscreenText: coerceList(raw.OnscreenText),
		VisualIdeas:  coerceList(raw.VisualIdeas),
		Title:        raw.Title,
		Description:  raw.Description,
		Tags:         coerceList(raw.Tags),
	}, nil
}

// coerceList normalizes a loosely-typed JSON value into a string slice.
func coerceList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, item := range list {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return SplitLines(single)
	}

	return []string{}
}

// SplitLines splits s on newlines, trims each line, and drops empty lines.
func SplitLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// SplitTags splits a comma-joined tag string, trims each entry, and drops
// empty entries.
func SplitTags(s string) []string {
	out := []string{}
	for _, tag := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
