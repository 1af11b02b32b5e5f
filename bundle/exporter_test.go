package bundle

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"reflect"
	"testing"
)

func readArchive(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	out := map[string][]byte{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		out[f.Name] = b
	}
	return out
}

func TestBuildWithVoiceover(t *testing.T) {
	audio := []byte{0xff, 0xfb, 0x90, 0x00, 0x01, 0x02}
	data, err := NewExporter().Build(
		"final script",
		"My Title",
		"My description",
		"a, b,, c ",
		[]string{"idea one", "idea two"},
		[]string{"line one", "line two"},
		audio,
	)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	entries := readArchive(t, data)
	if len(entries) != 5 {
		t.Fatalf("archive has %d entries; want 5", len(entries))
	}
	if got := string(entries[ScriptEntry]); got != "final script" {
		t.Fatalf("script.txt = %q", got)
	}
	if got := string(entries[VisualPromptEntry]); got != "idea one\nidea two" {
		t.Fatalf("visual_prompts.txt = %q", got)
	}
	if got := string(entries[OnscreenTextEntry]); got != "line one\nline two" {
		t.Fatalf("onscreen_text.txt = %q", got)
	}
	if !bytes.Equal(entries[VoiceoverEntry], audio) {
		t.Fatal("voiceover.mp3 is not byte-identical to the supplied audio")
	}

	var meta Metadata
	if err := json.Unmarshal(entries[MetadataEntry], &meta); err != nil {
		t.Fatalf("metadata.json: %v", err)
	}
	if meta.Title != "My Title" || meta.Description != "My description" {
		t.Fatalf("metadata = %+v", meta)
	}
	if !reflect.DeepEqual(meta.Tags, []string{"a", "b", "c"}) {
		t.Fatalf("metadata tags = %v; want [a b c]", meta.Tags)
	}
}

func TestBuildWithoutVoiceover(t *testing.T) {
	data, err := NewExporter().Build("s", "t", "d", "", nil, nil, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	entries := readArchive(t, data)
	if len(entries) != 4 {
		t.Fatalf("archive has %d entries; want 4", len(entries))
	}
	if _, ok := entries[VoiceoverEntry]; ok {
		t.Fatal("voiceover.mp3 present despite no audio")
	}

	var meta Metadata
	if err := json.Unmarshal(entries[MetadataEntry], &meta); err != nil {
		t.Fatalf("metadata.json: %v", err)
	}
	if len(meta.Tags) != 0 {
		t.Fatalf("metadata tags = %v; want empty", meta.Tags)
	}
}
