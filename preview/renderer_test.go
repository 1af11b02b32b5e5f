package preview

import (
	"bytes"
	"image/png"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWrapText(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits on one line", "short prompt", 28, []string{"short prompt"}},
		{"splits greedily", "one two three four", 9, []string{"one two", "three", "four"}},
		{"boundary exact", "abcd efgh", 9, []string{"abcd efgh"}},
		{"single long word own line", "extraordinarily tiny", 10, []string{"extraordinarily", "tiny"}},
		{"empty text", "", 10, []string{""}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WrapText(c.text, c.width)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("WrapText(%q, %d) = %v; want %v", c.text, c.width, got, c.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := Truncate(long, 160)
	if utf8.RuneCountInString(got) != 161 {
		t.Fatalf("Truncate length = %d; want 161 (160 + ellipsis)", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("Truncate missing ellipsis marker: %q", got[len(got)-8:])
	}
	if short := Truncate("short", 160); short != "short" {
		t.Fatalf("Truncate modified short text: %q", short)
	}
}

func TestRenderCountAndOrder(t *testing.T) {
	r := NewRenderer(Options{Width: 108, Height: 192, WrapWidth: 28, MaxPromptLen: 160, LineSpacing: 6})

	images, err := r.Render([]string{"first prompt", "second prompt", "third prompt"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("Render returned %d images; want 3", len(images))
	}

	empty, err := r.Render(nil)
	if err != nil {
		t.Fatalf("Render(nil): %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("Render(nil) returned %d images; want 0", len(empty))
	}
}

func TestRenderProducesPNGWithConfiguredBounds(t *testing.T) {
	r := NewRenderer(Options{Width: 108, Height: 192, WrapWidth: 28, MaxPromptLen: 160, LineSpacing: 6})

	images, err := r.Render([]string{strings.Repeat("very long prompt text ", 20)})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(images[0]))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 108 || bounds.Dy() != 192 {
		t.Fatalf("canvas is %dx%d; want 108x192", bounds.Dx(), bounds.Dy())
	}
}
