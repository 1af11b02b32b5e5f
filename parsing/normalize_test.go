package parsing

import (
	"strings"
	"testing"
)

func TestCleanArticleText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already clean", "Hello world.", "Hello world."},
		{"internal runs", "Hello   world.\n\nThis is a   test.", "Hello world. This is a test."},
		{"leading and trailing", "  \t spaced out \n", "spaced out"},
		{"tabs and newlines", "a\tb\nc\r\nd", "a b c d"},
		{"only whitespace", " \n\t ", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CleanArticleText(c.in)
			if got != c.want {
				t.Fatalf("CleanArticleText(%q) = %q; want %q", c.in, got, c.want)
			}
		})
	}
}

func TestCleanArticleTextIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello   world.\n\nThis is a   test.",
		"  one two  three ",
		"no change needed",
	}
	for _, in := range inputs {
		once := CleanArticleText(in)
		twice := CleanArticleText(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q != %q", in, once, twice)
		}
		if strings.Contains(once, "  ") {
			t.Fatalf("output %q contains consecutive spaces", once)
		}
		if once != strings.TrimSpace(once) {
			t.Fatalf("output %q has leading/trailing whitespace", once)
		}
	}
}
