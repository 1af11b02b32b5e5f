package types

import (
	"reflect"
	"testing"
)

func TestCoercePackage(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want ShortPackage
	}{
		{
			"all fields present",
			`{"summary":"s","concepts":["a","b"],"script":"v","onscreen_text":["x"],"visual_ideas":["i"],"title":"t","description":"d","tags":["ai"]}`,
			ShortPackage{Summary: "s", Concepts: []string{"a", "b"}, Script: "v", OnscreenText: []string{"x"}, VisualIdeas: []string{"i"}, Title: "t", Description: "d", Tags: []string{"ai"}},
		},
		{
			"missing fields default",
			`{"script":"v"}`,
			ShortPackage{Script: "v", Concepts: []string{}, OnscreenText: []string{}, VisualIdeas: []string{}, Tags: []string{}},
		},
		{
			"tags as newline string",
			`{"tags":"ai\ntools\n\n"}`,
			ShortPackage{Concepts: []string{}, OnscreenText: []string{}, VisualIdeas: []string{}, Tags: []string{"ai", "tools"}},
		},
		{
			"tags as number becomes empty",
			`{"tags":42}`,
			ShortPackage{Concepts: []string{}, OnscreenText: []string{}, VisualIdeas: []string{}, Tags: []string{}},
		},
		{
			"list entries trimmed",
			`{"concepts":["  a  ",""," b"]}`,
			ShortPackage{Concepts: []string{"a", "b"}, OnscreenText: []string{}, VisualIdeas: []string{}, Tags: []string{}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := CoercePackage([]byte(c.in))
			if err != nil {
				t.Fatalf("CoercePackage error: %v", err)
			}
			if !reflect.DeepEqual(*got, c.want) {
				t.Fatalf("CoercePackage = %+v; want %+v", *got, c.want)
			}
		})
	}
}

func TestCoercePackageInvalidJSON(t *testing.T) {
	if _, err := CoercePackage([]byte("not json")); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags("a, b,, c ")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitTags = %v; want %v", got, want)
	}
	if got := SplitTags(""); len(got) != 0 {
		t.Fatalf("SplitTags(\"\") = %v; want empty", got)
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines(" one \n\ntwo\n")
	want := []string{"one", "two"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitLines = %v; want %v", got, want)
	}
}
