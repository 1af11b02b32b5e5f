package article

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shortstudio/studio"
)

const testPage = `<!DOCTYPE html>
<html>
<head>
<title>Test Article</title>
<style>body { color: red; }</style>
</head>
<body>
<script>var tracking = "should not appear";</script>
<article>
<p>Hello   world.</p>
<p>This is a   test of the article
pipeline with plenty of body text so extraction has something to work with.</p>
</article>
</body>
</html>`

func TestFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(testPage))
	}))
	defer srv.Close()

	text, err := NewFetcher().FromURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FromURL: %v", err)
	}
	if !strings.Contains(text, "Hello world.") {
		t.Fatalf("extracted text missing body content: %q", text)
	}
	if strings.Contains(text, "tracking") || strings.Contains(text, "color: red") {
		t.Fatalf("script/style content leaked into text: %q", text)
	}
	if strings.Contains(text, "  ") {
		t.Fatalf("text not normalized: %q", text)
	}
	if text != strings.TrimSpace(text) {
		t.Fatalf("text has leading/trailing whitespace: %q", text)
	}
}

func TestFromURLNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFetcher().FromURL(context.Background(), srv.URL)
	if !errors.Is(err, studio.ErrRetrieval) {
		t.Fatalf("FromURL on 404 = %v; want ErrRetrieval", err)
	}
}

func TestFromURLTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := NewFetcher().FromURL(context.Background(), srv.URL)
	if !errors.Is(err, studio.ErrRetrieval) {
		t.Fatalf("FromURL on dead server = %v; want ErrRetrieval", err)
	}
}

func TestFromURLEmpty(t *testing.T) {
	_, err := NewFetcher().FromURL(context.Background(), "  ")
	if !errors.Is(err, studio.ErrInvalidInput) {
		t.Fatalf("FromURL(\"\") = %v; want ErrInvalidInput", err)
	}
}

func TestFromText(t *testing.T) {
	f := NewFetcher()
	if got := f.FromText("Hello   world.\n\nThis is a   test."); got != "Hello world. This is a test." {
		t.Fatalf("FromText = %q", got)
	}
	if got := f.FromText(""); got != "" {
		t.Fatalf("FromText(\"\") = %q; want empty", got)
	}
}

func TestFromFeedEmptyRef(t *testing.T) {
	_, _, err := NewFetcher().FromFeed(context.Background(), "")
	if !errors.Is(err, studio.ErrInvalidInput) {
		t.Fatalf("FromFeed(\"\") = %v; want ErrInvalidInput", err)
	}
}

func TestFromFeedResolvesNewestEntry(t *testing.T) {
	var articleSrv *httptest.Server
	articleSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(testPage))
	}))
	defer articleSrv.Close()

	feedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(`<?xml version="1.0"?>
<rss version="2.0"><channel><title>t</title>
<item><title>newest</title><link>` + articleSrv.URL + `</link></item>
<item><title>older</title><link>http://127.0.0.1:1/nope</link></item>
</channel></rss>`))
	}))
	defer feedSrv.Close()

	text, articleURL, err := NewFetcher().FromFeed(context.Background(), feedSrv.URL)
	if err != nil {
		t.Fatalf("FromFeed: %v", err)
	}
	if articleURL != articleSrv.URL {
		t.Fatalf("FromFeed picked %q; want newest entry %q", articleURL, articleSrv.URL)
	}
	if !strings.Contains(text, "Hello world.") {
		t.Fatalf("FromFeed text = %q", text)
	}
}
