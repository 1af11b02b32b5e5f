// Package article loads normalized source text from URLs, pasted text, or
// RSS feeds.
package article

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"shortstudio/config"
	"shortstudio/parsing"
	"shortstudio/studio"
)

const maxBodyBytes = 4 << 20

// Fetcher retrieves articles over HTTP and extracts their body text.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with the standard bounded-timeout client.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: config.FetchTimeout},
	}
}

// FromURL issues one GET to pageURL, extracts the main article text, and
// normalizes it. No retries; the first failure surfaces to the caller.
func (f *Fetcher) FromURL(ctx context.Context, pageURL string) (string, error) {
	if strings.TrimSpace(pageURL) == "" {
		return "", fmt.Errorf("%w: url is required", studio.ErrInvalidInput)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", studio.ErrRetrieval, err)
	}
	req.Header.Set("User-Agent", "shortstudio/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", studio.ErrRetrieval, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: unexpected status %s", studio.ErrRetrieval, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", studio.ErrRetrieval, err)
	}

	return parsing.CleanArticleText(extractText(body, pageURL)), nil
}

// FromText normalizes pasted article text. Tolerates empty input; the caller
// decides whether empty is an error.
func (f *Fetcher) FromText(raw string) string {
	return parsing.CleanArticleText(raw)
}

// extractText pulls readable article text out of an HTML document. Readability
// extraction comes first; when it finds nothing the whole document text is
// used, with script and style content removed.
func extractText(body []byte, pageURL string) string {
	if parsed, err := url.Parse(pageURL); err == nil {
		if a, err := readability.FromReader(bytes.NewReader(body), parsed); err == nil {
			if text := strings.TrimSpace(a.TextContent); text != "" {
				return text
			}
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return string(body)
	}
	doc.Find("script, style, noscript").Remove()

	if sel := doc.Find("body"); sel.Length() > 0 {
		return sel.Text()
	}
	return doc.Text()
}
