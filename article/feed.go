package article

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"

	"shortstudio/config"
	"shortstudio/studio"
)

// FromFeed resolves feedRef (a preset name or a feed URL), takes the newest
// entry, and fetches it through FromURL. Returns the normalized article text
// and the resolved article URL.
func (f *Fetcher) FromFeed(ctx context.Context, feedRef string) (string, string, error) {
	if feedRef == "" {
		return "", "", fmt.Errorf("%w: feed is required", studio.ErrInvalidInput)
	}
	feedURL := config.ResolveFeedURL(feedRef)

	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return "", "", fmt.Errorf("%w: parse feed: %w", studio.ErrRetrieval, err)
	}
	if len(feed.Items) == 0 {
		return "", "", fmt.Errorf("%w: feed %s has no entries", studio.ErrRetrieval, feedURL)
	}

	item := feed.Items[0]
	if item.Link == "" {
		return "", "", fmt.Errorf("%w: newest feed entry has no link", studio.ErrRetrieval)
	}

	text, err := f.FromURL(ctx, item.Link)
	if err != nil {
		return "", "", err
	}
	return text, item.Link, nil
}
