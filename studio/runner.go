package studio

import (
	"context"
	"fmt"
	"log"
	"strings"

	"shortstudio/types"
)

// ArticleSource loads normalized article text from a URL, raw text, or feed.
type ArticleSource interface {
	FromURL(ctx context.Context, url string) (string, error)
	FromText(raw string) string
	FromFeed(ctx context.Context, feedRef string) (text string, articleURL string, err error)
}

// PackageGenerator turns article text into a fully-populated ShortPackage.
type PackageGenerator interface {
	Generate(ctx context.Context, articleText, topicHint string) (*types.ShortPackage, error)
}

// VoiceSynthesizer produces encoded audio for a script.
type VoiceSynthesizer interface {
	Synthesize(ctx context.Context, script, voiceName string) ([]byte, error)
}

// PreviewRenderer produces one placeholder image per prompt.
type PreviewRenderer interface {
	Render(prompts []string) ([][]byte, error)
}

// BundleBuilder serializes the final artifacts into a single archive.
type BundleBuilder interface {
	Build(script, title, description, tagsStr string, visualIdeas, onscreenText []string, voiceover []byte) ([]byte, error)
}

// Runner drives the pipeline stages against one session. Stage ordering is
// enforced by presence checks; a failed stage never touches state written by
// an earlier successful stage.
type Runner struct {
	Source    ArticleSource
	Generator PackageGenerator
	Voice     VoiceSynthesizer
	Previewer PreviewRenderer
	Bundler   BundleBuilder

	// MaxPreviews caps how many visual ideas get placeholder images.
	// Zero means no cap.
	MaxPreviews int

	Session *Session
}

// LoadURL fetches and normalizes an article from a URL.
func (r *Runner) LoadURL(ctx context.Context, url string) error {
	text, err := r.Source.FromURL(ctx, url)
	if err != nil {
		return err
	}
	r.Session.ArticleText = text
	r.Session.SourceURL = url
	log.Printf("Article loaded from %s (%d chars)", url, len(text))
	return nil
}

// LoadText normalizes pasted article text.
func (r *Runner) LoadText(raw string) error {
	text := r.Source.FromText(raw)
	if text == "" {
		return fmt.Errorf("%w: article text is empty", ErrInvalidInput)
	}
	r.Session.ArticleText = text
	log.Printf("Article loaded from pasted text (%d chars)", len(text))
	return nil
}

// LoadFeed resolves the newest entry of an RSS feed and fetches it.
func (r *Runner) LoadFeed(ctx context.Context, feedRef string) error {
	text, articleURL, err := r.Source.FromFeed(ctx, feedRef)
	if err != nil {
		return err
	}
	r.Session.ArticleText = text
	r.Session.SourceURL = articleURL
	log.Printf("Article loaded from feed %s -> %s (%d chars)", feedRef, articleURL, len(text))
	return nil
}

// GeneratePackage runs the generation stage. Requires a loaded article.
func (r *Runner) GeneratePackage(ctx context.Context, topicHint string) error {
	if !r.Session.HasArticle() {
		return fmt.Errorf("%w: load a source article first", ErrInvalidInput)
	}
	pkg, err := r.Generator.Generate(ctx, r.Session.ArticleText, topicHint)
	if err != nil {
		return err
	}
	r.Session.Package = pkg
	log.Printf("Short package generated: %d concepts, %d visual ideas, %d tags",
		len(pkg.Concepts), len(pkg.VisualIdeas), len(pkg.Tags))
	return nil
}

// EditScript records a user edit of the voiceover script.
func (r *Runner) EditScript(script string) error {
	if !r.Session.HasPackage() {
		return fmt.Errorf("%w: generate a package first", ErrInvalidInput)
	}
	r.Session.ScriptEdit = strings.TrimSpace(script)
	return nil
}

// Voiceover runs the synthesis stage on the final script.
func (r *Runner) Voiceover(ctx context.Context, voiceName string) error {
	if !r.Session.HasPackage() {
		return fmt.Errorf("%w: generate a package first", ErrInvalidInput)
	}
	audio, err := r.Voice.Synthesize(ctx, r.Session.FinalScript(), voiceName)
	if err != nil {
		return err
	}
	r.Session.VoiceName = voiceName
	r.Session.Voiceover = audio
	log.Printf("Voiceover generated with %s (%d bytes)", voiceName, len(audio))
	return nil
}

// Previews renders placeholder images for the package's visual ideas.
func (r *Runner) Previews() error {
	if !r.Session.HasPackage() {
		return fmt.Errorf("%w: generate a package first", ErrInvalidInput)
	}
	prompts := r.Session.Package.VisualIdeas
	if r.MaxPreviews > 0 && len(prompts) > r.MaxPreviews {
		prompts = prompts[:r.MaxPreviews]
	}
	images, err := r.Previewer.Render(prompts)
	if err != nil {
		return err
	}
	r.Session.Previews = images
	log.Printf("Rendered %d preview image(s)", len(images))
	return nil
}

// Export builds the downloadable bundle. Empty title/description/tags fall
// back to the generated package values.
func (r *Runner) Export(title, description, tagsStr string) ([]byte, error) {
	if !r.Session.HasPackage() {
		return nil, fmt.Errorf("%w: generate a package first", ErrInvalidInput)
	}
	pkg := r.Session.Package
	if title == "" {
		title = pkg.Title
	}
	if description == "" {
		description = pkg.Description
	}
	if tagsStr == "" {
		tagsStr = strings.Join(pkg.Tags, ", ")
	}

	data, err := r.Bundler.Build(
		r.Session.FinalScript(),
		title,
		description,
		tagsStr,
		pkg.VisualIdeas,
		pkg.OnscreenText,
		r.Session.Voiceover,
	)
	if err != nil {
		return nil, err
	}
	log.Printf("Export bundle built (%d bytes, voiceover included: %t)",
		len(data), r.Session.HasVoiceover())
	return data, nil
}
