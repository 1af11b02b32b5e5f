// Package llm turns normalized article text into a ShortPackage by calling
// the Cohere chat API.
package llm

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"shortstudio/config"
	"shortstudio/studio"
	"shortstudio/types"
)

const preamble = "You are a YouTube Shorts writer for a tech review channel. " +
	"You respond with exactly one valid JSON object and nothing else."

// Generator issues package-generation requests. The API key is resolved from
// the environment on every call, never cached.
type Generator struct {
	httpClient *http.Client
}

// NewGenerator creates a Generator with an HTTP client that forces HTTP/1.1
// to avoid HTTP/2 protocol errors against the Cohere endpoint.
func NewGenerator() *Generator {
	return &Generator{
		httpClient: &http.Client{
			Timeout: config.GenerateTimeout,
			Transport: &http.Transport{
				TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
				ForceAttemptHTTP2: false,
			},
		},
	}
}

// Generate produces a fully-populated ShortPackage from articleText, biased
// by the optional topicHint. Exactly one call, no retries.
func (g *Generator) Generate(ctx context.Context, articleText, topicHint string) (*types.ShortPackage, error) {
	if articleText == "" {
		return nil, fmt.Errorf("%w: article text is required", studio.ErrInvalidInput)
	}

	apiKey := config.CohereAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s is not set", studio.ErrConfiguration, config.CohereAPIKeyEnv)
	}

	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(g.httpClient),
	)

	model := config.CohereModel()
	temperature := 0.3
	pre := preamble

	resp, err := client.Chat(ctx, &cohere.ChatRequest{
		Message:     buildPrompt(articleText, topicHint),
		Model:       &model,
		Preamble:    &pre,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", studio.ErrGeneration, err)
	}

	pkg, err := decodePackage(resp.Text)
	if err != nil {
		return nil, err
	}
	return pkg, nil
}

// buildPrompt assembles the single-request instruction set with the article
// text and the optional topic hint.
func buildPrompt(articleText, topicHint string) string {
	hint := topicHint
	if hint == "" {
		hint = "None provided"
	}

	var b strings.Builder
	b.WriteString("Create a JSON object with keys: summary, concepts, script, onscreen_text, visual_ideas, title, description, tags.\n")
	b.WriteString("Rules:\n")
	b.WriteString("- summary: 1-2 sentences summarizing the source article.\n")
	b.WriteString("- concepts: 2-3 possible short angles/hooks.\n")
	b.WriteString("- script: 30-45 second voiceover, concise, no greetings like 'Hey guys'.\n")
	b.WriteString("- onscreen_text: 3-8 short phrases, a few words each.\n")
	b.WriteString("- visual_ideas: 4-8 prompts for B-roll or AI clips (Sora/Runway/Imagen style).\n")
	b.WriteString("- title: compelling YouTube title.\n")
	b.WriteString("- description: concise video description.\n")
	b.WriteString("- tags: list of keywords.\n")
	b.WriteString("If topic_hint is provided, align the angle accordingly.\n")
	b.WriteString("topic_hint: " + hint + "\n")
	b.WriteString("Article text:\n")
	b.WriteString(articleText)
	b.WriteString("\nReturn only valid JSON with no explanations.")
	return b.String()
}

// decodePackage strips optional markdown fences from the model output and
// coerces the JSON object into a trusted ShortPackage.
func decodePackage(raw string) (*types.ShortPackage, error) {
	body := stripFences(raw)
	pkg, err := types.CoercePackage([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("%w: response was not valid JSON: %w", studio.ErrGeneration, err)
	}
	return pkg, nil
}

// stripFences removes a surrounding ```json ... ``` block if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
