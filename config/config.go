package config

import (
	"os"
	"strings"
)

// Environment variable names for external service credentials.
const (
	CohereAPIKeyEnv      = "COHERE_API_KEY"
	CohereModelEnv       = "COHERE_MODEL"
	TTSProjectIDEnv      = "GOOGLE_TTS_PROJECT_ID"
	TTSCredentialsEnv    = "GOOGLE_TTS_CREDENTIALS_JSON"
	S3BucketEnv          = "S3_BUCKET"
	S3RegionEnv          = "S3_REGION"
	S3ProfileEnv         = "S3_PROFILE"
	S3PrefixEnv          = "S3_PREFIX"
	S3UsePathStyleEnv    = "S3_USE_PATH_STYLE"
	PortEnv              = "PORT"
)

// CohereAPIKey returns the generative-text service credential, empty if unset.
// Values are resolved from the environment at call time, never cached.
func CohereAPIKey() string {
	return strings.TrimSpace(os.Getenv(CohereAPIKeyEnv))
}

// CohereModel returns the chat model to use, falling back to DefaultModel.
func CohereModel() string {
	if m := strings.TrimSpace(os.Getenv(CohereModelEnv)); m != "" {
		return m
	}
	return DefaultModel
}

// TTSProjectID returns the Google Cloud project used for TTS quota.
func TTSProjectID() string {
	return strings.TrimSpace(os.Getenv(TTSProjectIDEnv))
}

// TTSCredentialsJSON returns the raw service-account credential payload.
func TTSCredentialsJSON() string {
	return strings.TrimSpace(os.Getenv(TTSCredentialsEnv))
}

// FeedPresets maps friendly names to RSS feed URLs
var FeedPresets = map[string]string{
	"cna": "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml",
	"st":  "https://www.straitstimes.com/news/singapore/rss.xml",
	"hn":  "https://hnrss.org/newest",
	"tr":  "https://www.technologyreview.com/feed/",
}

// ResolveFeedURL resolves a feed identifier to a URL
// If the input is a preset name, returns the corresponding URL
// Otherwise, returns the input as-is (assuming it's a direct URL)
func ResolveFeedURL(feedInput string) string {
	if url, exists := FeedPresets[feedInput]; exists {
		return url
	}
	return feedInput
}

// GetEnvOrDefault returns the environment value for key, or defaultVal if empty.
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
