package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"shortstudio/api"
	"shortstudio/article"
	"shortstudio/bundle"
	"shortstudio/config"
	"shortstudio/llm"
	"shortstudio/preview"
	"shortstudio/storage"
	"shortstudio/studio"
	"shortstudio/tts"
	"shortstudio/tui"
	"shortstudio/video"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	urlFlag := flag.String("url", "", "article URL to fetch")
	textPath := flag.String("text", "", "path to a file containing pasted article text")
	feedFlag := flag.String("feed", "", "RSS feed preset (cna, st, hn, tr) or feed URL; the newest entry is used")
	topicHint := flag.String("topic", "", "optional topic hint to bias the generated angle")
	voiceName := flag.String("voice", config.DefaultVoice, "TTS voice name")
	skipVoice := flag.Bool("skip-voiceover", false, "skip the text-to-speech stage")
	outPath := flag.String("out", "short_bundle.zip", "output path for the export bundle")
	videoPath := flag.String("video", "", "also assemble a slideshow mp4 at this path (needs voiceover and previews)")
	serve := flag.Bool("serve", false, "start the HTTP API server instead of running the pipeline")
	tuiMode := flag.Bool("tui", false, "start the interactive TUI instead of running the pipeline")
	flag.Parse()

	runner := newRunner()

	switch {
	case *serve:
		runServer(runner)
	case *tuiMode:
		runTUI(runner, *urlFlag, *textPath, *feedFlag, *topicHint, *voiceName, *outPath)
	default:
		runPipeline(runner, *urlFlag, *textPath, *feedFlag, *topicHint, *voiceName, *skipVoice, *outPath, *videoPath)
	}
}

func newRunner() *studio.Runner {
	return &studio.Runner{
		Source:      article.NewFetcher(),
		Generator:   llm.NewGenerator(),
		Voice:       tts.NewSynthesizer(),
		Previewer:   preview.NewRenderer(preview.DefaultOptions()),
		Bundler:     bundle.NewExporter(),
		MaxPreviews: config.PreviewMaxImages,
		Session:     studio.NewSession(),
	}
}

func runServer(runner *studio.Runner) {
	addr := ":" + config.GetEnvOrDefault(config.PortEnv, "8080")

	r := api.NewRouter(runner)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/source")
	log.Println("  POST /api/generate")
	log.Println("  POST /api/script")
	log.Println("  POST /api/voiceover   GET /api/voiceover")
	log.Println("  POST /api/previews    GET /api/previews/:idx")
	log.Println("  POST /api/export")
	log.Println("  GET  /api/session     POST /api/reset")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runTUI(runner *studio.Runner, url, textPath, feed, topicHint, voiceName, outPath string) {
	src := tui.Source{URL: url, Feed: feed}
	if textPath != "" {
		raw, err := os.ReadFile(textPath)
		if err != nil {
			log.Fatalf("Failed to read article text: %v", err)
		}
		src.Text = string(raw)
	}
	if src.URL == "" && src.Feed == "" && src.Text == "" {
		log.Fatal("Provide -url, -text, or -feed for the TUI source stage")
	}

	m := tui.NewModel(runner, src, topicHint, voiceName, outPath)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}
}

func runPipeline(runner *studio.Runner, url, textPath, feed, topicHint, voiceName string, skipVoice bool, outPath, videoPath string) {
	ctx := context.Background()

	log.Println("=== Shorts Studio Pipeline ===")

	// Stage 1: source
	var err error
	switch {
	case url != "":
		err = runner.LoadURL(ctx, url)
	case feed != "":
		err = runner.LoadFeed(ctx, feed)
	case textPath != "":
		var raw []byte
		raw, err = os.ReadFile(textPath)
		if err == nil {
			err = runner.LoadText(string(raw))
		}
	default:
		log.Fatal("Provide a source: -url, -text, or -feed")
	}
	if err != nil {
		log.Fatalf("Failed to load article: %v", err)
	}

	// Stage 2: package generation
	if err := runner.GeneratePackage(ctx, topicHint); err != nil {
		log.Fatalf("Package generation failed: %v", err)
	}

	// Stage 3: voiceover (independent of previews)
	if skipVoice {
		log.Println("Skipping voiceover stage (-skip-voiceover)")
	} else if err := runner.Voiceover(ctx, voiceName); err != nil {
		if errors.Is(err, studio.ErrConfiguration) {
			log.Printf("TTS not configured: %v", err)
			log.Println("Exporting without voiceover")
		} else {
			log.Fatalf("Voiceover failed: %v", err)
		}
	}

	// Stage 4: previews (independent of voiceover)
	if err := runner.Previews(); err != nil {
		log.Fatalf("Preview rendering failed: %v", err)
	}

	// Stage 5: export
	data, err := runner.Export("", "", "")
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatalf("Failed to write bundle: %v", err)
	}
	log.Printf("Bundle written to %s", outPath)

	// Optional: publish the bundle to S3 if configured
	if publisher := storage.FromEnv(ctx); publisher != nil {
		key, err := publisher.PublishBundle(ctx, runner.Session.ID, data)
		if err != nil {
			log.Printf("S3 publish failed: %v", err)
		} else {
			log.Printf("Bundle published to s3 key %s", key)
		}
	} else {
		log.Println("S3 not configured; skipping publish")
	}

	// Optional: assemble a slideshow video
	if videoPath != "" {
		if !runner.Session.HasVoiceover() {
			log.Println("Skipping video assembly: no voiceover in this session")
		} else if err := video.Assemble(runner.Session.Previews, runner.Session.Voiceover, videoPath); err != nil {
			log.Printf("Video assembly failed: %v", err)
		} else {
			log.Printf("Slideshow video written to %s", videoPath)
		}
	}

	log.Println("=== Pipeline Complete ===")
}
