package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"shortstudio/studio"
)

// loadSource creates a command that runs the source stage
func loadSource(runner *studio.Runner, src Source) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		switch {
		case src.URL != "":
			err = runner.LoadURL(ctx, src.URL)
		case src.Feed != "":
			err = runner.LoadFeed(ctx, src.Feed)
		default:
			err = runner.LoadText(src.Text)
		}
		return SourceLoadedMsg{Chars: len(runner.Session.ArticleText), Err: err}
	}
}

// generatePackage creates a command that runs the generation stage
func generatePackage(runner *studio.Runner, topicHint string) tea.Cmd {
	return func() tea.Msg {
		err := runner.GeneratePackage(context.Background(), topicHint)
		count := 0
		if runner.Session.HasPackage() {
			count = len(runner.Session.Package.VisualIdeas)
		}
		return PackageGeneratedMsg{VisualIdeas: count, Err: err}
	}
}

// synthesizeVoiceover creates a command that runs the TTS stage
func synthesizeVoiceover(runner *studio.Runner, voiceName string) tea.Cmd {
	return func() tea.Msg {
		err := runner.Voiceover(context.Background(), voiceName)
		return VoiceoverDoneMsg{Bytes: len(runner.Session.Voiceover), Err: err}
	}
}

// renderPreviews creates a command that runs the preview stage
func renderPreviews(runner *studio.Runner) tea.Cmd {
	return func() tea.Msg {
		err := runner.Previews()
		return PreviewsDoneMsg{Count: len(runner.Session.Previews), Err: err}
	}
}

// exportBundle creates a command that builds the bundle and writes it to disk
func exportBundle(runner *studio.Runner, outPath string) tea.Cmd {
	return func() tea.Msg {
		data, err := runner.Export("", "", "")
		if err != nil {
			return ExportDoneMsg{Err: err}
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return ExportDoneMsg{Err: err}
		}
		return ExportDoneMsg{Path: outPath}
	}
}
