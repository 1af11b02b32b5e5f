package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("🎬 Shorts Studio"))
	b.WriteString("\n\n")

	b.WriteString(m.stateText())
	b.WriteString("\n\n")

	// Session snapshot
	s := m.Runner.Session
	if s.HasArticle() {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("📄 Article: %d chars", len(s.ArticleText))))
		b.WriteString("\n")
	}
	if s.HasPackage() {
		stats := fmt.Sprintf("📦 Package: %d concepts | %d visual ideas | %d tags",
			len(s.Package.Concepts), len(s.Package.VisualIdeas), len(s.Package.Tags))
		b.WriteString(InfoStyle.Render(stats))
		b.WriteString("\n")
	}
	if s.HasVoiceover() {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("🔊 Voiceover: %d bytes (%s)", len(s.Voiceover), s.VoiceName)))
		b.WriteString("\n")
	}
	if s.HasPreviews() {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("🖼  Previews: %d image(s)", len(s.Previews))))
		b.WriteString("\n")
	}

	// Logs
	if len(m.Logs) > 0 {
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, logMsg := range m.Logs {
			b.WriteString(InfoStyle.Render("   " + logMsg))
			b.WriteString("\n")
		}
	}

	if m.ExportPath != "" {
		b.WriteString("\n")
		b.WriteString(BoxStyle.Render("Bundle ready: " + m.ExportPath))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(TextFooter))
	return b.String()
}

// stateText returns the appropriate state message
func (m Model) stateText() string {
	switch m.State {
	case StateIdle:
		return HighlightStyle.Render("👋 Ready") + "  " + InfoStyle.Render(TextStageKeys)
	case StateFetching:
		return StatusStyle.Render("⏳ Loading source article...")
	case StateGenerating:
		return StatusStyle.Render("⏳ Generating short package...")
	case StateVoicing:
		return StatusStyle.Render("⏳ Synthesizing voiceover...")
	case StateRendering:
		return StatusStyle.Render("⏳ Rendering previews...")
	case StateExporting:
		return StatusStyle.Render("⏳ Building export bundle...")
	case StateError:
		return ErrorStyle.Render(fmt.Sprintf("❌ %v", m.Err))
	}
	return ""
}
