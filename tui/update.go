package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"shortstudio/config"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case SourceLoadedMsg:
		return m.handleSourceLoaded(msg)
	case PackageGeneratedMsg:
		return m.handlePackageGenerated(msg)
	case VoiceoverDoneMsg:
		return m.handleVoiceoverDone(msg)
	case PreviewsDoneMsg:
		return m.handlePreviewsDone(msg)
	case ExportDoneMsg:
		return m.handleExportDone(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input; one key per pipeline stage
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.State != StateIdle && m.State != StateError {
		// A stage is running; only quitting is allowed
		if s := msg.String(); s == "ctrl+c" || s == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "f", "F":
		m.State = StateFetching
		m = m.AddLog("Loading source article...")
		return m, loadSource(m.Runner, m.Source)
	case "g", "G":
		m.State = StateGenerating
		m = m.AddLog("Generating short package...")
		return m, generatePackage(m.Runner, m.TopicHint)
	case "n", "N":
		m.VoiceName = nextVoice(m.VoiceName)
		m = m.AddLog("Voice set to " + m.VoiceName)
		return m, nil
	case "v", "V":
		m.State = StateVoicing
		m = m.AddLog(fmt.Sprintf("Synthesizing voiceover with %s...", m.VoiceName))
		return m, synthesizeVoiceover(m.Runner, m.VoiceName)
	case "p", "P":
		m.State = StateRendering
		m = m.AddLog("Rendering preview images...")
		return m, renderPreviews(m.Runner)
	case "e", "E":
		m.State = StateExporting
		m = m.AddLog("Building export bundle...")
		return m, exportBundle(m.Runner, m.OutPath)
	}
	return m, nil
}

func (m Model) handleSourceLoaded(msg SourceLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m.fail(msg.Err)
	}
	m.State = StateIdle
	m.Err = nil
	m = m.AddLog(fmt.Sprintf("Article loaded (%d chars)", msg.Chars))
	return m, nil
}

func (m Model) handlePackageGenerated(msg PackageGeneratedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m.fail(msg.Err)
	}
	m.State = StateIdle
	m.Err = nil
	m = m.AddLog(fmt.Sprintf("Short package generated (%d visual ideas)", msg.VisualIdeas))
	return m, nil
}

func (m Model) handleVoiceoverDone(msg VoiceoverDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m.fail(msg.Err)
	}
	m.State = StateIdle
	m.Err = nil
	m = m.AddLog(fmt.Sprintf("Voiceover ready (%d bytes)", msg.Bytes))
	return m, nil
}

func (m Model) handlePreviewsDone(msg PreviewsDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m.fail(msg.Err)
	}
	m.State = StateIdle
	m.Err = nil
	m = m.AddLog(fmt.Sprintf("Rendered %d preview image(s)", msg.Count))
	return m, nil
}

func (m Model) handleExportDone(msg ExportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m.fail(msg.Err)
	}
	m.State = StateIdle
	m.Err = nil
	m.ExportPath = msg.Path
	m = m.AddLog(fmt.Sprintf("Bundle written to %s", msg.Path))
	return m, nil
}

// nextVoice cycles through the offered voice choices; an unknown current
// voice restarts the cycle at the first choice
func nextVoice(current string) string {
	for i, v := range config.VoiceChoices {
		if v == current {
			return config.VoiceChoices[(i+1)%len(config.VoiceChoices)]
		}
	}
	return config.VoiceChoices[0]
}

// fail records a stage error; earlier session state stays intact
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.State = StateError
	m.Err = err
	m = m.AddLog(fmt.Sprintf("Error: %v", err))
	return m, nil
}
