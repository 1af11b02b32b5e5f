package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"shortstudio/studio"
)

// State represents the application state machine
type State string

const (
	StateIdle       State = "idle"
	StateFetching   State = "fetching"
	StateGenerating State = "generating"
	StateVoicing    State = "voicing"
	StateRendering  State = "rendering"
	StateExporting  State = "exporting"
	StateError      State = "error"
)

// Source describes where the article comes from; exactly one field is set.
type Source struct {
	URL  string
	Text string
	Feed string
}

// Model drives the pipeline runner from the keyboard, one key per stage.
type Model struct {
	Runner *studio.Runner

	Source    Source
	TopicHint string
	VoiceName string
	OutPath   string

	State      State
	Logs       []string
	ExportPath string
	Err        error
}

// NewModel creates a TUI model around an assembled runner.
func NewModel(runner *studio.Runner, src Source, topicHint, voiceName, outPath string) Model {
	return Model{
		Runner:    runner,
		Source:    src,
		TopicHint: topicHint,
		VoiceName: voiceName,
		OutPath:   outPath,
		State:     StateIdle,
		Logs:      make([]string, 0),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// AddLog appends a line to the activity log, keeping the last 10 entries.
func (m Model) AddLog(message string) Model {
	m.Logs = append(m.Logs, message)
	if len(m.Logs) > 10 {
		m.Logs = m.Logs[len(m.Logs)-10:]
	}
	return m
}
