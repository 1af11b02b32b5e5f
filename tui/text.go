package tui

// UI Text Constants
const (
	// Stage key hints
	TextStageKeys = "f: fetch | g: generate | n: voice | v: voiceover | p: previews | e: export"

	// Footer
	TextFooter = "Run stages in order (f → g → v/p → e) | Press 'q' or Ctrl+C to quit"
)
