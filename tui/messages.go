package tui

// Messages for the tea program, one per completed pipeline stage

// SourceLoadedMsg is sent when the article source stage finishes
type SourceLoadedMsg struct {
	Chars int
	Err   error
}

// PackageGeneratedMsg is sent when the generation stage finishes
type PackageGeneratedMsg struct {
	VisualIdeas int
	Err         error
}

// VoiceoverDoneMsg is sent when the synthesis stage finishes
type VoiceoverDoneMsg struct {
	Bytes int
	Err   error
}

// PreviewsDoneMsg is sent when the preview stage finishes
type PreviewsDoneMsg struct {
	Count int
	Err   error
}

// ExportDoneMsg is sent when the bundle has been written to disk
type ExportDoneMsg struct {
	Path string
	Err  error
}
