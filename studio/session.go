package studio

import (
	"time"

	"github.com/google/uuid"

	"shortstudio/types"
)

// Session holds all state produced by a single pipeline run. Each stage writes
// exactly one field; downstream stages read earlier fields and nothing else.
// One session has one writer, so no locking is needed.
type Session struct {
	ID        string
	StartedAt time.Time

	// Source stage
	ArticleText string
	SourceURL   string

	// Generation stage
	Package *types.ShortPackage

	// ScriptEdit holds the user's edited script; when set it replaces the
	// generated script everywhere downstream.
	ScriptEdit string

	// Voiceover stage
	VoiceName string
	Voiceover []byte

	// Preview stage
	Previews [][]byte
}

// NewSession creates an empty session with a fresh identifier.
func NewSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}
}

// HasArticle reports whether the source stage has produced article text.
func (s *Session) HasArticle() bool { return s.ArticleText != "" }

// HasPackage reports whether the generation stage has produced a package.
func (s *Session) HasPackage() bool { return s.Package != nil }

// HasVoiceover reports whether voiceover audio exists in this session.
func (s *Session) HasVoiceover() bool { return len(s.Voiceover) > 0 }

// HasPreviews reports whether preview images exist in this session.
func (s *Session) HasPreviews() bool { return len(s.Previews) > 0 }

// FinalScript returns the user-edited script when present, otherwise the
// generated one. Empty when no package has been generated.
func (s *Session) FinalScript() string {
	if s.ScriptEdit != "" {
		return s.ScriptEdit
	}
	if s.Package != nil {
		return s.Package.Script
	}
	return ""
}
