// Package session persists the working state of a single admission note:
// transcript, historical records, generated section texts and the settings
// that shaped them.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/lazyresident/lazyresident/internal/note"
)

// Session is the working state for one patient encounter. Section texts are
// stored as the final edited strings; the physical exam additionally keeps
// its structured form so the SOAP objective can list abnormal findings.
type Session struct {
	ID        string    `yaml:"id"`
	CreatedAt time.Time `yaml:"createdAt"`
	UpdatedAt time.Time `yaml:"updatedAt"`

	// Model is the per-session model override. Empty means the configured
	// default.
	Model string `yaml:"model,omitempty"`
	// PresentIllnessStyle overrides the narrative style instruction used
	// when generating the history section.
	PresentIllnessStyle string `yaml:"presentIllnessStyle,omitempty"`

	Transcript        string `yaml:"transcript,omitempty"`
	HistoricalRecords string `yaml:"historicalRecords,omitempty"`

	History        string `yaml:"history,omitempty"`
	ChiefComplaint string `yaml:"chiefComplaint,omitempty"`
	Diagnosis      string `yaml:"diagnosis,omitempty"`
	ROS            string `yaml:"ros,omitempty"`
	PhysicalExam   string `yaml:"physicalExam,omitempty"`
	SOAP           string `yaml:"soap,omitempty"`

	PhysicalExamModel *note.PhysicalExam `yaml:"physicalExamModel,omitempty"`
}

// New creates an empty session with a fresh ID.
func New() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SectionText returns the stored text for a section, or "" when the section
// has not been generated yet.
func (s *Session) SectionText(sec note.Section) string {
	switch sec {
	case note.SectionHistory:
		return s.History
	case note.SectionChiefComplaint:
		return s.ChiefComplaint
	case note.SectionDiagnosis:
		return s.Diagnosis
	case note.SectionROS:
		return s.ROS
	case note.SectionPhysicalExam:
		return s.PhysicalExam
	case note.SectionSOAP:
		return s.SOAP
	}
	return ""
}

// SetSectionText stores the text for a section. Regenerating an upstream
// section never clears downstream ones; stale content is the editor's call.
func (s *Session) SetSectionText(sec note.Section, text string) {
	switch sec {
	case note.SectionHistory:
		s.History = text
	case note.SectionChiefComplaint:
		s.ChiefComplaint = text
	case note.SectionDiagnosis:
		s.Diagnosis = text
	case note.SectionROS:
		s.ROS = text
	case note.SectionPhysicalExam:
		s.PhysicalExam = text
	case note.SectionSOAP:
		s.SOAP = text
	}
}

// HasSection reports whether a section holds non-empty text.
func (s *Session) HasSection(sec note.Section) bool {
	return s.SectionText(sec) != ""
}

// Touch updates the modification timestamp.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now().UTC()
}
