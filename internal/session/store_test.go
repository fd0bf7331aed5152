package session

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/lazyresident/lazyresident/internal/note"
)

func TestLoadMissingFileReturnsFreshSession(t *testing.T) {
	st := NewStore(afero.NewMemMapFs(), "/notes/session.yaml")

	s, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.ID == "" {
		t.Error("fresh session has no ID")
	}
	if s.HasSection(note.SectionHistory) {
		t.Error("fresh session has history text")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	st := NewStore(fs, "/notes/session.yaml")

	s := New()
	s.Transcript = "Patient reports fever for three days."
	s.HistoricalRecords = "2024: appendectomy"
	s.SetSectionText(note.SectionHistory, "[Underlying]\nDenied\n\n[Present Illness]\n...")
	s.PresentIllnessStyle = "Start with the age and sex."
	s.Model = "gemini-2.5-pro"
	s.PhysicalExamModel = &note.PhysicalExam{
		Findings:     []string{"abdomen_tenderness"},
		Descriptions: []string{"RLQ tenderness"},
	}

	if err := st.Save(s); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.ID != s.ID {
		t.Errorf("ID = %q, want %q", got.ID, s.ID)
	}
	if got.Transcript != s.Transcript {
		t.Errorf("Transcript = %q, want %q", got.Transcript, s.Transcript)
	}
	if got.SectionText(note.SectionHistory) != s.History {
		t.Errorf("History = %q, want %q", got.SectionText(note.SectionHistory), s.History)
	}
	if got.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q", got.Model)
	}
	if got.PhysicalExamModel == nil || len(got.PhysicalExamModel.Findings) != 1 {
		t.Errorf("PhysicalExamModel not preserved: %+v", got.PhysicalExamModel)
	}

	// No stray temp file left behind.
	if exists, _ := afero.Exists(fs, "/notes/session.yaml.tmp"); exists {
		t.Error("temp file left after Save")
	}
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/notes/session.yaml", []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewStore(fs, "/notes/session.yaml").Load(); err == nil {
		t.Fatal("Load() accepted corrupt session file")
	}
}

func TestResetDiscardsState(t *testing.T) {
	fs := afero.NewMemMapFs()
	st := NewStore(fs, "/notes/session.yaml")

	s := New()
	s.Transcript = "old transcript"
	if err := st.Save(s); err != nil {
		t.Fatal(err)
	}

	fresh, err := st.Reset()
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if fresh.ID == s.ID {
		t.Error("Reset() kept the old session ID")
	}
	if fresh.Transcript != "" {
		t.Error("Reset() kept the old transcript")
	}

	reloaded, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.ID != fresh.ID {
		t.Errorf("reloaded ID = %q, want %q", reloaded.ID, fresh.ID)
	}
}

func TestSectionTextRoundTrip(t *testing.T) {
	s := New()
	sections := []note.Section{
		note.SectionHistory, note.SectionChiefComplaint, note.SectionDiagnosis,
		note.SectionROS, note.SectionPhysicalExam, note.SectionSOAP,
	}

	for _, sec := range sections {
		if s.HasSection(sec) {
			t.Errorf("new session HasSection(%s) = true", sec)
		}
		s.SetSectionText(sec, "text for "+string(sec))
	}
	for _, sec := range sections {
		want := "text for " + string(sec)
		if got := s.SectionText(sec); got != want {
			t.Errorf("SectionText(%s) = %q, want %q", sec, got, want)
		}
	}
}
