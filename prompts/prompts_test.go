package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lazyresident/lazyresident/internal/note"
)

func TestHistoryPromptDefaultStyle(t *testing.T) {
	got := HistoryPrompt("")

	if !strings.Contains(got, "Medical Scribe") {
		t.Error("role block missing")
	}
	if !strings.Contains(got, DefaultPresentIllnessStyle) {
		t.Error("default present-illness style block not embedded")
	}
	if !strings.Contains(got, "`allergy`, `current_medication`, `past_surgical_history`, `family_history`") {
		t.Error("list-field rules missing")
	}
}

func TestHistoryPromptCustomStyle(t *testing.T) {
	style := "Write in strict chronological order with one paragraph per event."

	got := HistoryPrompt(style)

	if !strings.Contains(got, style) {
		t.Error("custom style block not embedded")
	}
	if strings.Contains(got, "Start with: \"The [age]-year-old") {
		t.Error("default style block should be fully replaced")
	}
	// Blank-ish input falls back to the default.
	if !strings.Contains(HistoryPrompt("   \n"), DefaultPresentIllnessStyle) {
		t.Error("whitespace-only style should fall back to the default")
	}
}

func TestROSPromptInlinesFullVocabulary(t *testing.T) {
	got := ROSPrompt()

	for _, key := range note.ROSKeys() {
		if !strings.Contains(got, "`"+key+"`") {
			t.Errorf("symptom key %q missing from prompt", key)
		}
	}
	if !strings.Contains(got, "Positive Findings Only") {
		t.Error("positive-findings rule missing")
	}
}

func TestPhysicalExamPromptInlinesFullVocabulary(t *testing.T) {
	got := PhysicalExamPrompt()

	for _, key := range note.PEKeys {
		if !strings.Contains(got, "`"+key+"`") {
			t.Errorf("finding key %q missing from prompt", key)
		}
	}
	if !strings.Contains(got, "Abnormal Findings Only") {
		t.Error("abnormal-findings rule missing")
	}
}

func TestBuildSecondaryPrompt(t *testing.T) {
	got := BuildSecondaryPrompt("ROS", "History:\nFever for 3 days", "SYSTEM RULES")

	if !strings.Contains(got, "SYSTEM RULES") {
		t.Error("system prompt not embedded")
	}
	if !strings.Contains(got, "generate the `ROS` section") {
		t.Error("section name not embedded")
	}
	if !strings.Contains(got, "History:\nFever for 3 days") {
		t.Error("patient context not embedded")
	}
	idx := strings.Index(got, "SYSTEM RULES")
	if ctxIdx := strings.Index(got, "Patient Context"); ctxIdx < idx {
		t.Error("system prompt should precede the patient context")
	}
}

func TestPromptsDeterministic(t *testing.T) {
	if ROSPrompt() != ROSPrompt() {
		t.Error("ROSPrompt is not deterministic")
	}
	if PhysicalExamPrompt() != PhysicalExamPrompt() {
		t.Error("PhysicalExamPrompt is not deterministic")
	}
	if HistoryPrompt("x") != HistoryPrompt("x") {
		t.Error("HistoryPrompt is not deterministic")
	}
}

func TestGetPromptDefault(t *testing.T) {
	got, err := GetPrompt(KeyPresentIllnessStyle, "")
	if err != nil {
		t.Fatalf("GetPrompt() error = %v", err)
	}
	if got != DefaultPresentIllnessStyle {
		t.Error("blank templates dir should return the embedded default")
	}

	// A configured dir without the override file also falls back.
	got, err = GetPrompt(KeyPresentIllnessStyle, t.TempDir())
	if err != nil {
		t.Fatalf("GetPrompt() error = %v", err)
	}
	if got != DefaultPresentIllnessStyle {
		t.Error("missing override file should return the embedded default")
	}
}

func TestGetPromptFileOverride(t *testing.T) {
	dir := t.TempDir()
	custom := "One paragraph, strictly chronological."
	if err := os.WriteFile(filepath.Join(dir, "present_illness_style.txt"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := GetPrompt(KeyPresentIllnessStyle, dir)
	if err != nil {
		t.Fatalf("GetPrompt() error = %v", err)
	}
	if got != custom {
		t.Errorf("GetPrompt() = %q, want override content", got)
	}
}

func TestGetPromptUnknownKey(t *testing.T) {
	if _, err := GetPrompt(PromptKey("NoSuchPrompt"), ""); err == nil {
		t.Error("unrecognized key accepted")
	}
}
