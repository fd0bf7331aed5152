package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lazyresident/lazyresident/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestRecordAndRecent(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	runs := []Run{
		{SessionID: "s1", Section: "history", Provider: "gemini", Model: "gemini-2.5-flash", DurationMS: 1200, PromptBytes: 4096, ResponseBytes: 2048, OK: true},
		{SessionID: "s1", Section: "chief_complaint", Provider: "gemini", Model: "gemini-2.5-flash", DurationMS: 400, OK: false, ErrorKind: "validation"},
		{SessionID: "s2", Section: "soap", Provider: "openai", Model: "gpt-4o", DurationMS: 900, OK: true},
	}
	for _, r := range runs {
		if err := st.Record(ctx, r); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	got, err := st.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent() returned %d runs, want 3", len(got))
	}

	// Newest first.
	if got[0].Section != "soap" || got[2].Section != "history" {
		t.Errorf("unexpected order: %s, %s, %s", got[0].Section, got[1].Section, got[2].Section)
	}
	if got[1].ErrorKind != "validation" || got[1].OK {
		t.Errorf("failed run not preserved: %+v", got[1])
	}
	if got[2].PromptBytes != 4096 || got[2].ResponseBytes != 2048 {
		t.Errorf("sizes not preserved: %+v", got[2])
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("created_at not populated")
	}
}

func TestRecentLimit(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		run := Run{SessionID: "s", Section: "ros", Provider: "gemini", Model: "m", OK: true, CreatedAt: time.Now().UTC()}
		if err := st.Record(ctx, run); err != nil {
			t.Fatal(err)
		}
	}

	got, err := st.Recent(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("Recent(2) returned %d runs", len(got))
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not configured", types.ErrNotConfigured, "not_configured"},
		{"provider", &types.ProviderError{Section: "history", Err: errors.New("timeout")}, "provider"},
		{"validation", &types.ValidationError{Section: "ros", Err: errors.New("unknown key")}, "validation"},
		{"precondition", &types.PreconditionError{Section: "soap", Missing: []string{"history"}}, "precondition"},
		{"other", errors.New("disk full"), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorKind(tt.err); got != tt.want {
				t.Errorf("ErrorKind() = %q, want %q", got, tt.want)
			}
		})
	}
}
