// Package pipeline orchestrates the staged generation of admission-note
// sections. Each stage checks its upstream inputs, assembles a prompt from
// session state, runs one structured generation call and stores the
// formatted result back on the session.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/lazyresident/lazyresident/internal/logger"
	"github.com/lazyresident/lazyresident/internal/note"
	"github.com/lazyresident/lazyresident/internal/session"
	"github.com/lazyresident/lazyresident/llm"
	"github.com/lazyresident/lazyresident/prompts"
	"github.com/lazyresident/lazyresident/types"
)

// StageOrder is the canonical generation order. Running stages in this
// order satisfies every stage's preconditions as soon as its inputs exist.
var StageOrder = []note.Section{
	note.SectionHistory,
	note.SectionChiefComplaint,
	note.SectionDiagnosis,
	note.SectionROS,
	note.SectionPhysicalExam,
	note.SectionSOAP,
}

// sectionDeps lists the upstream sections each stage reads. History is
// absent: it depends on the transcript, not on another section.
var sectionDeps = map[note.Section][]note.Section{
	note.SectionChiefComplaint: {note.SectionHistory},
	note.SectionDiagnosis:      {note.SectionHistory},
	note.SectionROS:            {note.SectionHistory, note.SectionChiefComplaint, note.SectionDiagnosis},
	note.SectionPhysicalExam:   {note.SectionHistory, note.SectionChiefComplaint, note.SectionDiagnosis, note.SectionROS},
	note.SectionSOAP:           {note.SectionHistory, note.SectionDiagnosis},
}

// Generator runs the admission-note stages against an LLM client.
type Generator struct {
	client       *llm.Client
	templatesDir string
}

// New creates a Generator. templatesDir may be empty; it is only consulted
// for prompt overrides.
func New(client *llm.Client, templatesDir string) *Generator {
	return &Generator{client: client, templatesDir: templatesDir}
}

// Missing returns the names of the inputs a stage still lacks, in a fixed
// order. An empty result means the stage may run.
func Missing(s *session.Session, sec note.Section) []string {
	var missing []string
	if sec == note.SectionHistory {
		if strings.TrimSpace(s.Transcript) == "" {
			missing = append(missing, "transcript")
		}
		return missing
	}
	for _, dep := range sectionDeps[sec] {
		if !s.HasSection(dep) {
			missing = append(missing, string(dep))
		}
	}
	return missing
}

// Generate runs a single stage. The session is updated in place with the
// formatted section text; downstream sections are deliberately left
// untouched so edits survive upstream regeneration. The formatted text is
// returned for display.
func (g *Generator) Generate(ctx context.Context, s *session.Session, sec note.Section) (string, error) {
	if missing := Missing(s, sec); len(missing) > 0 {
		return "", &types.PreconditionError{Section: sec.DisplayName(), Missing: missing}
	}

	logger.SetStage(string(sec), g.client.Model())

	var (
		text string
		err  error
	)
	switch sec {
	case note.SectionHistory:
		text, err = g.generateHistory(ctx, s)
	case note.SectionChiefComplaint:
		text, err = g.generateChiefComplaint(ctx, s)
	case note.SectionDiagnosis:
		text, err = g.generateDiagnosis(ctx, s)
	case note.SectionROS:
		text, err = g.generateROS(ctx, s)
	case note.SectionPhysicalExam:
		text, err = g.generatePhysicalExam(ctx, s)
	case note.SectionSOAP:
		text, err = g.generateSOAP(ctx, s)
	default:
		return "", fmt.Errorf("unknown section: %s", sec)
	}
	if err != nil {
		return "", err
	}

	s.SetSectionText(sec, text)
	return text, nil
}

// GenerateAll runs every stage in canonical order, stopping at the first
// failure. It returns the sections that completed.
func (g *Generator) GenerateAll(ctx context.Context, s *session.Session) ([]note.Section, error) {
	var done []note.Section
	for _, sec := range StageOrder {
		if _, err := g.Generate(ctx, s, sec); err != nil {
			return done, err
		}
		done = append(done, sec)
	}
	return done, nil
}

func (g *Generator) generateHistory(ctx context.Context, s *session.Session) (string, error) {
	style := strings.TrimSpace(s.PresentIllnessStyle)
	if style == "" && g.templatesDir != "" {
		loaded, err := prompts.GetPrompt(prompts.KeyPresentIllnessStyle, g.templatesDir)
		if err != nil {
			return "", err
		}
		if loaded != prompts.DefaultPresentIllnessStyle {
			style = loaded
		}
	}

	parts := []string{"Current issue:\n" + s.Transcript}
	if strings.TrimSpace(s.HistoricalRecords) != "" {
		parts = append(parts, "Historical Records:\n"+s.HistoricalRecords)
	}
	prompt := prompts.HistoryPrompt(style) + "\n\n" + strings.Join(parts, "\n\n")

	h, err := llm.GenerateStructured(ctx, g.client, note.SectionHistory, prompt, note.DecodeHistory)
	if err != nil {
		return "", err
	}
	return note.FormatHistory(h), nil
}

func (g *Generator) generateChiefComplaint(ctx context.Context, s *session.Session) (string, error) {
	prompt := prompts.ChiefComplaintPrompt + "\n\nHistory: " + s.History

	cc, err := llm.GenerateStructured(ctx, g.client, note.SectionChiefComplaint, prompt, note.DecodeChiefComplaint)
	if err != nil {
		return "", err
	}
	return cc.ChiefComplaint, nil
}

func (g *Generator) generateDiagnosis(ctx context.Context, s *session.Session) (string, error) {
	prompt := prompts.DiagnosisPrompt + "\n\nHistory: " + s.History

	d, err := llm.GenerateStructured(ctx, g.client, note.SectionDiagnosis, prompt, note.DecodeDiagnosis)
	if err != nil {
		return "", err
	}
	return note.FormatDiagnosis(d), nil
}

// upstreamContext aggregates the shared patient context used by the ROS and
// physical exam stages.
func upstreamContext(s *session.Session) string {
	return "History:\n" + s.History +
		"\n\nChief Complaint:\n" + s.ChiefComplaint +
		"\n\nDiagnosis:\n" + s.Diagnosis
}

func (g *Generator) generateROS(ctx context.Context, s *session.Session) (string, error) {
	prompt := prompts.BuildSecondaryPrompt("ROS", upstreamContext(s), prompts.ROSPrompt())

	r, err := llm.GenerateStructured(ctx, g.client, note.SectionROS, prompt, note.DecodeROS)
	if err != nil {
		return "", err
	}
	return note.FormatROS(r), nil
}

func (g *Generator) generatePhysicalExam(ctx context.Context, s *session.Session) (string, error) {
	context := upstreamContext(s) + "\n\nROS:\n" + s.ROS
	prompt := prompts.BuildSecondaryPrompt("PE", context, prompts.PhysicalExamPrompt())

	pe, err := llm.GenerateStructured(ctx, g.client, note.SectionPhysicalExam, prompt, note.DecodePhysicalExam)
	if err != nil {
		return "", err
	}
	// Keep the structured form: the SOAP objective lists abnormal findings
	// from it rather than re-parsing the display text.
	s.PhysicalExamModel = pe
	return note.FormatPhysicalExam(pe), nil
}

func (g *Generator) generateSOAP(ctx context.Context, s *session.Session) (string, error) {
	context := "History: " + s.History +
		"\nChief Complaint: " + s.ChiefComplaint +
		"\nDiagnosis: " + s.Diagnosis
	prompt := prompts.SOAPPlanPrompt + "\n\nContext:\n" + context

	sp, err := llm.GenerateStructured(ctx, g.client, note.SectionSOAP, prompt, note.DecodeSOAPPlan)
	if err != nil {
		return "", err
	}

	plan := note.FormatSOAPPlan(sp)
	objective := note.SOAPObjective(s.PhysicalExamModel, s.PhysicalExam)
	return note.AssembleSOAPNote(s.ChiefComplaint, objective, s.Diagnosis, plan), nil
}
