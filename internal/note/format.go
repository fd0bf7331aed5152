package note

import (
	"fmt"
	"strings"
)

// Formatters are pure: no I/O, no randomness, and they never fail. Callers
// must not invoke a formatter when the upstream record is absent; a missing
// record is a generation failure, not an empty note.

// NormalizeList trims each item, drops blanks, and preserves order. It is
// idempotent: normalizing an already normalized list is a no-op.
func NormalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// NormalizeLines splits a newline-delimited string and normalizes the
// resulting lines.
func NormalizeLines(s string) []string {
	if s == "" {
		return nil
	}
	return NormalizeList(strings.Split(s, "\n"))
}

// renderBlock renders a list for inline use after a label colon. An empty
// list renders the empty phrase (which carries its own leading space, giving
// "Label: denied"); otherwise a newline plus one indented line per item.
func renderBlock(items []string, empty string) string {
	lines := NormalizeList(items)
	if len(lines) == 0 {
		return empty
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString("\n    ")
		b.WriteString(line)
	}
	return b.String()
}

// renderHashBlock renders "# "-prefixed lines for Underlying sections.
// Empty input renders nothing so the section stays visually blank.
func renderHashBlock(items []string) string {
	lines := NormalizeList(items)
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString("\n# ")
		b.WriteString(line)
	}
	return b.String()
}

// renderNumbered renders 1-based numbered lines; an empty list renders as
// an empty string.
func renderNumbered(items []string) string {
	lines := NormalizeList(items)
	if len(lines) == 0 {
		return ""
	}
	numbered := make([]string, len(lines))
	for i, line := range lines {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, line)
	}
	return strings.Join(numbered, "\n")
}

// pickOrDefault returns the trimmed value when present and non-empty, else
// the default phrase. Every fillable slot renders something, never blank.
func pickOrDefault(v *string, def string) string {
	if v != nil {
		if s := strings.TrimSpace(*v); s != "" {
			return s
		}
	}
	return def
}

// FormatHistory renders the History record into the fixed admission-note
// layout: hash-bulleted underlying conditions, the present-illness
// narrative, and the six numbered past-medical-history sub-items.
func FormatHistory(h *History) string {
	var social *SocialHistory
	if h.SocialHistory != nil {
		social = h.SocialHistory
	} else {
		social = &SocialHistory{}
	}

	var b strings.Builder
	b.WriteString("[Underlying]")
	b.WriteString(renderHashBlock(h.Underlying))
	b.WriteString("\n\n[Present Illness]\n")
	b.WriteString(strings.TrimSpace(h.PresentIllness))
	b.WriteString("\n\n[Past medical history]\n")
	b.WriteString("1. Systemic diseases: as above-mentioned\n")
	b.WriteString("2. Allergy:" + renderBlock(h.Allergy, emptyDenied) + "\n")
	b.WriteString("3. Current medication:" + renderBlock(h.CurrentMedication, emptyDenied) + "\n")
	b.WriteString("4. Past surgical history:" + renderBlock(h.PastSurgicalHistory, emptyDenied) + "\n")
	b.WriteString("5. Family history:" + renderBlock(h.FamilyHistory, emptyFamilyHistory) + "\n")
	b.WriteString("6. Social history\n")
	for _, field := range socialHistoryDefaults {
		b.WriteString("    - " + field.Label + ": " + pickOrDefault(field.Value(social), field.Default) + "\n")
	}
	return strings.TrimRight(b.String(), " \n")
}

// FormatDiagnosis renders active problems as dash bullets (or the literal
// "None") and underlying conditions as a hash block (or the fixed denial).
func FormatDiagnosis(d *Diagnosis) string {
	active := ": None"
	if problems := NormalizeList(d.ActiveProblem); len(problems) > 0 {
		var b strings.Builder
		for _, p := range problems {
			b.WriteString("\n- ")
			b.WriteString(p)
		}
		active = b.String()
	}

	underlying := renderHashBlock(d.Underlying)
	if underlying == "" {
		underlying = "\nDenied history of underlying disease."
	}

	return "[Active Problems]" + active + "\n\n[Underlying]" + underlying
}

// FormatROS renders the checkbox grid: every vocabulary key appears under
// its body-system category, marked filled when present with its paired
// description in parentheses.
func FormatROS(r *ReviewOfSystems) string {
	// First occurrence wins when a symptom is repeated.
	described := make(map[string]string, len(r.Symptoms))
	present := make(map[string]bool, len(r.Symptoms))
	for i, sym := range r.Symptoms {
		if present[sym] {
			continue
		}
		present[sym] = true
		if i < len(r.Descriptions) {
			described[sym] = r.Descriptions[i]
		}
	}

	var lines []string
	for _, cat := range ROSCategories {
		lines = append(lines, cat.Name+":")
		entries := make([]string, 0, len(cat.Keys))
		for _, key := range cat.Keys {
			name := strings.ReplaceAll(key, "_", " ")
			if present[key] {
				if desc := described[key]; desc != "" {
					entries = append(entries, "■"+name+" ("+desc+")")
				} else {
					entries = append(entries, "■"+name)
				}
			} else {
				entries = append(entries, "□"+name)
			}
		}
		lines = append(lines, strings.Join(entries, ", "))
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// FormatPhysicalExam renders the fixed 9-paragraph exam narrative. Every
// slot falls back to its normal-exam default when the finding key is absent.
func FormatPhysicalExam(p *PhysicalExam) string {
	m := p.findingMap()
	slot := func(key string) string {
		if v, ok := m[key]; ok {
			return v
		}
		return peDefaults[key]
	}

	var b strings.Builder
	b.WriteString("1. Consciousness: " + slot("consciousness") + "\n")
	b.WriteString("2. Vital signs: " + slot("vital_signs") + "\n")
	b.WriteString("3. Head, ear, eye, nose and throat:\n")
	b.WriteString("(1) Eye: Conjunctiva: " + slot("eye_conjunctiva") +
		", Sclera: " + slot("eye_sclera") +
		", Light reflex: " + slot("eye_light_reflex") + ".\n")
	b.WriteString("(2) Neck: " + slot("neck_supple") + ", " + slot("neck_lap") +
		", " + slot("neck_jugular_vein") + ", " + slot("neck_goiter") + ".\n")
	b.WriteString("4. Neurological exam:\n")
	b.WriteString("(1) Cranial nerve examinations: " + slot("cranial_nerves") + "\n")
	b.WriteString("(2) Motor systems: strength " + slot("motor_strength") +
		", tone: " + slot("motor_tone") + ".\n")
	b.WriteString("(3) Sensation: " + slot("sensation") + "\n")
	b.WriteString("(4) Gait: " + slot("gait") + "\n")
	b.WriteString("5. Chest: " + slot("chest_expansion") + " and " + slot("chest_deformity") +
		", breath sounds: " + slot("breath_sounds") + ".\n")
	b.WriteString("6. Heart: " + slot("heart_rhythm") + ", " + slot("heart_murmur") + ".\n")
	b.WriteString("7. Abdomen:\n")
	b.WriteString("(1) " + slot("abdomen_soft_flat") + ", " + slot("abdomen_tenderness") +
		", " + slot("abdomen_rebounding") + ", " + slot("abdomen_shifting_dullness") +
		", " + slot("abdomen_mcburney") + ", " + slot("abdomen_roving") + ".\n")
	b.WriteString("(2) Bowel sound: " + slot("bowel_sound") + "\n")
	b.WriteString("(3) Liver and spleen: " + slot("liver_spleen") + "\n")
	b.WriteString("(4) Previous OP scar: " + slot("op_scar") + "\n")
	b.WriteString("8. Back: " + slot("cv_angle_tenderness") + "\n")
	b.WriteString("9. Extremities: " + slot("extremities_rom"))
	return strings.TrimRight(b.String(), " \n")
}

// FormatSOAPPlan renders numbered plan items followed by an optional
// Treatment Goal numbered sub-list separated by a blank line.
func FormatSOAPPlan(sp *SOAPPlan) string {
	var sections []string
	if plan := renderNumbered(sp.Plan); plan != "" {
		sections = append(sections, plan)
	}
	if goals := renderNumbered(sp.TreatmentGoal); goals != "" {
		sections = append(sections, "", "Treatment Goal:", goals)
	}
	return strings.Join(sections, "\n")
}

// SOAPObjective builds the objective section from the structured Physical
// Exam record when available, falling back to its display text, and to the
// fixed unremarkable phrase when neither holds findings.
func SOAPObjective(pe *PhysicalExam, peText string) string {
	if pe != nil {
		if findings := pe.AbnormalFindings(); len(findings) > 0 {
			return strings.Join(findings, "\n")
		}
		return "Physical examination unremarkable"
	}
	if strings.TrimSpace(peText) != "" {
		return peText
	}
	return "Physical examination unremarkable"
}

// AssembleSOAPNote joins the four capital-letter sections into the final
// SOAP layout.
func AssembleSOAPNote(chiefComplaint, objective, diagnosis, plan string) string {
	s := "S:\n" + chiefComplaint + "\n\nO:\n" + objective + "\n\nA:\n" + diagnosis + "\n\nP:\n" + plan
	return strings.TrimRight(s, " \n")
}
