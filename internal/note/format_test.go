package note

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestNormalizeList(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"drops blanks", []string{"a", "", "   ", "b"}, []string{"a", "b"}},
		{"trims and keeps order", []string{"  z  ", "a "}, []string{"z", "a"}},
		{"idempotent", []string{"z", "a"}, []string{"z", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeList(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeList(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("NormalizeList(%v)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
			again := NormalizeList(got)
			for i := range again {
				if again[i] != got[i] {
					t.Error("NormalizeList is not idempotent")
				}
			}
		})
	}
}

func TestFormatHistoryFull(t *testing.T) {
	h := &History{
		Underlying:          []string{"Type 2 diabetes mellitus, under treatment", "Hypertension"},
		PresentIllness:      "The 68-year-old man was in his usual state of health until 3 days ago when fever occurred.",
		Allergy:             []string{"Penicillin (rash)"},
		CurrentMedication:   []string{"Metformin 500mg BID", "Amlodipine 5mg QD"},
		PastSurgicalHistory: []string{"Appendectomy (2010)"},
		FamilyHistory:       []string{"Father: CAD"},
		SocialHistory: &SocialHistory{
			Cigarette:  strPtr("1 pack per day for 30 years"),
			Occupation: strPtr("taxi driver"),
		},
	}

	want := `[Underlying]
# Type 2 diabetes mellitus, under treatment
# Hypertension

[Present Illness]
The 68-year-old man was in his usual state of health until 3 days ago when fever occurred.

[Past medical history]
1. Systemic diseases: as above-mentioned
2. Allergy:
    Penicillin (rash)
3. Current medication:
    Metformin 500mg BID
    Amlodipine 5mg QD
4. Past surgical history:
    Appendectomy (2010)
5. Family history:
    Father: CAD
6. Social history
    - Alcohol: denied
    - Betel nuts: denied
    - Cigarette: 1 pack per day for 30 years
    - Travel history: denied recent travel history
    - Occupation: taxi driver
    - Contact history: denied
    - Cluster: denied`

	if got := FormatHistory(h); got != want {
		t.Errorf("FormatHistory() =\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatHistoryEmpty(t *testing.T) {
	h := &History{PresentIllness: "Narrative."}

	got := FormatHistory(h)

	if !strings.HasPrefix(got, "[Underlying]\n\n[Present Illness]\nNarrative.") {
		t.Errorf("empty underlying rendered wrong:\n%s", got)
	}
	for _, want := range []string{
		"2. Allergy: denied",
		"3. Current medication: denied",
		"4. Past surgical history: denied",
		"5. Family history: no relevant family history",
		"- Travel history: denied recent travel history",
		"- Occupation: retired",
		"- Cluster: denied",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatHistory() missing %q:\n%s", want, got)
		}
	}
	if strings.HasSuffix(got, "\n") || strings.HasSuffix(got, " ") {
		t.Error("FormatHistory() keeps trailing whitespace")
	}
}

func TestFormatHistoryDeterministic(t *testing.T) {
	h := &History{PresentIllness: "Narrative.", Underlying: []string{"HTN"}}
	if FormatHistory(h) != FormatHistory(h) {
		t.Error("FormatHistory is not deterministic")
	}
}

func TestFormatDiagnosis(t *testing.T) {
	tests := []struct {
		name string
		in   *Diagnosis
		want string
	}{
		{
			name: "full",
			in: &Diagnosis{
				ActiveProblem: []string{"Community-acquired pneumonia", "Hyponatremia"},
				Underlying:    []string{"Type 2 diabetes mellitus"},
			},
			want: "[Active Problems]\n- Community-acquired pneumonia\n- Hyponatremia\n\n[Underlying]\n# Type 2 diabetes mellitus",
		},
		{
			name: "empty",
			in:   &Diagnosis{},
			want: "[Active Problems]: None\n\n[Underlying]\nDenied history of underlying disease.",
		},
		{
			name: "blank items dropped",
			in:   &Diagnosis{ActiveProblem: []string{"  ", ""}, Underlying: []string{" "}},
			want: "[Active Problems]: None\n\n[Underlying]\nDenied history of underlying disease.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDiagnosis(tt.in); got != tt.want {
				t.Errorf("FormatDiagnosis() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestFormatROS(t *testing.T) {
	r := &ReviewOfSystems{
		Symptoms:     []string{"fever", "cough", "fever"},
		Descriptions: []string{"up to 38.5°C", "", "second occurrence ignored"},
	}

	got := FormatROS(r)

	if !strings.Contains(got, "■fever (up to 38.5°C)") {
		t.Errorf("fever entry missing description:\n%s", got)
	}
	if strings.Contains(got, "second occurrence ignored") {
		t.Error("duplicate symptom did not use first occurrence")
	}
	if !strings.Contains(got, "■cough") || strings.Contains(got, "■cough (") {
		t.Error("cough should be checked without parentheses")
	}
	// Every category header appears, in order.
	lastIdx := -1
	for _, cat := range ROSCategories {
		idx := strings.Index(got, cat.Name+":")
		if idx < 0 {
			t.Fatalf("category %q missing", cat.Name)
		}
		if idx < lastIdx {
			t.Fatalf("category %q out of order", cat.Name)
		}
		lastIdx = idx
	}
	// Unchecked keys render with the empty box and spaces for underscores.
	if !strings.Contains(got, "□night sweats") {
		t.Errorf("unchecked entry missing:\n%s", got)
	}
}

func TestFormatROSEmptyChecksEveryBox(t *testing.T) {
	got := FormatROS(&ReviewOfSystems{})

	if strings.Contains(got, "■") {
		t.Error("empty ROS contains a checked box")
	}
	if n := strings.Count(got, "□"); n != len(ROSKeys()) {
		t.Errorf("empty ROS has %d boxes, want %d", n, len(ROSKeys()))
	}
}

func TestFormatPhysicalExamDefaults(t *testing.T) {
	got := FormatPhysicalExam(&PhysicalExam{})

	for _, want := range []string{
		"1. Consciousness: clear and oriented.",
		"2. Vital signs: as above.",
		"(1) Eye: Conjunctiva: not pale, Sclera: anicteric, Light reflex: +/ +.",
		"(2) Neck: supple, no LAP, no jugular vein engorgement, no goiter.",
		"(2) Motor systems: strength 5/5 throughout, tone: within normal limits.",
		"5. Chest: symmetric expansion and no deformity, breath sounds: clear.",
		"6. Heart: regular heart beats, no murmur.",
		"(1) soft and flat, no tenderness, no rebounding pain, no shifting dullness, no McBurney point tenderness, no Roving's sign.",
		"8. Back: no CV angle knocking tenderness.",
		"9. Extremities: free range of motion",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatPhysicalExam() missing %q:\n%s", want, got)
		}
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("trailing newline not trimmed")
	}
}

func TestFormatPhysicalExamOverridesSlot(t *testing.T) {
	p := &PhysicalExam{
		Findings:     []string{"breath_sounds", "abdomen_tenderness"},
		Descriptions: []string{"crackles over right lower lung field"},
	}

	got := FormatPhysicalExam(p)

	if !strings.Contains(got, "breath sounds: crackles over right lower lung field.") {
		t.Errorf("described finding not substituted:\n%s", got)
	}
	// A finding without a paired description renders as "abnormal".
	if !strings.Contains(got, "soft and flat, abnormal, no rebounding pain") {
		t.Errorf("undescribed finding not marked abnormal:\n%s", got)
	}
	// gcs is accepted by the vocabulary but has no rendered slot.
	withGCS := &PhysicalExam{Findings: []string{"gcs"}, Descriptions: []string{"E3V4M5"}}
	if strings.Contains(FormatPhysicalExam(withGCS), "E3V4M5") {
		t.Error("gcs rendered into the exam narrative")
	}
}

func TestFormatSOAPPlan(t *testing.T) {
	tests := []struct {
		name string
		in   *SOAPPlan
		want string
	}{
		{
			name: "plan and goals",
			in: &SOAPPlan{
				Plan:          []string{"Start empiric ceftriaxone", "Follow blood culture"},
				TreatmentGoal: []string{"Defervescence within 72 hours"},
			},
			want: "1. Start empiric ceftriaxone\n2. Follow blood culture\n\nTreatment Goal:\n1. Defervescence within 72 hours",
		},
		{
			name: "plan only",
			in:   &SOAPPlan{Plan: []string{"Observation"}},
			want: "1. Observation",
		},
		{
			name: "empty",
			in:   &SOAPPlan{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSOAPPlan(tt.in); got != tt.want {
				t.Errorf("FormatSOAPPlan() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSOAPObjective(t *testing.T) {
	withFindings := &PhysicalExam{
		Findings:     []string{"breath_sounds"},
		Descriptions: []string{"crackles"},
	}

	tests := []struct {
		name   string
		pe     *PhysicalExam
		peText string
		want   string
	}{
		{"structured findings", withFindings, "full exam text", "breath sounds: crackles"},
		{"structured but normal", &PhysicalExam{}, "full exam text", "Physical examination unremarkable"},
		{"text fallback", nil, "full exam text", "full exam text"},
		{"nothing", nil, "", "Physical examination unremarkable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SOAPObjective(tt.pe, tt.peText); got != tt.want {
				t.Errorf("SOAPObjective() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssembleSOAPNote(t *testing.T) {
	got := AssembleSOAPNote("Fever for 3 days", "breath sounds: crackles", "[Active Problems]\n- CAP", "1. Antibiotics")

	want := "S:\nFever for 3 days\n\nO:\nbreath sounds: crackles\n\nA:\n[Active Problems]\n- CAP\n\nP:\n1. Antibiotics"
	if got != want {
		t.Errorf("AssembleSOAPNote() =\n%s\nwant:\n%s", got, want)
	}
}
