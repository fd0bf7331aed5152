// Package note defines the structured records for each admission-note
// section, the closed key vocabularies for Review of Systems and Physical
// Exam, strict JSON decoding of model output, and the deterministic
// formatters that turn validated records into clinical display text.
package note

import "strings"

// Section identifies one of the six note sections.
type Section string

const (
	SectionHistory        Section = "history"
	SectionChiefComplaint Section = "chief_complaint"
	SectionDiagnosis      Section = "diagnosis"
	SectionROS            Section = "ros"
	SectionPhysicalExam   Section = "physical_exam"
	SectionSOAP           Section = "soap"
)

// DisplayName returns the human-readable section name used in notices.
func (s Section) DisplayName() string {
	switch s {
	case SectionHistory:
		return "History"
	case SectionChiefComplaint:
		return "Chief Complaint"
	case SectionDiagnosis:
		return "Diagnosis"
	case SectionROS:
		return "Review of Systems"
	case SectionPhysicalExam:
		return "Physical Examination"
	case SectionSOAP:
		return "SOAP Note"
	default:
		return string(s)
	}
}

// SocialHistory holds the seven independently defaultable social-history
// fields. Nil means "not documented" and renders via the default table.
type SocialHistory struct {
	Alcohol        *string `json:"alcohol"`
	BetelNuts      *string `json:"betel_nuts"`
	Cigarette      *string `json:"cigarette"`
	TravelHistory  *string `json:"travel_history"`
	Occupation     *string `json:"occupation"`
	ContactHistory *string `json:"contact_history"`
	Cluster        *string `json:"cluster"`
}

// History is the structured patient history record.
type History struct {
	Underlying          []string       `json:"underlying"`
	PresentIllness      string         `json:"present_illness" validate:"required"`
	Allergy             []string       `json:"allergy"`
	CurrentMedication   []string       `json:"current_medication"`
	PastSurgicalHistory []string       `json:"past_surgical_history"`
	FamilyHistory       []string       `json:"family_history"`
	SocialHistory       *SocialHistory `json:"social_history"`
}

// ChiefComplaint is a single required sentence.
type ChiefComplaint struct {
	ChiefComplaint string `json:"chief_complaint" validate:"required"`
}

// Diagnosis holds active problems and copied underlying conditions.
type Diagnosis struct {
	ActiveProblem []string `json:"active_problem"`
	Underlying    []string `json:"underlying"`
}

// ReviewOfSystems uses paired lists: Descriptions[i] qualifies Symptoms[i].
// Symptom values are restricted to the ROS key vocabulary.
type ReviewOfSystems struct {
	Symptoms     []string `json:"symptoms"`
	Descriptions []string `json:"descriptions"`
}

// PositiveFindings returns each present symptom with its description in
// parentheses when one exists at the same index.
func (r *ReviewOfSystems) PositiveFindings() []string {
	if r == nil || len(r.Symptoms) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.Symptoms))
	for i, sym := range r.Symptoms {
		name := strings.ReplaceAll(sym, "_", " ")
		if i < len(r.Descriptions) && r.Descriptions[i] != "" {
			out = append(out, name+" ("+r.Descriptions[i]+")")
		} else {
			out = append(out, name)
		}
	}
	return out
}

// PhysicalExam uses paired lists: Descriptions[i] describes Findings[i].
// Finding values are restricted to the PE key vocabulary.
type PhysicalExam struct {
	Findings     []string `json:"findings"`
	Descriptions []string `json:"descriptions"`
}

// AbnormalFindings returns "finding: description" lines for the SOAP
// objective section. A finding with no paired description reads "abnormal".
func (p *PhysicalExam) AbnormalFindings() []string {
	if p == nil || len(p.Findings) == 0 {
		return nil
	}
	out := make([]string, 0, len(p.Findings))
	for i, f := range p.Findings {
		name := strings.ReplaceAll(f, "_", " ")
		if i < len(p.Descriptions) && p.Descriptions[i] != "" {
			out = append(out, name+": "+p.Descriptions[i])
		} else {
			out = append(out, name+": abnormal")
		}
	}
	return out
}

// findingMap keys abnormal findings by finding key for slot lookup during
// formatting. A finding past the end of Descriptions maps to "abnormal".
func (p *PhysicalExam) findingMap() map[string]string {
	m := make(map[string]string)
	if p == nil {
		return m
	}
	for i, f := range p.Findings {
		if i < len(p.Descriptions) && p.Descriptions[i] != "" {
			m[f] = p.Descriptions[i]
		} else {
			m[f] = "abnormal"
		}
	}
	return m
}

// SOAPPlan holds the plan and treatment-goal item lists.
type SOAPPlan struct {
	Plan          []string `json:"plan"`
	TreatmentGoal []string `json:"treatment_goal"`
}
