package note

import (
	"strings"
	"testing"
)

func TestDecodeHistory(t *testing.T) {
	raw := `{
		"underlying": ["Hypertension"],
		"present_illness": "Fever for 3 days.",
		"allergy": [],
		"current_medication": ["Amlodipine 5mg QD"],
		"past_surgical_history": [],
		"family_history": [],
		"social_history": {"cigarette": "1 pack per day", "alcohol": null,
			"betel_nuts": null, "travel_history": null, "occupation": null,
			"contact_history": null, "cluster": null}
	}`

	h, err := DecodeHistory([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeHistory() error = %v", err)
	}
	if h.PresentIllness != "Fever for 3 days." {
		t.Errorf("PresentIllness = %q", h.PresentIllness)
	}
	if h.SocialHistory == nil || h.SocialHistory.Cigarette == nil || *h.SocialHistory.Cigarette != "1 pack per day" {
		t.Error("social history not decoded")
	}
}

func TestDecodeHistoryMissingPresentIllness(t *testing.T) {
	_, err := DecodeHistory([]byte(`{"underlying": ["HTN"]}`))
	if err == nil {
		t.Fatal("DecodeHistory() accepted a record without present_illness")
	}
	if !strings.Contains(err.Error(), "validate") {
		t.Errorf("error should come from validation, got %v", err)
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	tests := []struct {
		name string
		run  func([]byte) error
		raw  string
	}{
		{"history", func(b []byte) error { _, err := DecodeHistory(b); return err },
			`{"present_illness": "x", "severity": "high"}`},
		{"chief complaint", func(b []byte) error { _, err := DecodeChiefComplaint(b); return err },
			`{"chief_complaint": "Fever for 3 days", "note": "extra"}`},
		{"diagnosis", func(b []byte) error { _, err := DecodeDiagnosis(b); return err },
			`{"active_problem": [], "plan": []}`},
		{"ros", func(b []byte) error { _, err := DecodeROS(b); return err },
			`{"symptoms": [], "descriptions": [], "negatives": []}`},
		{"physical exam", func(b []byte) error { _, err := DecodePhysicalExam(b); return err },
			`{"findings": [], "descriptions": [], "impression": ""}`},
		{"soap plan", func(b []byte) error { _, err := DecodeSOAPPlan(b); return err },
			`{"plan": ["x"], "treatment_goal": [], "subjective": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run([]byte(tt.raw)); err == nil {
				t.Error("unknown field accepted")
			}
		})
	}
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	_, err := DecodeChiefComplaint([]byte(`{"chief_complaint": "Fever"} {"chief_complaint": "again"}`))
	if err == nil {
		t.Fatal("trailing JSON document accepted")
	}
	if !strings.Contains(err.Error(), "trailing data") {
		t.Errorf("error = %v, want trailing data", err)
	}
}

func TestDecodeChiefComplaint(t *testing.T) {
	cc, err := DecodeChiefComplaint([]byte(`{"chief_complaint": "Fever for 3 days"}`))
	if err != nil {
		t.Fatalf("DecodeChiefComplaint() error = %v", err)
	}
	if cc.ChiefComplaint != "Fever for 3 days" {
		t.Errorf("ChiefComplaint = %q", cc.ChiefComplaint)
	}

	if _, err := DecodeChiefComplaint([]byte(`{"chief_complaint": ""}`)); err == nil {
		t.Error("empty chief complaint accepted")
	}
}

func TestDecodeROS(t *testing.T) {
	r, err := DecodeROS([]byte(`{"symptoms": ["fever", "cough"], "descriptions": ["up to 38.5°C"]}`))
	if err != nil {
		t.Fatalf("DecodeROS() error = %v", err)
	}
	if len(r.Symptoms) != 2 {
		t.Errorf("Symptoms = %v", r.Symptoms)
	}
}

func TestDecodeROSRejectsUnknownKey(t *testing.T) {
	_, err := DecodeROS([]byte(`{"symptoms": ["fever", "sadness"], "descriptions": []}`))
	if err == nil {
		t.Fatal("out-of-vocabulary symptom accepted")
	}
	if !strings.Contains(err.Error(), "sadness") {
		t.Errorf("error should name the bad key, got %v", err)
	}
}

func TestDecodeROSRejectsExcessDescriptions(t *testing.T) {
	_, err := DecodeROS([]byte(`{"symptoms": ["fever"], "descriptions": ["a", "b"]}`))
	if err == nil {
		t.Fatal("descriptions longer than symptoms accepted")
	}
}

func TestDecodePhysicalExam(t *testing.T) {
	p, err := DecodePhysicalExam([]byte(`{"findings": ["breath_sounds", "gcs"], "descriptions": ["crackles", "E3V4M5"]}`))
	if err != nil {
		t.Fatalf("DecodePhysicalExam() error = %v", err)
	}
	if len(p.Findings) != 2 {
		t.Errorf("Findings = %v", p.Findings)
	}
}

func TestDecodePhysicalExamRejectsUnknownKey(t *testing.T) {
	_, err := DecodePhysicalExam([]byte(`{"findings": ["left_elbow"], "descriptions": []}`))
	if err == nil {
		t.Fatal("out-of-vocabulary finding accepted")
	}
}

func TestDecodePhysicalExamRejectsExcessDescriptions(t *testing.T) {
	_, err := DecodePhysicalExam([]byte(`{"findings": [], "descriptions": ["stray"]}`))
	if err == nil {
		t.Fatal("descriptions without findings accepted")
	}
}

func TestDecodeSOAPPlan(t *testing.T) {
	sp, err := DecodeSOAPPlan([]byte(`{"plan": ["Start antibiotics"], "treatment_goal": ["Defervescence"]}`))
	if err != nil {
		t.Fatalf("DecodeSOAPPlan() error = %v", err)
	}
	if len(sp.Plan) != 1 || len(sp.TreatmentGoal) != 1 {
		t.Errorf("Plan = %v, TreatmentGoal = %v", sp.Plan, sp.TreatmentGoal)
	}
}

func TestDecodeNonJSON(t *testing.T) {
	if _, err := DecodeHistory([]byte("The patient has a fever.")); err == nil {
		t.Error("prose response accepted as JSON")
	}
}
