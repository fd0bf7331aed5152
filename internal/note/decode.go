package note

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a single Validate instance; it caches struct info.
var validate = validator.New()

// decodeStrict unmarshals raw JSON into out, rejecting any field not
// declared on the target record. Over-generation by the model is a known
// failure mode, so unknown fields fail the whole decode; no partial or
// best-effort records are ever produced.
func decodeStrict(raw []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode structured response: %w", err)
	}
	// A second value after the object means the response was not a single
	// JSON document.
	if dec.More() {
		return fmt.Errorf("decode structured response: trailing data after JSON object")
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("validate structured response: %w", err)
	}
	return nil
}

// checkPaired enforces the paired-list invariant: descriptions, when
// present, must not exceed the primary list.
func checkPaired(primary, descriptions []string, primaryName string) error {
	if len(descriptions) > len(primary) {
		return fmt.Errorf("%d descriptions for %d %s", len(descriptions), len(primary), primaryName)
	}
	return nil
}

// DecodeHistory parses and validates a History record.
func DecodeHistory(raw []byte) (*History, error) {
	var h History
	if err := decodeStrict(raw, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// DecodeChiefComplaint parses and validates a ChiefComplaint record.
func DecodeChiefComplaint(raw []byte) (*ChiefComplaint, error) {
	var cc ChiefComplaint
	if err := decodeStrict(raw, &cc); err != nil {
		return nil, err
	}
	return &cc, nil
}

// DecodeDiagnosis parses and validates a Diagnosis record.
func DecodeDiagnosis(raw []byte) (*Diagnosis, error) {
	var d Diagnosis
	if err := decodeStrict(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DecodeROS parses and validates a ReviewOfSystems record, including
// symptom-key vocabulary membership and the paired-list invariant.
func DecodeROS(raw []byte) (*ReviewOfSystems, error) {
	var r ReviewOfSystems
	if err := decodeStrict(raw, &r); err != nil {
		return nil, err
	}
	for _, sym := range r.Symptoms {
		if !IsROSKey(sym) {
			return nil, fmt.Errorf("symptom %q is not in the ROS key vocabulary", sym)
		}
	}
	if err := checkPaired(r.Symptoms, r.Descriptions, "symptoms"); err != nil {
		return nil, err
	}
	return &r, nil
}

// DecodePhysicalExam parses and validates a PhysicalExam record, including
// finding-key vocabulary membership and the paired-list invariant.
func DecodePhysicalExam(raw []byte) (*PhysicalExam, error) {
	var p PhysicalExam
	if err := decodeStrict(raw, &p); err != nil {
		return nil, err
	}
	for _, f := range p.Findings {
		if !IsPEKey(f) {
			return nil, fmt.Errorf("finding %q is not in the PE key vocabulary", f)
		}
	}
	if err := checkPaired(p.Findings, p.Descriptions, "findings"); err != nil {
		return nil, err
	}
	return &p, nil
}

// DecodeSOAPPlan parses and validates a SOAPPlan record.
func DecodeSOAPPlan(raw []byte) (*SOAPPlan, error) {
	var sp SOAPPlan
	if err := decodeStrict(raw, &sp); err != nil {
		return nil, err
	}
	return &sp, nil
}
