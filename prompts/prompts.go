// Package prompts holds the prompt templates for admission-note generation.
// Builders are pure string assembly: deterministic for fixed inputs, with no
// network access and no randomness. Keeping the templates in one place makes
// them easy to tweak without touching the generation pipeline.
package prompts

import (
	"strings"

	"github.com/lazyresident/lazyresident/internal/note"
)

// DefaultPresentIllnessStyle is the default narrative style block for the
// present_illness field. A session may replace it wholesale via the loader
// without touching the rest of the History prompt.
const DefaultPresentIllnessStyle = `Start with: "The [age]-year-old [sex] with [key underlying] was in his/her usual state of health until [time of symptom onset] ago when [symptom] occurred "
Order: symptom onset, description of symptoms & chronology → evaluations/tests → interventions/response → current status/reason for admission.
Reflects the current admission and clearly distinguishes prior vs current data.
End with: "Under the impression of [tentative diagnosis], he/she was admitted for [surgical procedure]/[further workup] on [date]."
Use paragraph breaks to separate major events or phases.
Use absolute dates ` + "`YYYY/MM/DD`" + ` when available; otherwise anchored time phrases ("3 days prior to admission").
Quantify with units (e.g., "Na 114 mmol/L"); name standard scales/classifications (e.g., "CAD-RADS 2.0, P4/HRP").
Expand non-universal abbreviations at first mention.
Document negatives only if explicitly stated (e.g., "denies fever").
`

// HistoryPrompt builds the structured History system prompt. When
// presentIllnessStyle is blank the default style block is used.
func HistoryPrompt(presentIllnessStyle string) string {
	styleBlock := DefaultPresentIllnessStyle
	if s := strings.TrimSpace(presentIllnessStyle); s != "" {
		styleBlock = "\n" + s
	}
	return `
# ROLE
- You are a Medical Scribe working at a teaching hospital and writing a structured patient history for an admission note.

# TASK
- Combine prior records with newly provided admission fragments.
- Write in a clinically neutral, concise NEJM-style voice.
- Base the **present_illness** primarily on **new admission** information; merge prior history only when it clarifies context.
- Do **not** fabricate diagnoses, doses, dates, results, or denials.

# INPUTS (may be incomplete, please link the fragmented words)
- New admission fragments: triage notes, transcript snippets, labs, imaging.
- Prior records: diagnoses, procedures, medications, results, timelines.

# OUTPUT RULES
## **No fabrication** of diagnoses, doses, dates, results, or denials.
## **Style for underlying**
   - List the chronic conditions according to the provided context
   - Directly copy the underlyings if provided.
   - Include treatment status if provided (e.g., "Hypertension, under treatment" or "Cholecystitis, status post LC surgery in 2005" for surgeries.)
   - If explicitly negative or not mentioned: None
## **Style for present_illness**
` + styleBlock + `
## **Style for other fields**
   - **LIST fields**: ` + "`allergy`, `current_medication`, `past_surgical_history`, `family_history`" + `
     - If documented: list items.
     - If explicitly negative or not mentioned: None
   - **SOCIAL HISTORY string fields**: ` + "`alcohol`, `betel_nuts`, `cigarette`, `travel_history`, `occupation`, `contact_history`, `cluster`" + `
     - If documented: factual string.
     - If explicitly negative or not mentioned: None
`
}

// ChiefComplaintPrompt is the system prompt for the chief-complaint section.
const ChiefComplaintPrompt = `
# ROLE
- You are a Medical Scribe generating a structured chief complaint for an admission note.

# TASK
- Generate the chief complaint based on the patient's history.

# OUTPUT RULES
- A concise, one-sentence summary of the patient's main problem, in their own words if possible.
- Capture the single most important reason for the visit.
`

// DiagnosisPrompt is the system prompt for the tentative-diagnosis section.
const DiagnosisPrompt = `
# ROLE
- You are a Medical Scribe generating a structured tentative diagnosis for an admission note.

# TASK
- Generate the tentative diagnosis based on the patient's history and chief complaint.

# OUTPUT RULES
## **Style for underlying**
   - Directly copy underlying disease if provided. Do not make any changes.
## **Style for active_problem**
   - The list of primary diagnoses or problems that require immediate attention or investigation.
   - This is the "impression" or "assessment."
`

// ROSPrompt builds the review-of-systems system prompt with the full symptom
// key vocabulary inlined so the model cannot invent keys.
func ROSPrompt() string {
	return `
# ROLE
- You are a Medical Scribe generating a structured review of symptoms for an admission note.

# TASK
- Generate review of symptoms with detailed descriptions for positive findings only.

# OUTPUT RULES
- **Positive Findings Only**: Only include symptoms that are PRESENT with detailed descriptions.
- **Required Description**: Each positive symptom MUST include clinical details in description field.
- **Use Allowed Keys**: MUST use exact symptom keys from the provided list. Choose the closest one if a symptom is not included in the keys and supplement it with the description.
- **Description Examples**: "mild, for 3 days", "rated 8/10", "worse at night", "intermittent", "voiding every 30 to 60 minutes"
- **Empty Object**: If no positive symptoms are found, return {"symptoms": null}

# SYMPTOM KEYS
You MUST use keys from this list: ` + backtickList(note.ROSKeys()) + `
`
}

// PhysicalExamPrompt builds the physical-exam system prompt with the full
// finding key vocabulary inlined.
func PhysicalExamPrompt() string {
	return `
# ROLE
- You are a Medical Scribe generating a structured physical examination for an admission note.

# TASK
- Generate the physical examination with detailed descriptions for abnormal findings only.

# OUTPUT RULES
- **Abnormal Findings Only**: Only include findings that are ABNORMAL with detailed descriptions.
- **Required Description**: Each abnormal finding MUST include a specific abnormal description in the description field.
- **Use Allowed Keys**: MUST use exact finding keys from the provided list.
- **Description Examples**: "coma for 4 days", "bilateral ronchi", "positive", "E2M4V2", "3/5 on right side"
- **Empty Object**: If no abnormal findings are found, return {"findings": null}

# PE FINDING KEYS
You MUST use keys from this list: ` + backtickList(note.PEKeys) + `
`
}

// SOAPPlanPrompt is the system prompt for the treatment-plan section.
const SOAPPlanPrompt = `
# ROLE
- You are a Medical Scribe generating a structured treatment plan for an admission note.

# TASK
- Based on the provided context, create a concise, structured treatment plan with separate plan and treatment goals.

# OUTPUT RULES
- **plan field**: Create a list of specific, actionable treatment steps. Start each step with a verb.
- **treatment_goal field**: Create a list of desired clinical outcomes. Start each goal with a verb.
- Use standard medical terminology and abbreviations.
- Keep each item concise and direct.
- Do not include numbers - just provide the list items.

# FIELD EXAMPLES
**plan field example:**
["Schedule coronary angiogram on 12/4; explain indications and risks to the patient and family", "Administer aspirin 325 mg PO daily", "Start atorvastatin 40 mg PO daily"]

**treatment_goal field example:**
["Perform exams and procedures with minimal complications", "Maintain stable vital signs", "Prevent angina on exertion post-treatment", "Achieve coronary artery stenosis < 50% after PCI"]
`

// BuildSecondaryPrompt wraps a section's system prompt and the aggregated
// patient context into the uniform template shared by the secondary sections
// (ROS, PE, SOAP).
func BuildSecondaryPrompt(sectionName, context, systemPrompt string) string {
	return `
` + systemPrompt + `

## Patient Context

- Based on the following information, generate the ` + "`" + sectionName + "`" + ` section.

` + context + `
`
}

// TranscriptionInstruction asks for bare transcript text with no commentary.
const TranscriptionInstruction = "Please transcribe this audio file. Provide only the transcribed text without any additional comments or formatting."

func backtickList(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = "`" + k + "`"
	}
	return strings.Join(quoted, ", ")
}
