package note

// ROSCategory groups symptom keys under a body-system header. Category and
// key order are fixed; the ROS formatter renders them exactly in this order.
type ROSCategory struct {
	Name string
	Keys []string
}

// ROSCategories is the closed Review of Systems vocabulary: 12 body-system
// categories, 123 symptom keys. A symptom outside this set is a validation
// failure, never silently dropped.
var ROSCategories = []ROSCategory{
	{"Systemic", []string{
		"fever", "chills", "night_sweats", "fatigue", "somnolence", "weight_loss",
		"decreased_appetite", "consciousness_disturbance", "diffuse_arthralgias_myalgias",
		"heat_cold_intolerance", "thirsty", "general_edema", "insomnia",
	}},
	{"Head/Eyes", []string{
		"headache", "dizziness", "vertigo", "photophobia", "diplopia", "visual_field_defect",
		"blurred_vision", "ocular_pain", "eye_redness", "dry_eye", "excess_tearing",
		"alopecia", "head_trauma", "cataracts", "glaucoma",
	}},
	{"Ears/Nose", []string{
		"hearing_impairment", "tinnitus", "otalgia", "otorrhea", "nasal_congestion",
		"rhinorrhea", "epistaxis", "anosmia",
	}},
	{"Mouth/Throat", []string{
		"oral_ulcer", "gum_bleeding", "dry_mouth", "dental_problems", "sore_throat",
		"dysphagia", "odynophagia", "hoarseness",
	}},
	{"Cardiovascular/Respiratory", []string{
		"cough", "sputum", "hemoptysis", "wheezes", "dyspnea", "chest_tightness",
		"orthopnea", "paroxysmal_nocturnal_dyspnea", "syncope", "palpitation",
		"intermittent_claudication",
	}},
	{"Gastrointestinal", []string{
		"anorexia", "nausea", "vomiting_bilious_feculent", "hematemesis",
		"heartburn_acid_regurgitation", "belching", "hiccup", "abdominal_pain",
		"diarrhea", "constipation", "bloody_stool", "clay_colored_stool",
		"change_of_bowel_habit", "tenesmus", "flatulence",
	}},
	{"Genitourinary", []string{
		"urinary_frequency", "urgency", "dysuria", "incontinence", "nocturia",
		"polyuria", "oliguria", "small_stream_of_urine", "hesitancy", "cloudy_urine",
		"hematuria", "incomplete_voiding", "urinary_retention", "flank_pain",
		"impotence", "abnormal_sexual_exposure",
	}},
	{"Gynecological", []string{"abnormal_menstruation"}},
	{"Skin/Hematological", []string{
		"rash", "pruritus", "dryness", "jaundice", "color_changes", "moles", "plaque",
		"ulcers", "hair_loss", "hirsutism", "telangiectasia", "petechiae",
		"ecchymoses", "purpura",
	}},
	{"Musculoskeletal", []string{
		"arthralgia", "myalgia", "back_pain", "bone_pain", "joint_stiffness",
		"cramps", "fractures",
	}},
	{"Neurological", []string{
		"numbness", "paresis_plegia", "convulsion", "paresthesia", "allodynia",
		"resting_tremor", "gait_disturbance",
	}},
	{"Psychiatric", []string{
		"insomnia_psychiatric", "memory_loss", "anxiety", "panic", "hallucination",
		"delusion", "depression", "suicidality",
	}},
}

// PEKeys is the closed Physical Exam finding vocabulary. It includes "gcs",
// which is accepted from the model but folded into the consciousness line
// rather than given its own rendered slot.
var PEKeys = []string{
	"consciousness", "vital_signs",

	"eye_conjunctiva", "eye_sclera", "eye_light_reflex", "neck_supple", "neck_lap",
	"neck_jugular_vein", "neck_goiter",

	"gcs", "cranial_nerves", "motor_strength", "motor_tone", "sensation", "gait",

	"chest_expansion", "chest_deformity", "breath_sounds",

	"heart_rhythm", "heart_murmur",

	"abdomen_soft_flat", "abdomen_tenderness", "abdomen_rebounding", "abdomen_shifting_dullness",
	"abdomen_mcburney", "abdomen_roving", "bowel_sound", "liver_spleen", "op_scar",

	"cv_angle_tenderness",

	"extremities_rom",
}

var (
	rosKeySet = buildKeySet()
	peKeySet  = func() map[string]struct{} {
		m := make(map[string]struct{}, len(PEKeys))
		for _, k := range PEKeys {
			m[k] = struct{}{}
		}
		return m
	}()
)

func buildKeySet() map[string]struct{} {
	m := make(map[string]struct{})
	for _, cat := range ROSCategories {
		for _, k := range cat.Keys {
			m[k] = struct{}{}
		}
	}
	return m
}

// IsROSKey reports whether key is in the ROS symptom vocabulary.
func IsROSKey(key string) bool {
	_, ok := rosKeySet[key]
	return ok
}

// IsPEKey reports whether key is in the Physical Exam finding vocabulary.
func IsPEKey(key string) bool {
	_, ok := peKeySet[key]
	return ok
}

// ROSKeys returns all symptom keys in category order.
func ROSKeys() []string {
	var keys []string
	for _, cat := range ROSCategories {
		keys = append(keys, cat.Keys...)
	}
	return keys
}
