package note

// Default phrases are kept in data tables rather than inlined at each call
// site so every fillable slot stays auditable and individually testable.

// List-block empty phrases. Each carries the leading space that produces
// "Label: denied" when rendered inline after a colon.
const (
	emptyDenied        = " denied"
	emptyFamilyHistory = " no relevant family history"
)

// socialHistoryDefaults maps each social-history field label to the phrase
// substituted when the field is absent or blank.
var socialHistoryDefaults = []struct {
	Label   string
	Default string
	Value   func(*SocialHistory) *string
}{
	{"Alcohol", "denied", func(s *SocialHistory) *string { return s.Alcohol }},
	{"Betel nuts", "denied", func(s *SocialHistory) *string { return s.BetelNuts }},
	{"Cigarette", "denied", func(s *SocialHistory) *string { return s.Cigarette }},
	{"Travel history", "denied recent travel history", func(s *SocialHistory) *string { return s.TravelHistory }},
	{"Occupation", "retired", func(s *SocialHistory) *string { return s.Occupation }},
	{"Contact history", "denied", func(s *SocialHistory) *string { return s.ContactHistory }},
	{"Cluster", "denied", func(s *SocialHistory) *string { return s.Cluster }},
}

// peDefaults maps each Physical Exam finding key to its normal-exam phrase,
// substituted whenever the key is absent from the structured record.
var peDefaults = map[string]string{
	"consciousness": "clear and oriented.",
	"vital_signs":   "as above.",

	"eye_conjunctiva":   "not pale",
	"eye_sclera":        "anicteric",
	"eye_light_reflex":  "+/ +",
	"neck_supple":       "supple",
	"neck_lap":          "no LAP",
	"neck_jugular_vein": "no jugular vein engorgement",
	"neck_goiter":       "no goiter",

	"cranial_nerves": "CNII-XII grossly intact.",
	"motor_strength": "5/5 throughout",
	"motor_tone":     "within normal limits",
	"sensation":      "intact to sharp and dull throughout.",
	"gait":           "within normal limits.",

	"chest_expansion": "symmetric expansion",
	"chest_deformity": "no deformity",
	"breath_sounds":   "clear",

	"heart_rhythm": "regular heart beats",
	"heart_murmur": "no murmur",

	"abdomen_soft_flat":         "soft and flat",
	"abdomen_tenderness":        "no tenderness",
	"abdomen_rebounding":        "no rebounding pain",
	"abdomen_shifting_dullness": "no shifting dullness",
	"abdomen_mcburney":          "no McBurney point tenderness",
	"abdomen_roving":            "no Roving's sign",
	"bowel_sound":               "normoactive.",
	"liver_spleen":              "not palpable.",
	"op_scar":                   "no visible op scar.",

	"cv_angle_tenderness": "no CV angle knocking tenderness.",

	"extremities_rom": "free range of motion",
}

// PEDefault returns the normal-exam phrase for a finding key, or an empty
// string for keys with no rendered slot (e.g. gcs).
func PEDefault(key string) string {
	return peDefaults[key]
}
