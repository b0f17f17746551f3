package aicontent

// Bundle is the three-field text payload produced for a resume subject.
type Bundle struct {
	Summary    string   `json:"summary"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
}
