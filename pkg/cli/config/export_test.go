package config

// NewScoringWithPath builds a Scoring config pointing at the given policy
// file, bypassing flag parsing
func NewScoringWithPath(path string) *Scoring {
	return &Scoring{policyPath: path}
}
