package types

import "fmt"

// Complexity represents the delivery complexity tier of an opportunity.
// The empty value means the tier is unknown and contributes nothing to
// scoring.
type Complexity string

const (
	ComplexityUnset  Complexity = ""
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// AllComplexities returns all valid non-empty complexity tiers
func AllComplexities() []Complexity {
	return []Complexity{
		ComplexityLow,
		ComplexityMedium,
		ComplexityHigh,
	}
}

// IsValid checks if the complexity tier is valid. The unset value is valid.
func (c Complexity) IsValid() bool {
	switch c {
	case ComplexityUnset,
		ComplexityLow,
		ComplexityMedium,
		ComplexityHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the complexity tier
func (c Complexity) String() string {
	return string(c)
}

// ParseComplexity parses a string into a Complexity
func ParseComplexity(s string) (Complexity, error) {
	c := Complexity(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid complexity tier: %s", s)
	}
	return c, nil
}
