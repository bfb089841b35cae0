package types

import "fmt"

// AlertKind represents the kind of an alert
type AlertKind string

const (
	AlertKindDeadline AlertKind = "deadline"
	AlertKindHighFit  AlertKind = "high-fit"

	// AlertKindWatchlist is reserved for manual flagging and is never
	// emitted by the alert generator.
	AlertKindWatchlist AlertKind = "watchlist"
)

// IsValid checks if the alert kind is valid
func (k AlertKind) IsValid() bool {
	switch k {
	case AlertKindDeadline,
		AlertKindHighFit,
		AlertKindWatchlist:
		return true
	default:
		return false
	}
}

// String returns the string representation of the alert kind
func (k AlertKind) String() string {
	return string(k)
}

// Severity represents the severity of an alert
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo,
		SeverityWarning,
		SeverityCritical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}

// ParseSeverity parses a string into a Severity
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}
	return sev, nil
}
