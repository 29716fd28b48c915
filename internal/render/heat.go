package render

// Severity buckets a percentage-like value for display emphasis.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityNominal
	SeverityElevated
	SeverityCritical
)

// String returns a human-readable label for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityNominal:
		return "nominal"
	case SeverityElevated:
		return "elevated"
	case SeverityCritical:
		return "critical"
	default:
		return "none"
	}
}

// Heat classifies a percentage-like value into a severity bucket:
// below 75 nominal, 75 to just under 90 elevated, 90 and above critical.
// Value-generic: the same classification serves CPU load, memory use,
// and temperature.
func Heat(value float64) Severity {
	switch {
	case value < 75:
		return SeverityNominal
	case value < 90:
		return SeverityElevated
	default:
		return SeverityCritical
	}
}
