package severity

// Style is a display-style tag resolved from a severity
type Style int

const (
	StyleInfo Style = iota
	StyleWarning
	StyleError
)

// StyleOf maps a severity to the style it is drawn with
func StyleOf(s Severity) Style {
	switch s {
	case Error, Assert, Exception:
		return StyleError
	case Warning:
		return StyleWarning
	default:
		return StyleInfo
	}
}

// String returns the name of the style tag
func (s Style) String() string {
	switch s {
	case StyleWarning:
		return "warning"
	case StyleError:
		return "error"
	default:
		return "info"
	}
}
