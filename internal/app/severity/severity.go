package severity

import (
	"fmt"
	"strings"

	"runlog/internal/app/errors"
)

// Severity classifies a captured log event
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Assert
	Exception
)

// Preset mask names accepted in configuration
const (
	PresetAll    = "all"
	PresetErrors = "errors"
)

// All lists every defined severity in ascending order
var All = []Severity{Info, Warning, Error, Assert, Exception}

// Valid reports whether s is one of the defined severities
func (s Severity) Valid() bool {
	return s >= Info && s <= Exception
}

// String returns the configuration name of the severity
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Assert:
		return "assert"
	case Exception:
		return "exception"
	default:
		return "unknown"
	}
}

// Parse converts a configuration name into a Severity
func Parse(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info", "log":
		return Info, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	case "assert":
		return Assert, nil
	case "exception":
		return Exception, nil
	default:
		return 0, fmt.Errorf("%w: '%s'", errors.ErrUnknownSeverity, name)
	}
}

// Mask is an immutable set of severities
type Mask uint8

const (
	// MaskAll accepts every severity
	MaskAll = Mask(1<<Info | 1<<Warning | 1<<Error | 1<<Assert | 1<<Exception)
	// MaskErrors accepts error-level events and above
	MaskErrors = Mask(1<<Error | 1<<Assert | 1<<Exception)
	// DefaultMask is used when no severities are configured
	DefaultMask = MaskErrors
)

// NewMask builds a mask from the given severities, ignoring undefined values
func NewMask(severities ...Severity) Mask {
	var m Mask

	for _, s := range severities {
		if s.Valid() {
			m |= 1 << s
		}
	}

	return m
}

// ParseMask builds a mask from configuration names or presets
func ParseMask(names []string) (Mask, error) {
	if len(names) == 0 {
		return DefaultMask, nil
	}

	var m Mask

	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case PresetAll:
			m |= MaskAll
			continue
		case PresetErrors:
			m |= MaskErrors
			continue
		}

		s, err := Parse(name)
		if err != nil {
			return 0, err
		}

		m |= NewMask(s)
	}

	if m == 0 {
		return 0, errors.ErrEmptySeverityMask
	}

	return m, nil
}

// Contains reports whether the mask accepts s; undefined severities never match
func (m Mask) Contains(s Severity) bool {
	if !s.Valid() {
		return false
	}

	return m&(1<<s) != 0
}

// Severities returns the members of the mask in ascending order
func (m Mask) Severities() []Severity {
	result := make([]Severity, 0, len(All))

	for _, s := range All {
		if m.Contains(s) {
			result = append(result, s)
		}
	}

	return result
}

// String returns the comma separated member names
func (m Mask) String() string {
	names := make([]string, 0, len(All))
	for _, s := range m.Severities() {
		names = append(names, s.String())
	}

	return strings.Join(names, ",")
}
