package navigator

import "runlog/internal/app/severity"

// Kind identifies what the renderer should draw
type Kind int

const (
	ViewNone Kind = iota
	ViewCompact
	ViewDetail
)

// String returns the string representation of the view kind
func (k Kind) String() string {
	switch k {
	case ViewNone:
		return "none"
	case ViewCompact:
		return "compact"
	case ViewDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// View is the semantic output polled by the renderer once per frame.
// Compact views carry the latest entry; detail views carry the unread entry.
type View struct {
	Kind     Kind
	Severity severity.Severity
	Message  string
	Detail   string

	// Unread counts entries from the unread pointer to the newest entry
	Unread int
	// Position is the 1-based position of the shown detail entry among retained entries
	Position int
	// Total is the number of retained entries
	Total int
}

// Activatable reports whether activating this view changes state
func (v View) Activatable() bool {
	switch v.Kind {
	case ViewCompact:
		return v.Unread > 0
	case ViewDetail:
		return true
	default:
		return false
	}
}
