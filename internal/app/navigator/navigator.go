//go:generate mockgen -source=navigator.go -destination=navigator_mock.go -package=navigator
package navigator

import (
	"sync"
	"time"

	"github.com/looplab/fsm"

	"runlog/internal/app/logbuf"
	"runlog/internal/app/severity"
	"runlog/internal/config/logger"
)

// Latest is the cached severity and message of the most recent accepted entry
type Latest struct {
	Severity severity.Severity
	Message  string
}

// Snapshot is a consistent copy of the navigation state
type Snapshot struct {
	State     string
	HasUnread bool
	// UnreadSeq is the sequence number of the oldest unacknowledged entry
	UnreadSeq uint64
	// UnreadIndex is the position of that entry among retained entries
	UnreadIndex int
	Expanded    bool
	Latest      Latest
	Len         int
}

// Navigator owns the log buffer and the unread cursor
type Navigator interface {
	// Append stores an accepted entry and marks it unread when nothing is pending
	Append(sev severity.Severity, message, detail string) logbuf.Entry
	// CurrentView returns what should be drawn; it has no side effects
	CurrentView() View
	// Activate expands a compact banner or acknowledges a detail view
	Activate() bool
	// Acknowledge advances the unread cursor past the current entry
	Acknowledge() bool
	// Snapshot returns a consistent copy of the navigation state
	Snapshot() Snapshot
	// Entries returns the retained entries in arrival order
	Entries() []logbuf.Entry
}

type navigator struct {
	mu        sync.RWMutex
	buffer    *logbuf.Buffer
	machine   *fsm.FSM
	hasUnread bool
	unread    uint64
	latest    Latest
	log       logger.Logger
}

// New creates a navigator over a buffer of the given capacity (0 = unbounded)
func New(capacity int, log logger.Logger) Navigator {
	log = log.WithComponent("NAV")

	return &navigator{
		buffer:  logbuf.New(capacity),
		machine: newDisplayFSM(log),
		log:     log,
	}
}

func (n *navigator) Append(sev severity.Severity, message, detail string) logbuf.Entry {
	n.mu.Lock()
	defer n.mu.Unlock()

	entry, evicted := n.buffer.Append(logbuf.Entry{
		Time:     time.Now(),
		Severity: sev,
		Message:  message,
		Detail:   detail,
	})

	if !n.hasUnread {
		n.hasUnread = true
		n.unread = entry.Seq
	} else if evicted && n.unread < n.buffer.First() {
		n.unread = n.buffer.First()
	}

	n.latest = Latest{Severity: sev, Message: message}

	fire(n.machine, Capture)

	return entry
}

func (n *navigator) CurrentView() View {
	n.mu.RLock()
	defer n.mu.RUnlock()

	total := n.buffer.Len()

	unread := 0
	if n.hasUnread {
		unread = int(n.buffer.Next() - n.unread)
	}

	if n.machine.Current() == Expanded && n.hasUnread {
		entry, ok := n.buffer.Get(n.unread)
		if ok {
			pos, _ := n.buffer.Position(n.unread)

			return View{
				Kind:     ViewDetail,
				Severity: entry.Severity,
				Message:  entry.Message,
				Detail:   entry.Detail,
				Unread:   unread,
				Position: pos + 1,
				Total:    total,
			}
		}
	}

	if n.latest.Message == "" {
		return View{Kind: ViewNone, Unread: unread, Total: total}
	}

	return View{
		Kind:     ViewCompact,
		Severity: n.latest.Severity,
		Message:  n.latest.Message,
		Unread:   unread,
		Total:    total,
	}
}

func (n *navigator) Activate() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch n.machine.Current() {
	case Compact:
		return n.expand()
	case Expanded:
		return n.acknowledge()
	default:
		return false
	}
}

func (n *navigator) Acknowledge() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.acknowledge()
}

func (n *navigator) Snapshot() Snapshot {
	n.mu.RLock()
	defer n.mu.RUnlock()

	s := Snapshot{
		State:     n.machine.Current(),
		HasUnread: n.hasUnread,
		Expanded:  n.machine.Current() == Expanded,
		Latest:    n.latest,
		Len:       n.buffer.Len(),
	}

	if n.hasUnread {
		s.UnreadSeq = n.unread
		s.UnreadIndex, _ = n.buffer.Position(n.unread)
	}

	return s
}

func (n *navigator) Entries() []logbuf.Entry {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.buffer.Entries()
}

// expand requires a pending unread entry; otherwise the banner is inert
func (n *navigator) expand() bool {
	if !n.hasUnread {
		return false
	}

	return fire(n.machine, Expand)
}

// acknowledge moves the cursor forward and collapses once the backlog is drained
func (n *navigator) acknowledge() bool {
	if !n.hasUnread {
		return false
	}

	n.unread++

	if n.unread >= n.buffer.Next() {
		n.hasUnread = false
		n.unread = 0

		fire(n.machine, Collapse)
	}

	return true
}
