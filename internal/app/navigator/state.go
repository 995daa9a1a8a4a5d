package navigator

import (
	"context"

	"github.com/looplab/fsm"

	"runlog/internal/config/logger"
)

// FSM states
const (
	Idle     = "idle"
	Compact  = "compact"
	Expanded = "expanded"
)

// FSM events
const (
	Capture  = "capture"
	Expand   = "expand"
	Collapse = "collapse"
)

// newDisplayFSM creates the state machine driving compact and expanded display
func newDisplayFSM(log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: Capture, Src: []string{Idle}, Dst: Compact},
			{Name: Expand, Src: []string{Compact}, Dst: Expanded},
			{Name: Collapse, Src: []string{Expanded}, Dst: Compact},
		},
		fsm.Callbacks{
			"after_event": func(_ context.Context, e *fsm.Event) {
				log.Debug().Msgf("STATE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)
}

// fire triggers an event if the current state allows it
func fire(machine *fsm.FSM, event string) bool {
	if !machine.Can(event) {
		return false
	}

	return machine.Event(context.Background(), event) == nil
}
