package navigator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runlog/internal/app/severity"
	"runlog/internal/config/logger"
)

func newTestNavigator(capacity int) Navigator {
	return New(capacity, logger.Nop())
}

func Test_New(t *testing.T) {
	nav := newTestNavigator(0)

	snap := nav.Snapshot()
	assert.Equal(t, Idle, snap.State)
	assert.False(t, snap.HasUnread)
	assert.False(t, snap.Expanded)
	assert.Equal(t, 0, snap.Len)
	assert.Equal(t, Latest{}, snap.Latest)
}

func Test_CurrentView_EmptyIsNone(t *testing.T) {
	nav := newTestNavigator(0)

	assert.Equal(t, View{Kind: ViewNone}, nav.CurrentView())
}

func Test_CurrentView_Idempotent(t *testing.T) {
	nav := newTestNavigator(0)
	nav.Append(severity.Error, "a", "trace a")
	nav.Append(severity.Exception, "b", "trace b")

	first := nav.CurrentView()
	assert.Equal(t, first, nav.CurrentView())
	assert.Equal(t, first, nav.CurrentView())

	require.True(t, nav.Activate())

	detail := nav.CurrentView()
	assert.Equal(t, detail, nav.CurrentView())
	assert.Equal(t, 0, nav.Snapshot().UnreadIndex)
}

func Test_Append_FirstEntryBecomesUnread(t *testing.T) {
	nav := newTestNavigator(0)

	entry := nav.Append(severity.Error, "boom", "stack")
	assert.Equal(t, uint64(0), entry.Seq)
	assert.False(t, entry.Time.IsZero())

	snap := nav.Snapshot()
	assert.Equal(t, Compact, snap.State)
	assert.True(t, snap.HasUnread)
	assert.Equal(t, 0, snap.UnreadIndex)

	view := nav.CurrentView()
	assert.Equal(t, ViewCompact, view.Kind)
	assert.Equal(t, severity.Error, view.Severity)
	assert.Equal(t, "boom", view.Message)
	assert.Empty(t, view.Detail)
	assert.Equal(t, 1, view.Unread)
	assert.True(t, view.Activatable())
}

func Test_Append_PendingPointerNeverMoves(t *testing.T) {
	nav := newTestNavigator(0)

	for i := 0; i < 10; i++ {
		nav.Append(severity.Error, fmt.Sprintf("m%d", i), "")

		snap := nav.Snapshot()
		assert.Equal(t, 0, snap.UnreadIndex)
		assert.Equal(t, fmt.Sprintf("m%d", i), snap.Latest.Message, "latest tracks the newest entry")
	}

	assert.Equal(t, 10, nav.CurrentView().Unread)
}

func Test_Append_AfterCaughtUpMarksNewEntry(t *testing.T) {
	nav := newTestNavigator(0)

	nav.Append(severity.Error, "a", "")
	require.True(t, nav.Acknowledge())
	assert.False(t, nav.Snapshot().HasUnread)

	nav.Append(severity.Error, "b", "")

	snap := nav.Snapshot()
	assert.True(t, snap.HasUnread)
	assert.Equal(t, 1, snap.UnreadIndex)
}

func Test_Activate_CompactExpandsToUnreadEntry(t *testing.T) {
	nav := newTestNavigator(0)
	nav.Append(severity.Error, "oldest", "trace 1")
	nav.Append(severity.Warning, "newest", "trace 2")

	banner := nav.CurrentView()
	assert.Equal(t, "newest", banner.Message, "banner shows the latest entry")

	require.True(t, nav.Activate())

	view := nav.CurrentView()
	assert.Equal(t, ViewDetail, view.Kind)
	assert.Equal(t, "oldest", view.Message, "detail shows the oldest unread entry")
	assert.Equal(t, "trace 1", view.Detail)
	assert.Equal(t, severity.Error, view.Severity)
	assert.Equal(t, 1, view.Position)
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, 2, view.Unread)
}

func Test_Activate_ExpandedAdvancesThenCollapses(t *testing.T) {
	nav := newTestNavigator(0)
	nav.Append(severity.Error, "a", "")
	nav.Append(severity.Error, "b", "")
	nav.Append(severity.Error, "c", "")

	require.True(t, nav.Activate())
	assert.Equal(t, "a", nav.CurrentView().Message)

	require.True(t, nav.Activate())
	view := nav.CurrentView()
	assert.Equal(t, ViewDetail, view.Kind, "remains expanded while backlog remains")
	assert.Equal(t, "b", view.Message)
	assert.Equal(t, 2, view.Position)

	require.True(t, nav.Activate())
	assert.Equal(t, "c", nav.CurrentView().Message)

	require.True(t, nav.Activate())

	snap := nav.Snapshot()
	assert.False(t, snap.HasUnread)
	assert.False(t, snap.Expanded)
	assert.Equal(t, Compact, snap.State)

	view = nav.CurrentView()
	assert.Equal(t, ViewCompact, view.Kind)
	assert.Equal(t, "c", view.Message)
	assert.Equal(t, 0, view.Unread)
	assert.False(t, view.Activatable())
}

func Test_Activate_InertWhenCaughtUp(t *testing.T) {
	nav := newTestNavigator(0)
	nav.Append(severity.Error, "a", "")
	require.True(t, nav.Acknowledge())

	assert.False(t, nav.Activate())
	assert.Equal(t, Compact, nav.Snapshot().State)
}

func Test_Activate_IdleIsInert(t *testing.T) {
	nav := newTestNavigator(0)

	assert.False(t, nav.Activate())
	assert.False(t, nav.Acknowledge())
	assert.Equal(t, Idle, nav.Snapshot().State)
}

func Test_Acknowledge_LastEntryResetsPointer(t *testing.T) {
	nav := newTestNavigator(0)
	nav.Append(severity.Exception, "only", "")
	require.True(t, nav.Activate())

	require.True(t, nav.Acknowledge())

	snap := nav.Snapshot()
	assert.False(t, snap.HasUnread)
	assert.Equal(t, ViewCompact, nav.CurrentView().Kind)
	assert.Equal(t, 1, snap.Len, "acknowledgment never removes entries")
}

func Test_Capture_WhileExpandedKeepsPointer(t *testing.T) {
	nav := newTestNavigator(0)
	nav.Append(severity.Error, "a", "")
	require.True(t, nav.Activate())

	nav.Append(severity.Error, "b", "")

	view := nav.CurrentView()
	assert.Equal(t, ViewDetail, view.Kind)
	assert.Equal(t, "a", view.Message)
	assert.Equal(t, 2, view.Unread)

	require.True(t, nav.Acknowledge())
	assert.Equal(t, "b", nav.CurrentView().Message)
}

func Test_EmptyMessage_SuppressesBanner(t *testing.T) {
	nav := newTestNavigator(0)
	nav.Append(severity.Error, "", "detail only")

	assert.Equal(t, ViewNone, nav.CurrentView().Kind)

	require.True(t, nav.Activate(), "the pending entry can still be expanded")

	view := nav.CurrentView()
	assert.Equal(t, ViewDetail, view.Kind)
	assert.Equal(t, "detail only", view.Detail)
}

func Test_Bounded_EvictionMovesPointerToOldestRetained(t *testing.T) {
	nav := newTestNavigator(3)

	for _, msg := range []string{"a", "b", "c", "d", "e"} {
		nav.Append(severity.Error, msg, "")
	}

	snap := nav.Snapshot()
	assert.Equal(t, 3, snap.Len)
	assert.True(t, snap.HasUnread)
	assert.Equal(t, uint64(2), snap.UnreadSeq)
	assert.Equal(t, 0, snap.UnreadIndex)

	require.True(t, nav.Activate())
	assert.Equal(t, "c", nav.CurrentView().Message)
	assert.Equal(t, 3, nav.CurrentView().Unread)
}

func Test_Bounded_EvictionKeepsAcknowledgedProgress(t *testing.T) {
	nav := newTestNavigator(3)

	nav.Append(severity.Error, "a", "")
	nav.Append(severity.Error, "b", "")
	nav.Append(severity.Error, "c", "")
	require.True(t, nav.Activate())
	require.True(t, nav.Acknowledge())
	require.True(t, nav.Acknowledge())

	nav.Append(severity.Error, "d", "")

	view := nav.CurrentView()
	assert.Equal(t, "c", view.Message)
	assert.Equal(t, 2, view.Position)
	assert.Equal(t, 2, view.Unread)
}

func Test_Scenario_MaskedSequence(t *testing.T) {
	nav := newTestNavigator(0)
	mask := severity.NewMask(severity.Error, severity.Exception)

	for _, e := range []struct {
		sev severity.Severity
		msg string
	}{
		{severity.Info, "a"},
		{severity.Error, "b"},
		{severity.Warning, "c"},
		{severity.Error, "d"},
	} {
		if mask.Contains(e.sev) {
			nav.Append(e.sev, e.msg, "")
		}
	}

	entries := nav.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Message)
	assert.Equal(t, "d", entries[1].Message)

	snap := nav.Snapshot()
	assert.Equal(t, 0, snap.UnreadIndex)
	assert.Equal(t, Latest{Severity: severity.Error, Message: "d"}, snap.Latest)

	require.True(t, nav.Acknowledge())
	assert.Equal(t, 1, nav.Snapshot().UnreadIndex)

	require.True(t, nav.Acknowledge())
	assert.False(t, nav.Snapshot().HasUnread)
	assert.Equal(t, ViewCompact, nav.CurrentView().Kind)
}

func Test_Kind_String(t *testing.T) {
	assert.Equal(t, "none", ViewNone.String())
	assert.Equal(t, "compact", ViewCompact.String())
	assert.Equal(t, "detail", ViewDetail.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
