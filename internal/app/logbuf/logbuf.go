package logbuf

import (
	"time"

	"runlog/internal/app/severity"
)

// Entry is a captured log event; values are never mutated after capture
type Entry struct {
	Seq      uint64
	Time     time.Time
	Severity severity.Severity
	Message  string
	Detail   string
}

// Buffer is an ordered, append-only store of entries addressed by sequence number.
// A zero capacity keeps every entry; a positive capacity evicts the oldest entry once
// full. Sequence numbers start at 0 and are never reused, so an evicted sequence stays
// invalid instead of aliasing a newer entry. Buffer is not safe for concurrent use.
type Buffer struct {
	entries  []Entry // Ring storage when bounded, plain slice otherwise
	head     int     // Physical index of the oldest entry
	count    int     // Number of retained entries
	capacity int     // Maximum retained entries (0 = unbounded)
	first    uint64  // Sequence of the oldest retained entry
	next     uint64  // Sequence assigned to the next append
}

// New creates a buffer with the given capacity (0 = unbounded)
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}

	b := &Buffer{capacity: capacity}
	if capacity > 0 {
		b.entries = make([]Entry, capacity)
	}

	return b
}

// Append stores the entry, assigns its sequence number and returns it.
// The second result reports whether the oldest entry was evicted to make room.
func (b *Buffer) Append(e Entry) (Entry, bool) {
	e.Seq = b.next
	b.next++

	if b.capacity == 0 {
		b.entries = append(b.entries, e)
		b.count++

		return e, false
	}

	tail := (b.head + b.count) % b.capacity

	if b.count < b.capacity {
		b.entries[tail] = e
		b.count++

		return e, false
	}

	b.entries[b.head] = e
	b.head = (b.head + 1) % b.capacity
	b.first++

	return e, true
}

// Len returns the number of retained entries
func (b *Buffer) Len() int {
	return b.count
}

// First returns the sequence of the oldest retained entry
func (b *Buffer) First() uint64 {
	return b.first
}

// Next returns the sequence the next appended entry will receive
func (b *Buffer) Next() uint64 {
	return b.next
}

// Get returns the entry with the given sequence if it is still retained
func (b *Buffer) Get(seq uint64) (Entry, bool) {
	if seq < b.first || seq >= b.next {
		return Entry{}, false
	}

	offset := int(seq - b.first)
	if b.capacity == 0 {
		return b.entries[offset], true
	}

	return b.entries[(b.head+offset)%b.capacity], true
}

// Position returns the zero-based position of seq among retained entries
func (b *Buffer) Position(seq uint64) (int, bool) {
	if seq < b.first || seq >= b.next {
		return 0, false
	}

	return int(seq - b.first), true
}

// Entries returns a copy of the retained entries in arrival order
func (b *Buffer) Entries() []Entry {
	result := make([]Entry, 0, b.count)

	for seq := b.first; seq < b.next; seq++ {
		e, _ := b.Get(seq)
		result = append(result, e)
	}

	return result
}
