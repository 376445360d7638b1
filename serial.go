package ringbuffer

import "slices"

// Serial is a fixed-capacity FIFO ring buffer. The oldest element is
// always the next one read, and pushing into a full buffer overwrites the
// oldest element instead of growing or failing.
//
// The zero value is not usable; construct with NewSerial or New.
type Serial[T any] struct {
	items []T
	start int // oldest unread element
	end   int // most recently written element
	empty bool
}

// NewSerial returns an empty serial buffer with size slots. It panics if
// size < 1.
func NewSerial[T any](size int) Serial[T] {
	checkSize(size)
	return Serial[T]{
		items: make([]T, size),
		empty: true,
	}
}

// Cap reports the fixed number of storage slots.
func (b Serial[T]) Cap() int { return len(b.items) }

// Empty reports whether the buffer holds no elements.
func (b Serial[T]) Empty() bool { return b.empty }

// Len reports the number of elements currently held.
func (b Serial[T]) Len() int {
	switch {
	case b.empty:
		return 0
	case b.start <= b.end:
		return b.end - b.start + 1
	default:
		return len(b.items) - b.start + b.end + 1
	}
}

// Push appends item as the newest element and returns the new buffer
// state. When the buffer is full the oldest element is silently discarded
// to make room; Push never fails.
func (b Serial[T]) Push(item T) Serial[T] {
	next := b
	next.items = slices.Clone(b.items)
	if b.empty {
		// start == end and the slot there is stale; write in place.
		next.items[b.end] = item
		next.empty = false
		return next
	}
	nextEnd := advanceOne(len(b.items), b.end)
	next.items[nextEnd] = item
	next.end = nextEnd
	if nextEnd == b.start {
		// Buffer was full; evict the oldest element.
		next.start = advanceOne(len(b.items), b.start)
	}
	return next
}

// Pop removes and returns the oldest element together with the new buffer
// state. The final result is false when the buffer is empty, in which
// case the returned state equals the receiver.
func (b Serial[T]) Pop() (T, Serial[T], bool) {
	if b.empty {
		var zero T
		return zero, b, false
	}
	item := b.items[b.start]
	next := b
	if b.start == b.end {
		// Last element consumed; keep cursors so the next Push
		// reuses this slot.
		next.empty = true
		return item, next, true
	}
	next.start = advanceOne(len(b.items), b.start)
	return item, next, true
}

// Peek returns the oldest element without consuming it. The second result
// is false when the buffer is empty.
func (b Serial[T]) Peek() (T, bool) {
	if b.empty {
		var zero T
		return zero, false
	}
	return b.items[b.start], true
}

func (Serial[T]) variant() Mode { return ModeSerial }
