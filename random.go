package ringbuffer

import "slices"

// Random is a fixed-capacity ring buffer addressed by 1-based position
// relative to a moving logical start. All Cap() positions are always
// addressable; a slot that was never written, or was drained by ReadNext,
// holds the sentinel value given at construction.
//
// The zero value is not usable; construct with NewRandom or New.
type Random[T any] struct {
	items []T
	start int // absolute index of logical position 1
	def   T   // sentinel for unwritten and drained slots
}

// NewRandom returns a random-access buffer with size slots, every slot
// holding the sentinel def. It panics if size < 1.
func NewRandom[T any](size int, def T) Random[T] {
	checkSize(size)
	items := make([]T, size)
	for i := range items {
		items[i] = def
	}
	return Random[T]{items: items, def: def}
}

// Cap reports the fixed number of storage slots.
func (b Random[T]) Cap() int { return len(b.items) }

// Default returns the sentinel value held by unwritten slots.
func (b Random[T]) Default() T { return b.def }

// WriteAt stores item at position pos and returns the new buffer state.
// Positions are 1-based relative to the logical start. A pos outside
// [1, Cap()] fails with ErrOutOfRange and leaves the buffer unchanged.
func (b Random[T]) WriteAt(item T, pos int) (Random[T], error) {
	if pos < 1 || pos > len(b.items) {
		return b, ErrOutOfRange
	}
	next := b
	next.items = slices.Clone(b.items)
	next.items[resolvePos(len(b.items), b.start, pos)] = item
	return next, nil
}

// ReadAt returns the value at position pos without modifying the buffer.
// A pos outside [1, Cap()] fails with ErrOutOfRange.
func (b Random[T]) ReadAt(pos int) (T, error) {
	if pos < 1 || pos > len(b.items) {
		var zero T
		return zero, ErrOutOfRange
	}
	return b.items[resolvePos(len(b.items), b.start, pos)], nil
}

// ReadNext returns the value at logical position 1, resets that slot to
// the sentinel, and advances the logical start by one. It always
// succeeds: a slot that was never written, or was already drained, yields
// the sentinel.
func (b Random[T]) ReadNext() (T, Random[T]) {
	item := b.items[b.start]
	next := b
	next.items = slices.Clone(b.items)
	next.items[b.start] = b.def
	next.start = advanceOne(len(b.items), b.start)
	return item, next
}

// Snapshot returns the window contents in logical order, position 1
// first. The returned slice is freshly allocated.
func (b Random[T]) Snapshot() []T {
	out := make([]T, len(b.items))
	for pos := 1; pos <= len(b.items); pos++ {
		out[pos-1] = b.items[resolvePos(len(b.items), b.start, pos)]
	}
	return out
}

func (Random[T]) variant() Mode { return ModeRandom }
