// Package ringbuffer implements a fixed-capacity circular buffer with two
// access disciplines over the same storage layout: a serial (FIFO) variant
// consumed strictly in write order, and a random variant addressed by
// 1-based position relative to a moving logical start.
//
// Buffers have value semantics: every mutating operation returns a new
// buffer value and leaves the receiver intact, so older values remain
// valid and unaffected. There is no internal locking; a buffer value must
// not be shared between goroutines without external synchronization.
package ringbuffer

import "errors"

// ErrOutOfRange is returned by positional random-buffer operations when
// the position falls outside [1, Cap()].
var ErrOutOfRange = errors.New("ringbuffer: position out of range")

// Mode selects a buffer's access discipline at construction time. The
// discipline is fixed for the value's lifetime.
type Mode int

const (
	// ModeSerial selects the FIFO variant.
	ModeSerial Mode = iota
	// ModeRandom selects the positionally addressable variant.
	ModeRandom
)

// Buffer is the closed set of buffer variants. Serial and Random are the
// only implementations.
type Buffer[T any] interface {
	// Cap reports the fixed number of storage slots.
	Cap() int

	variant() Mode
}

// New constructs a buffer of the requested mode. def seeds every slot of
// a random buffer and acts as its sentinel for unwritten positions;
// serial buffers have no sentinel and ignore it.
//
// New panics if size < 1 or mode is not one of the declared Mode values.
func New[T any](size int, mode Mode, def T) Buffer[T] {
	switch mode {
	case ModeSerial:
		return NewSerial[T](size)
	case ModeRandom:
		return NewRandom(size, def)
	default:
		panic("ringbuffer: unknown mode")
	}
}

func checkSize(size int) {
	if size < 1 {
		panic("ringbuffer: size must be at least 1")
	}
}
