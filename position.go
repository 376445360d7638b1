package ringbuffer

// resolvePos maps a 1-based position relative to start onto an absolute
// storage index, wrapping past the end of the array. relPos == 1 denotes
// the slot at start itself.
//
// Callers guarantee capacity >= 1 and 1 <= relPos <= capacity, so the
// wrapped index needs at most one subtraction and no modulo.
func resolvePos(capacity, start, relPos int) int {
	raw := start + relPos - 1
	if raw <= capacity-1 {
		return raw
	}
	return raw - capacity
}

// advanceOne returns the slot following index, wrapping at capacity.
func advanceOne(capacity, index int) int {
	return resolvePos(capacity, index, 2)
}
