package ringbuffer

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestResolvePos(t *testing.T) {
	cases := []struct {
		capacity, start, pos, want int
	}{
		{capacity: 1, start: 0, pos: 1, want: 0},
		{capacity: 3, start: 0, pos: 1, want: 0},
		{capacity: 3, start: 0, pos: 3, want: 2},
		{capacity: 3, start: 1, pos: 3, want: 0},
		{capacity: 3, start: 2, pos: 2, want: 0},
		{capacity: 3, start: 2, pos: 3, want: 1},
		{capacity: 5, start: 4, pos: 1, want: 4},
		{capacity: 5, start: 4, pos: 2, want: 0},
		{capacity: 5, start: 3, pos: 5, want: 2},
	}
	for _, c := range cases {
		got := resolvePos(c.capacity, c.start, c.pos)
		if got != c.want {
			t.Fatalf("resolvePos(%d, %d, %d)=%d, want %d", c.capacity, c.start, c.pos, got, c.want)
		}
	}
}

func TestAdvanceOne(t *testing.T) {
	if got := advanceOne(4, 0); got != 1 {
		t.Fatalf("advanceOne(4, 0)=%d, want 1", got)
	}
	if got := advanceOne(4, 3); got != 0 {
		t.Fatalf("advanceOne(4, 3)=%d, want 0", got)
	}
	if got := advanceOne(1, 0); got != 0 {
		t.Fatalf("advanceOne(1, 0)=%d, want 0", got)
	}
}

// For any capacity and start, resolvePos over pos 1..capacity must visit
// every absolute index exactly once. Distinct in-range results for
// capacity positions imply both injectivity and full range coverage.
func TestResolvePosPermutes(t *testing.T) {
	err := quick.Check(func(capSeed, startSeed uint16) bool {
		capacity := int(capSeed)%64 + 1
		start := int(startSeed) % capacity
		seen := make([]bool, capacity)
		for pos := 1; pos <= capacity; pos++ {
			idx := resolvePos(capacity, start, pos)
			if idx < 0 || idx >= capacity || seen[idx] {
				return false
			}
			seen[idx] = true
		}
		return true
	}, nil)
	require.NoError(t, err)
}
