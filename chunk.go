package typedarena

// chunk is one fixed-capacity block of slots within an arena.
// len(slots) is the fill level and cap(slots) the capacity; the backing
// array is never reallocated, so &slots[i] stays valid for the chunk's life.
type chunk[T any] struct {
	slots []T
}

// newChunk allocates storage for exactly capacity slots.
func newChunk[T any](capacity int) *chunk[T] {
	if capacity < 1 {
		panic("arena: invalid chunk capacity")
	}
	return &chunk[T]{slots: make([]T, 0, capacity)}
}

func (c *chunk[T]) len() int  { return len(c.slots) }
func (c *chunk[T]) cap() int  { return cap(c.slots) }
func (c *chunk[T]) free() int { return cap(c.slots) - len(c.slots) }

// push stores v in the next free slot and returns its address.
// The caller must check free() first.
func (c *chunk[T]) push(v T) *T {
	n := len(c.slots)
	if n == cap(c.slots) {
		panic("arena: push into full chunk")
	}
	c.slots = c.slots[:n+1]
	c.slots[n] = v
	return &c.slots[n]
}

// extend claims the next n slots (zeroed) as one contiguous run.
func (c *chunk[T]) extend(n int) []T {
	start := len(c.slots)
	if n > cap(c.slots)-start {
		panic("arena: push into full chunk")
	}
	c.slots = c.slots[:start+n]
	// Slots past len were never written, so the run is zero-valued.
	return c.slots[start : start+n : start+n]
}

// pushN copies vs into the next len(vs) slots.
func (c *chunk[T]) pushN(vs []T) []T {
	run := c.extend(len(vs))
	copy(run, vs)
	return run
}

// finalize runs fn over the live slots in slot order.
func (c *chunk[T]) finalize(fn func(*T)) {
	for i := range c.slots {
		fn(&c.slots[i])
	}
}

// destroy zeroes the live slots and drops the storage.
func (c *chunk[T]) destroy() {
	clear(c.slots)
	c.slots = nil
}
