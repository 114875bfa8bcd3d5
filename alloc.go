package typedarena

import "iter"

// AllocSlice copies vs into one contiguous run of arena slots and returns it.
// If the run does not fit in the current chunk, a new chunk at least
// len(vs) slots large is started and the old chunk's remaining slots are
// left unused. The returned slice has cap == len, so appending to it
// reallocates on the heap rather than overwriting neighbouring objects.
// Returns nil if vs is empty.
func (a *Arena[T]) AllocSlice(vs ...T) []T {
	if len(vs) == 0 {
		return nil
	}
	a.guard.enter()
	defer a.guard.exit()

	c := a.allocChunk(len(vs))
	a.live += len(vs)
	return c.pushN(vs)
}

// MakeSlice allocates a contiguous run of n zero-valued slots.
// Placement follows AllocSlice. Returns nil if n <= 0.
func (a *Arena[T]) MakeSlice(n int) []T {
	if n <= 0 {
		return nil
	}
	a.guard.enter()
	defer a.guard.exit()

	c := a.allocChunk(n)
	a.live += n
	return c.extend(n)
}

// All returns an iterator over every allocated object in allocation order.
// Objects allocated while iterating are visited too.
func (a *Arena[T]) All() iter.Seq[*T] {
	a.panicIfReleased()
	return func(yield func(*T) bool) {
		for ci := 0; ci < len(a.chunks); ci++ {
			c := a.chunks[ci]
			for i := 0; i < len(c.slots); i++ {
				if !yield(&c.slots[i]) {
					return
				}
			}
		}
	}
}
