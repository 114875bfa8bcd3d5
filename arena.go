// Package typedarena implements a typed chunked bump allocator.
// Typical usage: create one arena per batch of same-lifetime objects,
// allocate them with Alloc, link them freely, then Release the arena.
package typedarena

// Finalizer is implemented by arena element types that need cleanup when
// their arena is released. Finalize is called exactly once per object.
// It must not rely on other objects in the same arena still holding their
// values, since no ordering between objects is guaranteed.
type Finalizer interface {
	Finalize()
}

// Arena is a chunked bump allocator for values of type T. Pointers it
// returns stay valid until Release, including across growth.
// Not goroutine-safe: an Arena has a single owner.
type Arena[T any] struct {
	chunks    []*chunk[T]
	cur       *chunk[T] // last chunk; nil once released
	live      int       // objects allocated so far
	cfg       config
	onRelease func(*T)
	finalize  bool // *T implements Finalizer
	released  bool
	guard     ownerGuard
}

// NewArena creates an Arena holding one empty chunk.
func NewArena[T any](opts ...Option) *Arena[T] {
	a := &Arena[T]{cfg: newConfig[T](opts)}
	_, a.finalize = any((*T)(nil)).(Finalizer)
	a.appendChunk(a.cfg.initialCapacity)
	return a
}

// Alloc moves v into the arena and returns a pointer to the stored copy.
// The pointer stays valid until Release.
func (a *Arena[T]) Alloc(v T) *T {
	a.guard.enter()
	defer a.guard.exit()

	c := a.cur
	if c == nil || len(c.slots) == cap(c.slots) {
		c = a.allocChunk(1)
	}
	a.live++
	return c.push(v)
}

// allocChunk returns a chunk with at least n free slots, growing the arena
// when the current one is too small.
func (a *Arena[T]) allocChunk(n int) *chunk[T] {
	a.panicIfReleased()
	if a.cur.free() < n {
		a.grow(n)
	}
	return a.cur
}

// New allocates a zero T and returns a pointer to it.
func (a *Arena[T]) New() *T {
	var zero T
	return a.Alloc(zero)
}

// Release finalizes every object and drops all chunks. The arena is
// unusable afterwards; further allocations panic. Calling Release again
// does nothing.
//
// Objects are finalized in allocation order: chunk by chunk, slot by slot.
// Slots are zeroed only after every object has been finalized, so pointers
// retained past Release observe zero values.
func (a *Arena[T]) Release() {
	if a.released {
		return
	}
	a.guard.enter()
	// Detach first so cleanup code cannot allocate into a dying arena.
	chunks, live := a.chunks, a.live
	a.released = true
	a.chunks, a.cur, a.live = nil, nil, 0
	a.guard.exit()

	a.cfg.logger.Debug("arena: releasing",
		"objects", live,
		"chunks", len(chunks),
	)
	if fn := a.cleanupFunc(); fn != nil {
		for _, c := range chunks {
			c.finalize(fn)
		}
	}
	for _, c := range chunks {
		c.destroy()
	}
}

// Released reports whether Release has been called.
func (a *Arena[T]) Released() bool {
	return a.released
}

// OnRelease registers fn to be called on every live object during Release,
// after Finalize if T implements Finalizer. A later call replaces fn.
func (a *Arena[T]) OnRelease(fn func(*T)) {
	a.panicIfReleased()
	a.onRelease = fn
}

func (a *Arena[T]) cleanupFunc() func(*T) {
	hook := a.onRelease
	switch {
	case a.finalize && hook != nil:
		return func(p *T) {
			any(p).(Finalizer).Finalize()
			hook(p)
		}
	case a.finalize:
		return func(p *T) { any(p).(Finalizer).Finalize() }
	default:
		return hook
	}
}

// grow appends a chunk with room for at least min slots and makes it current.
func (a *Arena[T]) grow(min int) {
	capacity := a.nextCapacity()
	if min > capacity {
		capacity = min
	}
	a.appendChunk(capacity)
	a.cfg.logger.Debug("arena: grew",
		"chunk", len(a.chunks),
		"capacity", capacity,
		"total", a.Capacity(),
		"objects", a.live,
	)
}

func (a *Arena[T]) appendChunk(capacity int) {
	if capacity > maxSlots[T]() {
		panic("arena: capacity overflow")
	}
	c := newChunk[T](capacity)
	a.chunks = append(a.chunks, c)
	a.cur = c
}

// nextCapacity is the growth factor times the last chunk's capacity.
func (a *Arena[T]) nextCapacity() int {
	return growCapacity(a.cur.cap(), a.cfg.growthFactor, maxSlots[T]())
}

// growCapacity returns prev*factor, saturating at limit.
func growCapacity(prev, factor, limit int) int {
	if prev > limit/factor {
		return limit
	}
	return prev * factor
}

// panicIfReleased panics if the arena has been released.
func (a *Arena[T]) panicIfReleased() {
	if a.released {
		panic("arena: use after Release()")
	}
}
