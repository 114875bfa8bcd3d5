// Package typedarena implements a typed chunked bump allocator for Go.
//
// # Overview
//
// An Arena[T] stores values of a single type T in a growing sequence of
// fixed-capacity chunks and hands out pointers into them. Objects are never
// moved or freed individually; they all share the arena's lifetime and are
// destroyed together by Release. This is useful for:
//
//   - Building linked lists, graphs and trees with parent pointers
//   - Batches of many small same-lifetime objects
//   - Reducing per-object heap allocations
//
// # Basic Usage
//
//	a := typedarena.NewArena[Node]() // default chunk sizing
//	defer a.Release()                // finalize everything when done
//
//	head := a.Alloc(Node{Value: 1})
//	head.Next = a.Alloc(Node{Value: 2})
//
//	// Zero-valued objects and contiguous runs
//	n := a.New()
//	run := a.AllocSlice(Node{Value: 3}, Node{Value: 4})
//
// # Stability
//
// Growth appends a new chunk and never copies existing ones, so a pointer
// returned by Alloc stays valid until Release, however many allocations
// follow. Storage is typed ([]T), so T may contain Go pointers, including
// pointers to other objects in the same arena. Cycles are fine.
//
// # Memory Layout
//
// The first chunk holds max(4096/sizeof(T), 1) slots unless
// WithInitialCapacity says otherwise. Each new chunk is GrowthFactor
// (default 2) times larger than the previous one, so k allocations create
// O(log k) chunks.
//
// # Destruction
//
// Release calls Finalize on every object whose pointer type implements
// Finalizer, then any hook registered with OnRelease, in allocation order.
// Cleanup code must not depend on sibling objects: no ordering between
// objects is promised. After cleanup the slots are zeroed and dropped.
//
// # Thread Safety
//
// An Arena has a single owner and no internal locking. Reading objects that
// were already returned is safe from any goroutine. Build with
// -tags arenadebug to panic when two goroutines mutate one Arena at once.
//
// # Important Notes
//
//   - Returned pointers are only meaningful while the arena is alive
//   - No individual deallocation, no reset, no shrinking
//   - Allocating after Release panics
//   - Alignment is the natural alignment of T
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Objects: %d in %d chunks\n", m.Len, m.NumChunks)
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
package typedarena
