// Package workload holds the element types and allocation patterns used to
// exercise and compare arenas against the Go heap.
package workload

import (
	"fmt"
	"runtime"

	"github.com/pavanmanishd/typedarena"
)

// Small, Medium and Big are one, four and thirty-two words wide.
type (
	Small  struct{ V uint64 }
	Medium struct{ V [4]uint64 }
	Big    struct{ V [32]uint64 }
)

// Size names an element type.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeBig    Size = "big"
)

// Sizes lists every known element size in ascending order.
var Sizes = []Size{SizeSmall, SizeMedium, SizeBig}

// ParseSize validates a size name.
func ParseSize(s string) (Size, error) {
	for _, sz := range Sizes {
		if string(sz) == s {
			return sz, nil
		}
	}
	return "", fmt.Errorf("unknown element size %q", s)
}

// Result reports one run of a workload.
type Result struct {
	Size    Size                    `json:"size"`
	Count   int                     `json:"count"`
	Metrics typedarena.ArenaMetrics `json:"metrics"`
}

// Arena allocates n zero-valued T into a fresh arena, releases it and
// reports the arena's metrics as they stood before release.
func Arena[T any](n int, opts ...typedarena.Option) typedarena.ArenaMetrics {
	a := typedarena.NewArena[T](opts...)
	defer a.Release()
	var v T
	for range n {
		p := a.Alloc(v)
		runtime.KeepAlive(p)
	}
	return a.Metrics()
}

// Heap allocates n zero-valued T individually on the Go heap.
func Heap[T any](n int) {
	ps := make([]*T, n)
	for i := range ps {
		ps[i] = new(T)
	}
	runtime.KeepAlive(ps)
}

// Run dispatches Arena by element size.
func Run(size Size, n int, opts ...typedarena.Option) (Result, error) {
	r := Result{Size: size, Count: n}
	switch size {
	case SizeSmall:
		r.Metrics = Arena[Small](n, opts...)
	case SizeMedium:
		r.Metrics = Arena[Medium](n, opts...)
	case SizeBig:
		r.Metrics = Arena[Big](n, opts...)
	default:
		return r, fmt.Errorf("unknown element size %q", size)
	}
	return r, nil
}

// RunHeap dispatches Heap by element size.
func RunHeap(size Size, n int) error {
	switch size {
	case SizeSmall:
		Heap[Small](n)
	case SizeMedium:
		Heap[Medium](n)
	case SizeBig:
		Heap[Big](n)
	default:
		return fmt.Errorf("unknown element size %q", size)
	}
	return nil
}
