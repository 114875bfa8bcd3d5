package typedarena

import (
	"fmt"
	"math"
	"testing"
)

type point struct {
	x, y int64
}

func TestNewArena(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		expected int
	}{
		{"default capacity", nil, DefaultChunkBytes / 16},
		{"zero capacity", []Option{WithInitialCapacity(0)}, DefaultChunkBytes / 16},
		{"negative capacity", []Option{WithInitialCapacity(-1)}, DefaultChunkBytes / 16},
		{"custom capacity", []Option{WithInitialCapacity(8)}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena[point](tt.opts...)
			if a.InitialCapacity() != tt.expected {
				t.Errorf("InitialCapacity() = %d, want %d", a.InitialCapacity(), tt.expected)
			}
			if len(a.chunks) != 1 {
				t.Errorf("chunks = %d, want 1", len(a.chunks))
			}
			if a.cur != a.chunks[0] {
				t.Error("current chunk is not the first chunk")
			}
			if a.cur.cap() != tt.expected {
				t.Errorf("first chunk capacity = %d, want %d", a.cur.cap(), tt.expected)
			}
		})
	}
}

func TestArenaAlloc(t *testing.T) {
	a := NewArena[int]()

	p := a.Alloc(10)
	if p == nil {
		t.Fatal("Alloc(10) returned nil")
	}
	if *p != 10 {
		t.Errorf("*Alloc(10) = %d, want 10", *p)
	}

	// Writes through the pointer land in the arena
	*p = 11
	if got := a.chunks[0].slots[0]; got != 11 {
		t.Errorf("slot 0 = %d, want 11", got)
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestArenaNew(t *testing.T) {
	a := NewArena[point](WithInitialCapacity(1))
	a.Alloc(point{1, 2}) // fill the first chunk

	p := a.New()
	if *p != (point{}) {
		t.Errorf("New() = %+v, want zero value", *p)
	}
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks() = %d, want 2", a.NumChunks())
	}
}

func TestArenaStability(t *testing.T) {
	a := NewArena[int](WithInitialCapacity(1))

	const n = 1000
	ptrs := make([]*int, n)
	for i := range ptrs {
		ptrs[i] = a.Alloc(i)
	}

	seen := make(map[*int]bool, n)
	for i, p := range ptrs {
		if *p != i {
			t.Fatalf("ptrs[%d] = %d after growth, want %d", i, *p, i)
		}
		if seen[p] {
			t.Fatalf("ptrs[%d] aliases an earlier allocation", i)
		}
		seen[p] = true
	}
}

func TestArenaGrowth(t *testing.T) {
	tests := []struct {
		initial, factor int
		allocs          int
		wantCaps        []int
	}{
		{1, 2, 1, []int{1}},
		{1, 2, 2, []int{1, 2}},
		{1, 2, 7, []int{1, 2, 4}},
		{1, 2, 8, []int{1, 2, 4, 8}},
		{4, 2, 13, []int{4, 8, 16}},
		{2, 3, 9, []int{2, 6, 18}},
		{3, 1, 4, []int{3, 6}}, // factor clamped to 2
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-x%d-%d", tt.initial, tt.factor, tt.allocs), func(t *testing.T) {
			a := NewArena[int](WithInitialCapacity(tt.initial), WithGrowthFactor(tt.factor))
			for i := 0; i < tt.allocs; i++ {
				a.Alloc(i)
			}
			if len(a.chunks) != len(tt.wantCaps) {
				t.Fatalf("chunks = %d, want %d", len(a.chunks), len(tt.wantCaps))
			}
			for i, c := range a.chunks {
				if c.cap() != tt.wantCaps[i] {
					t.Errorf("chunk %d capacity = %d, want %d", i, c.cap(), tt.wantCaps[i])
				}
				// every chunk but the last is full
				if i < len(a.chunks)-1 && c.free() != 0 {
					t.Errorf("chunk %d has %d free slots, want 0", i, c.free())
				}
			}
		})
	}
}

func TestArenaGrowthIsLogarithmic(t *testing.T) {
	a := NewArena[int](WithInitialCapacity(1))
	const k = 1 << 16
	for i := 0; i < k; i++ {
		a.Alloc(i)
	}
	// 1 + 2 + ... + 2^16 >= k, so 17 chunks at most
	if a.NumChunks() > 17 {
		t.Errorf("NumChunks() = %d after %d allocs, want <= 17", a.NumChunks(), k)
	}
}

func TestArenaRelease(t *testing.T) {
	a := NewArena[int]()
	p := a.Alloc(42)

	a.Release()

	if a.chunks != nil {
		t.Error("Expected chunks to be nil after Release()")
	}
	if !a.Released() {
		t.Error("Released() = false after Release()")
	}
	if *p != 0 {
		t.Errorf("released slot = %d, want zeroed", *p)
	}

	// Test panic on use after release
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on use after Release()")
		}
	}()
	a.Alloc(1)
}

func TestGrowCapacity(t *testing.T) {
	tests := []struct {
		prev, factor, limit int
		expected            int
	}{
		{1, 2, math.MaxInt, 2},
		{64, 2, math.MaxInt, 128},
		{10, 3, 100, 30},
		{50, 2, 100, 100},
		{51, 2, 100, 100},
		{100, 2, 100, 100},
		{math.MaxInt/2 + 1, 2, math.MaxInt, math.MaxInt},
	}

	for _, tt := range tests {
		result := growCapacity(tt.prev, tt.factor, tt.limit)
		if result != tt.expected {
			t.Errorf("growCapacity(%d, %d, %d) = %d, want %d", tt.prev, tt.factor, tt.limit, result, tt.expected)
		}
	}
}

func TestCapacityOverflow(t *testing.T) {
	testPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if r := recover(); r != "arena: capacity overflow" {
				t.Errorf("%s: recovered %v, want capacity overflow panic", name, r)
			}
		}()
		fn()
	}

	testPanic("WithInitialCapacity", func() {
		NewArena[int64](WithInitialCapacity(math.MaxInt))
	})
	testPanic("MakeSlice", func() {
		a := NewArena[int64](WithInitialCapacity(1))
		a.MakeSlice(math.MaxInt/8 + 1)
	})
}

func BenchmarkArenaAlloc(b *testing.B) {
	b.Run("int", func(b *testing.B) {
		a := NewArena[int]()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.Alloc(i)
		}
	})

	b.Run("point", func(b *testing.B) {
		a := NewArena[point]()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.Alloc(point{int64(i), int64(i)})
		}
	})
}

func BenchmarkArenaVsBuiltin(b *testing.B) {
	var sink *point
	b.Run("arena", func(b *testing.B) {
		a := NewArena[point]()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sink = a.Alloc(point{})
		}
	})

	b.Run("builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sink = &point{}
		}
	})
	_ = sink
}
