package typedarena

// Len returns the number of objects allocated in the arena.
func (a *Arena[T]) Len() int {
	return a.live
}

// NumChunks returns the number of chunks currently allocated by the arena.
func (a *Arena[T]) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total number of slots across all chunks.
func (a *Arena[T]) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += c.cap()
	}
	return sum
}

// SizeInUse returns the number of bytes occupied by allocated objects.
func (a *Arena[T]) SizeInUse() int {
	return a.live * elemSize[T]()
}

// CapacityBytes returns the total size in bytes of all chunks.
func (a *Arena[T]) CapacityBytes() int {
	return a.Capacity() * elemSize[T]()
}

// Utilization returns the ratio of occupied slots to total slots (0.0 to 1.0).
// Slots skipped at bulk-allocation boundaries count as unoccupied.
// Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.live) / float64(capacity)
}

// InitialCapacity returns the number of slots in the arena's first chunk.
func (a *Arena[T]) InitialCapacity() int {
	return a.cfg.initialCapacity
}

// GrowthFactor returns the ratio between consecutive chunk capacities.
func (a *Arena[T]) GrowthFactor() int {
	return a.cfg.growthFactor
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Len:             a.Len(),
		Capacity:        a.Capacity(),
		NumChunks:       a.NumChunks(),
		SizeInUse:       a.SizeInUse(),
		CapacityBytes:   a.CapacityBytes(),
		ElemSize:        elemSize[T](),
		InitialCapacity: a.InitialCapacity(),
		GrowthFactor:    a.GrowthFactor(),
		Utilization:     a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Len             int     `json:"len"`              // Objects allocated
	Capacity        int     `json:"capacity"`         // Total slots
	NumChunks       int     `json:"num_chunks"`       // Number of chunks
	SizeInUse       int     `json:"size_in_use"`      // Bytes occupied by objects
	CapacityBytes   int     `json:"capacity_bytes"`   // Total bytes across chunks
	ElemSize        int     `json:"elem_size"`        // sizeof(T)
	InitialCapacity int     `json:"initial_capacity"` // Slots in the first chunk
	GrowthFactor    int     `json:"growth_factor"`    // Chunk capacity ratio
	Utilization     float64 `json:"utilization"`      // Ratio of used to total slots (0.0-1.0)
}
