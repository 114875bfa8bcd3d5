package typedarena

import (
	"log/slog"
	"math"
	"unsafe"
)

// DefaultChunkBytes is the size in bytes the first chunk targets when no
// initial capacity is given. The first chunk holds
// max(DefaultChunkBytes/sizeof(T), 1) slots.
const DefaultChunkBytes = 4096

// DefaultGrowthFactor is the ratio between consecutive chunk capacities.
const DefaultGrowthFactor = 2

// An Option configures an Arena on creation.
type Option func(*config)

type config struct {
	initialCapacity int
	growthFactor    int
	logger          *slog.Logger
}

// WithInitialCapacity sets the number of slots in the first chunk.
// Values <= 0 select the default derived from DefaultChunkBytes.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		c.initialCapacity = n
	}
}

// WithGrowthFactor sets how many times larger each new chunk is than the
// previous one. Values below 2 are raised to 2.
func WithGrowthFactor(f int) Option {
	return func(c *config) {
		c.growthFactor = f
	}
}

// WithLogger sets the logger used for chunk growth and release events,
// which are logged at debug level. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig[T any](opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	if c.initialCapacity <= 0 {
		c.initialCapacity = defaultInitialCapacity[T]()
	}
	if c.initialCapacity > maxSlots[T]() {
		panic("arena: capacity overflow")
	}
	if c.growthFactor < DefaultGrowthFactor {
		c.growthFactor = DefaultGrowthFactor
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

func defaultInitialCapacity[T any]() int {
	size := elemSize[T]()
	if size == 0 {
		return DefaultChunkBytes
	}
	return max(DefaultChunkBytes/size, 1)
}

// maxSlots is the largest slot count whose byte size still fits in an int.
func maxSlots[T any]() int {
	size := elemSize[T]()
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}

func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
