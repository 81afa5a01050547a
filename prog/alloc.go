package prog

import (
	"sync/atomic"

	"vitess.io/vitess/go/bucketpool"
)

// Allocator supplies the single block a compiled pattern lives in.
//
// Hosts that must control memory (arenas, pre-sized pools, accounting)
// pass their own Allocator at compile time; the block is handed back to the
// same Allocator when the pattern is freed. Implementations must be safe
// for concurrent use if patterns are compiled or freed concurrently.
type Allocator interface {
	// Alloc returns a slice of exactly size bytes. Contents need not be zeroed.
	Alloc(size int) []byte

	// Free releases a slice previously returned by Alloc.
	Free(buf []byte)
}

// HeapAllocator allocates from the Go heap and leaves reclamation to the
// garbage collector. It is the default.
type HeapAllocator struct{}

// Alloc implements Allocator.
func (HeapAllocator) Alloc(size int) []byte { return make([]byte, size) }

// Free implements Allocator. It is a no-op.
func (HeapAllocator) Free([]byte) {}

// BucketAllocator recycles blocks through a bucketpool.Pool: power-of-two
// size classes between a minimum and maximum size. Requests above the
// maximum go to the heap and are not recycled.
type BucketAllocator struct {
	minSize int
	maxSize int
	pool    *bucketpool.Pool
}

// NewBucketAllocator creates an allocator with size classes from minSize
// up to maxSize. maxSize is always a class even when it is not a power of
// two multiple of minSize.
func NewBucketAllocator(minSize, maxSize int) *BucketAllocator {
	if minSize < 1 {
		minSize = 1
	}
	if maxSize < minSize {
		maxSize = minSize
	}
	return &BucketAllocator{
		minSize: minSize,
		maxSize: maxSize,
		pool:    bucketpool.New(minSize, maxSize),
	}
}

// classSize returns the capacity of the class serving size, or 0 when size
// is above the largest class.
func (a *BucketAllocator) classSize(size int) int {
	if size > a.maxSize {
		return 0
	}
	class := a.minSize
	for class < size {
		class *= 2
	}
	return min(class, a.maxSize)
}

// Alloc implements Allocator.
func (a *BucketAllocator) Alloc(size int) []byte {
	return *a.pool.Get(size)
}

// Free implements Allocator. Blocks whose capacity is not exactly a class
// size did not come from the pool and are dropped.
func (a *BucketAllocator) Free(buf []byte) {
	if c := cap(buf); c == 0 || a.classSize(c) != c {
		return
	}
	a.pool.Put(&buf)
}

// CountingAllocator wraps another Allocator and tracks outstanding blocks.
type CountingAllocator struct {
	Allocator

	allocs atomic.Int64
	frees  atomic.Int64
	live   atomic.Int64
}

// NewCountingAllocator wraps a; a nil a counts heap allocations.
func NewCountingAllocator(a Allocator) *CountingAllocator {
	if a == nil {
		a = HeapAllocator{}
	}
	return &CountingAllocator{Allocator: a}
}

// Alloc implements Allocator.
func (c *CountingAllocator) Alloc(size int) []byte {
	c.allocs.Add(1)
	c.live.Add(int64(size))
	return c.Allocator.Alloc(size)
}

// Free implements Allocator.
func (c *CountingAllocator) Free(buf []byte) {
	c.frees.Add(1)
	c.live.Add(-int64(len(buf)))
	c.Allocator.Free(buf)
}

// Allocs returns the number of Alloc calls.
func (c *CountingAllocator) Allocs() int64 { return c.allocs.Load() }

// Frees returns the number of Free calls.
func (c *CountingAllocator) Frees() int64 { return c.frees.Load() }

// LiveBytes returns the bytes allocated and not yet freed.
func (c *CountingAllocator) LiveBytes() int64 { return c.live.Load() }
