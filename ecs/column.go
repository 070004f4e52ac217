package ecs

import (
	"iter"
	"math/bits"
)

const (
	blockSize = 64
)

// column is a fixed-capacity array of one component type, stored in blocks
// of 64 slots with one presence bit per slot. Slot i of every column belongs
// to the entity at pool slot i.
type column[T Component] struct {
	blocks   [][blockSize]T
	filled   []uint64
	capacity int
}

func newColumn[T Component](capacity int) *column[T] {
	numBlocks := (capacity + blockSize - 1) / blockSize
	return &column[T]{
		blocks:   make([][blockSize]T, numBlocks),
		filled:   make([]uint64, numBlocks),
		capacity: capacity,
	}
}

// Kind returns the component kind stored in the column.
func (c *column[T]) Kind() Kind {
	var zero T
	return zero.kind()
}

// Set overwrites the component at index, marks it present and returns a
// pointer into the column.
func (c *column[T]) Set(index int, item T) *T {
	blockIdx := index / blockSize
	slotIdx := index % blockSize

	c.blocks[blockIdx][slotIdx] = item
	c.filled[blockIdx] |= 1 << slotIdx
	return &c.blocks[blockIdx][slotIdx]
}

// Get returns a pointer to the component at index if it is present.
func (c *column[T]) Get(index int) (*T, bool) {
	if !c.Has(index) {
		return nil, false
	}
	return &c.blocks[index/blockSize][index%blockSize], true
}

// Has checks if a component is present at the given index.
func (c *column[T]) Has(index int) bool {
	if index < 0 || index >= c.capacity {
		return false
	}
	return c.filled[index/blockSize]&(1<<(index%blockSize)) != 0
}

// Clear marks the slot as absent. The stored value is left in place.
func (c *column[T]) Clear(index int) {
	if index < 0 || index >= c.capacity {
		return
	}
	c.filled[index/blockSize] &^= 1 << (index % blockSize)
}

// Count returns the number of present components.
func (c *column[T]) Count() int {
	n := 0
	for _, mask := range c.filled {
		n += bits.OnesCount64(mask)
	}
	return n
}

// Iter yields the indices of present components in ascending order.
func (c *column[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for blockIdx, mask := range c.filled {
			for mask != 0 {
				slotIdx := bits.TrailingZeros64(mask)
				mask &^= 1 << slotIdx
				if !yield(blockIdx*blockSize + slotIdx) {
					return
				}
			}
		}
	}
}

func (c *column[T]) get(index int) any {
	if ptr, ok := c.Get(index); ok {
		return ptr
	}
	return nil
}
