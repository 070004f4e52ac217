package ecs

import "iter"

// columnStore is the type-erased view of a component column used by the
// pool for slot resets, presence checks and statistics.
type columnStore interface {
	Kind() Kind
	Has(index int) bool
	Clear(index int)
	Count() int
	Iter() iter.Seq[int]
	get(index int) any
}
