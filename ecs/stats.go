package ecs

// PoolStats is a snapshot of pool occupancy.
type PoolStats struct {
	Capacity       int
	Active         int
	Dying          int
	ComponentCount map[Kind]int
	TagCount       map[Tag]int
}

// CollectStats counts live entities per tag and present components per kind.
// Components of destroyed entities awaiting a sweep are included in
// ComponentCount.
func (p *Pool) CollectStats() *PoolStats {
	stats := &PoolStats{
		Capacity:       len(p.slots),
		Active:         p.active,
		Dying:          len(p.dying),
		ComponentCount: make(map[Kind]int, kindCount),
		TagCount:       make(map[Tag]int, tagCount),
	}

	for _, col := range p.columns {
		n := 0
		for idx := range col.Iter() {
			if p.slots[idx].state != slotFree {
				n++
			}
		}
		stats.ComponentCount[col.Kind()] = n
	}

	for _, s := range p.slots {
		if s.state == slotActive {
			stats.TagCount[s.tag]++
		}
	}

	return stats
}
