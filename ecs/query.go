package ecs

// IntersectEntities returns entities present in every set, in the dense order
// of the smallest one.
func IntersectEntities(sets ...*SparseSet) []Entity {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
outer:
	for _, e := range smallest.Entities() {
		for _, s := range sets {
			if !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}
