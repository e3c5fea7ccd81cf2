package detect

import "sort"

// FilterOverlaps collapses candidates that describe the same physical
// object, keeping the largest circle of each cluster.
//
// Imperfect morphological cleanup can split one object into several
// contours, each passing the area filter and producing near-coincident
// circles. The resolver removes those duplicates deterministically:
//
//  1. Candidates are sorted by DiameterPx descending; equal diameters are
//     ordered by ID ascending so the result never depends on discovery
//     order.
//  2. Walking in sorted order, a candidate is dropped when its center lies
//     strictly within tol * DiameterPx of an already-kept object's center
//     (the kept object is the larger, more reliable detection). Otherwise
//     it is kept.
//
// Comparing only against kept objects means chains of small fragments all
// collapse onto the single largest member of their cluster. The threshold
// is relative to the kept circle's size, so the rule is scale invariant.
//
// Kept objects retain their original IDs; the result may have ID gaps.
// The returned slice is ordered largest-first per the sort above. Use
// DefaultOverlapTol unless calibrating. The input slice is not modified.
func FilterOverlaps(objects []Object, tol float64) []Object {
	sorted := make([]Object, len(objects))
	copy(sorted, objects)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].DiameterPx != sorted[j].DiameterPx {
			return sorted[i].DiameterPx > sorted[j].DiameterPx
		}
		return sorted[i].ID < sorted[j].ID
	})

	kept := make([]Object, 0, len(sorted))
	for _, o := range sorted {
		duplicate := false
		for _, k := range kept {
			if o.Center.DistanceTo(k.Center) < tol*k.DiameterPx {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, o)
		}
	}
	return kept
}
