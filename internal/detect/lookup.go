package detect

// LocateObject finds the object nearest to a query point, typically a
// pointer click on the displayed image.
//
// The nearest object by center distance is a match only when the query
// point falls inside the object itself (distance ≤ DiameterPx/2). The
// second return value is false when the list is empty or the nearest
// object is too far away. Uses the same Euclidean metric as
// FilterOverlaps.
func LocateObject(objects []Object, x, y float64) (Object, bool) {
	if len(objects) == 0 {
		return Object{}, false
	}

	query := Point{X: x, Y: y}
	best := objects[0]
	bestDist := query.DistanceTo(best.Center)
	for _, o := range objects[1:] {
		if d := query.DistanceTo(o.Center); d < bestDist {
			best = o
			bestDist = d
		}
	}

	if bestDist > best.Radius() {
		return Object{}, false
	}
	return best, true
}
