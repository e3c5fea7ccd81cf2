package detect

import "math/rand"

// enclosing is a circle under construction during the Welzl fit.
type enclosing struct {
	center Point
	radius float64
}

// containsEps absorbs rasterization rounding so boundary points sitting
// exactly on the circle do not restart the fit.
const containsEps = 1e-7

func (c enclosing) contains(p Point) bool {
	return c.center.DistanceTo(p) <= c.radius+containsEps
}

// minEnclosingCircle computes the smallest circle containing every point.
//
// Uses Welzl's move-to-front algorithm. The input is copied and shuffled with
// a fixed seed, so the result is deterministic for a given point set while
// keeping the expected linear running time. An empty input yields a zero
// circle.
func minEnclosingCircle(points []Point) (Point, float64) {
	if len(points) == 0 {
		return Point{}, 0
	}

	pts := make([]Point, len(points))
	copy(pts, points)
	rng := rand.New(rand.NewSource(1))
	rng.Shuffle(len(pts), func(i, j int) {
		pts[i], pts[j] = pts[j], pts[i]
	})

	c := enclosing{center: pts[0]}
	for i := 1; i < len(pts); i++ {
		if c.contains(pts[i]) {
			continue
		}
		c = enclosing{center: pts[i]}
		for j := 0; j < i; j++ {
			if c.contains(pts[j]) {
				continue
			}
			c = circleFromTwo(pts[i], pts[j])
			for k := 0; k < j; k++ {
				if !c.contains(pts[k]) {
					c = circleFromThree(pts[i], pts[j], pts[k])
				}
			}
		}
	}
	return c.center, c.radius
}

// circleFromTwo returns the circle with the segment ab as diameter.
func circleFromTwo(a, b Point) enclosing {
	center := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	return enclosing{center: center, radius: center.DistanceTo(a)}
}

// circleFromThree returns the circumcircle of a, b, c. Collinear points have
// no circumcircle; the widest two-point circle covering all three is used
// instead.
func circleFromThree(a, b, c Point) enclosing {
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	d := 2 * (bx*cy - by*cx)
	if d == 0 {
		best := circleFromTwo(a, b)
		if alt := circleFromTwo(a, c); alt.radius > best.radius {
			best = alt
		}
		if alt := circleFromTwo(b, c); alt.radius > best.radius {
			best = alt
		}
		return best
	}

	ux := (cy*(bx*bx+by*by) - by*(cx*cx+cy*cy)) / d
	uy := (bx*(cx*cx+cy*cy) - cx*(bx*bx+by*by)) / d
	center := Point{X: a.X + ux, Y: a.Y + uy}
	return enclosing{center: center, radius: center.DistanceTo(a)}
}
