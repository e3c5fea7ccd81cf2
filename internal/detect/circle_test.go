package detect

import (
	"math"
	"testing"
)

func TestMinEnclosingCircle_Empty(t *testing.T) {
	_, r := minEnclosingCircle(nil)
	if r != 0 {
		t.Errorf("empty input should yield radius 0, got %f", r)
	}
}

func TestMinEnclosingCircle_SinglePoint(t *testing.T) {
	c, r := minEnclosingCircle([]Point{{X: 3, Y: 4}})
	if r != 0 {
		t.Errorf("single point should yield radius 0, got %f", r)
	}
	if c.X != 3 || c.Y != 4 {
		t.Errorf("center should be the point itself, got %+v", c)
	}
}

func TestMinEnclosingCircle_TwoPoints(t *testing.T) {
	c, r := minEnclosingCircle([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	if math.Abs(r-5) > 1e-9 {
		t.Errorf("radius: got %f, want 5", r)
	}
	if math.Abs(c.X-5) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Errorf("center: got %+v, want (5,0)", c)
	}
}

func TestMinEnclosingCircle_Square(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0}, {X: 10, Y: 0},
		{X: 0, Y: 10}, {X: 10, Y: 10},
	}

	c, r := minEnclosingCircle(points)

	want := math.Sqrt(50) // half the diagonal
	if math.Abs(r-want) > 1e-6 {
		t.Errorf("radius: got %f, want %f", r, want)
	}
	if math.Abs(c.X-5) > 1e-6 || math.Abs(c.Y-5) > 1e-6 {
		t.Errorf("center: got %+v, want (5,5)", c)
	}
}

func TestMinEnclosingCircle_Collinear(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0},
	}

	c, r := minEnclosingCircle(points)

	if math.Abs(r-5) > 1e-6 {
		t.Errorf("radius: got %f, want 5", r)
	}
	if math.Abs(c.X-5) > 1e-6 {
		t.Errorf("center x: got %f, want 5", c.X)
	}
}

func TestMinEnclosingCircle_PointsOnCircle(t *testing.T) {
	var points []Point
	for deg := 0; deg < 360; deg += 5 {
		rad := float64(deg) * math.Pi / 180
		points = append(points, Point{
			X: 50 + 20*math.Cos(rad),
			Y: 50 + 20*math.Sin(rad),
		})
	}

	c, r := minEnclosingCircle(points)

	if math.Abs(r-20) > 1e-6 {
		t.Errorf("radius: got %f, want 20", r)
	}
	if math.Abs(c.X-50) > 1e-6 || math.Abs(c.Y-50) > 1e-6 {
		t.Errorf("center: got %+v, want (50,50)", c)
	}
}

func TestMinEnclosingCircle_CoversAllPoints(t *testing.T) {
	points := []Point{
		{X: 1, Y: 2}, {X: 30, Y: 7}, {X: 14, Y: 25},
		{X: 8, Y: 8}, {X: 22, Y: 3}, {X: 5, Y: 19},
	}

	c, r := minEnclosingCircle(points)

	for _, p := range points {
		if c.DistanceTo(p) > r+1e-6 {
			t.Errorf("point %+v outside circle (center %+v, r %f)", p, c, r)
		}
	}
}

func TestMinEnclosingCircle_Deterministic(t *testing.T) {
	points := []Point{
		{X: 1, Y: 2}, {X: 30, Y: 7}, {X: 14, Y: 25}, {X: 8, Y: 8},
	}

	c1, r1 := minEnclosingCircle(points)
	c2, r2 := minEnclosingCircle(points)

	if c1 != c2 || r1 != r2 {
		t.Error("repeated fits on the same input disagreed")
	}
}
