package detect

import "math"

// Default tuning constants. They match the values the tool was calibrated
// with and apply to images at the normalized working resolution (see the
// imaging package).
const (
	// MinRegionArea is the minimum foreground region area in square pixels
	// for a region to produce a candidate. Smaller regions are treated as
	// segmentation speckle.
	MinRegionArea = 500

	// DefaultOverlapTol is the default overlap tolerance used by
	// FilterOverlaps, expressed as a fraction of a kept circle's diameter.
	DefaultOverlapTol = 0.3
)

// Point is a 2D coordinate in normalized-image pixel space.
//
// Coordinates are float64 because circle fitting produces sub-pixel centers
// and that precision is carried through to output unchanged.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Object is one detected circular object.
//
// An Object is the minimal enclosing circle fitted to a segmented foreground
// region, plus its identity within the image's candidate set.
type Object struct {
	// ID is assigned in discovery order starting at 1 over the raw
	// candidate set. Overlap filtering removes entries without renumbering,
	// so IDs in a final result set are unique but may have gaps. IDs are
	// not stable across images or runs.
	ID int `json:"id"`

	// Center is the center of the enclosing circle, in pixels of the
	// normalized image.
	Center Point `json:"center"`

	// DiameterPx is the enclosing circle diameter in pixels. Always > 0
	// for an object in a result set.
	DiameterPx float64 `json:"diameter_px"`

	// DiameterPhys is DiameterPx converted to physical units via the
	// configured scale factor. Nil when no scale factor was supplied;
	// absence is distinct from zero.
	DiameterPhys *float64 `json:"diameter_phys,omitempty"`
}

// Radius returns half the pixel diameter.
func (o Object) Radius() float64 {
	return o.DiameterPx / 2
}
