package detect

import (
	"github.com/Dennis3204/Coin-Detection/internal/segment"
)

// ExtractCandidates converts a binary foreground mask into raw circle
// candidates, one per sufficiently large connected region.
//
// Regions are discovered by raster-scanning the mask top-left to
// bottom-right and flood-filling each unvisited foreground pixel with
// 8-connectivity. A region whose pixel area is below MinRegionArea is
// discarded as noise. Each surviving region contributes the minimal
// enclosing circle of its boundary pixels.
//
// IDs are assigned sequentially from 1 in discovery order, which depends
// only on pixel positions and carries no meaning beyond identity; callers
// must not use it as a ranking. When scale > 0 it is interpreted as
// physical units per pixel and DiameterPhys is populated; otherwise
// DiameterPhys is left nil.
//
// The mask is not mutated: the function is pure and deterministic for a
// given (mask, scale) pair.
func ExtractCandidates(mask *segment.Mask, scale float64) []Object {
	width := mask.Width()
	height := mask.Height()
	visited := make([]bool, width*height)

	objects := make([]Object, 0)
	id := 1

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if visited[y*width+x] || !mask.Foreground(x, y) {
				continue
			}

			region := fillRegion(mask, visited, x, y)
			if len(region) < MinRegionArea {
				continue
			}

			center, radius := minEnclosingCircle(boundaryPoints(mask, region))
			obj := Object{
				ID:         id,
				Center:     center,
				DiameterPx: 2 * radius,
			}
			if scale > 0 {
				phys := obj.DiameterPx * scale
				obj.DiameterPhys = &phys
			}
			objects = append(objects, obj)
			id++
		}
	}

	return objects
}

// pixel is an integer mask coordinate used during region traversal.
type pixel struct {
	x, y int
}

// fillRegion collects the connected foreground region containing the start
// pixel, marking every member in visited.
//
// Iterative stack-based fill (not recursive) to stay safe on large blobs.
// Connectivity is 8-connected so diagonally touching pixels form one region.
func fillRegion(mask *segment.Mask, visited []bool, startX, startY int) []pixel {
	width := mask.Width()
	height := mask.Height()

	region := make([]pixel, 0)
	stack := []pixel{{x: startX, y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.x < 0 || p.x >= width || p.y < 0 || p.y >= height {
			continue
		}
		if visited[p.y*width+p.x] || !mask.Foreground(p.x, p.y) {
			continue
		}

		visited[p.y*width+p.x] = true
		region = append(region, p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, pixel{x: p.x + dx, y: p.y + dy})
			}
		}
	}

	return region
}

// boundaryPoints returns the region pixels that touch the background or the
// image edge. Fitting the enclosing circle to the boundary instead of the
// full region keeps the fit input small without changing the result.
func boundaryPoints(mask *segment.Mask, region []pixel) []Point {
	width := mask.Width()
	height := mask.Height()

	points := make([]Point, 0, len(region)/4)
	for _, p := range region {
		onEdge := p.x == 0 || p.y == 0 || p.x == width-1 || p.y == height-1
		if onEdge ||
			!mask.Foreground(p.x-1, p.y) || !mask.Foreground(p.x+1, p.y) ||
			!mask.Foreground(p.x, p.y-1) || !mask.Foreground(p.x, p.y+1) {
			points = append(points, Point{X: float64(p.x), Y: float64(p.y)})
		}
	}
	return points
}
