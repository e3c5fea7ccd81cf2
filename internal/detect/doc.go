// Package detect fits circles to segmented image regions and deduplicates
// overlapping detections.
//
// This is the measurement core of the tool. Given a binary foreground mask
// (see the segment package) it produces one Object per physical coin-like
// region:
//
//  1. ExtractCandidates flood-fills connected foreground regions, rejects
//     those below MinRegionArea, and fits each survivor's minimal enclosing
//     circle (Welzl's algorithm over the region boundary).
//  2. FilterOverlaps removes candidates that are duplicate views of the
//     same object, keeping the largest circle per cluster.
//  3. LocateObject answers pointer queries against a result set.
//
// # Coordinate system
//
// All coordinates are in pixels of the normalized working image (origin
// top-left, X rightward, Y downward). Centers are float64 and keep the
// sub-pixel precision of the circle fit.
//
// # Determinism
//
// Extraction order follows the raster scan, the enclosing-circle fit uses a
// fixed shuffle seed, and the resolver's sort breaks diameter ties by ID,
// so identical inputs always produce identical results regardless of how
// the candidate slice is permuted before filtering.
package detect
