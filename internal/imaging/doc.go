// Package imaging provides image I/O and rendering support for the
// measurement pipeline.
//
// It covers the glue around the detection core: loading and caching
// decoded images, listing an input directory, normalizing images to the
// working resolution (see MaxWidth), and rendering annotated result
// frames. All operations work with standard Go image.Image types and use
// a coordinate system where (0,0) is the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The rendering functions
// are pure with respect to their inputs: they draw on copies and never
// mutate the source image.
//
// # Performance Considerations
//
// For repeated operations on the same image, use ImageCache to avoid
// redundant disk reads. Large images may consume significant memory when
// cached; Evict images once they are no longer displayed.
package imaging
