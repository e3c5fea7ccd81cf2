package segment

import "image"

// Provider turns a normalized image into a binary foreground mask.
//
// The contract the detection core relies on: the mask has the same
// dimensions as the input image, and object regions appear as filled
// foreground blobs. Holes inside blobs may or may not be closed; the
// downstream overlap resolver tolerates either.
type Provider interface {
	Segment(img image.Image) (*Mask, error)
}
