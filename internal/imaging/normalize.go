package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// MaxWidth is the working-resolution bound. Images wider than this are
// scaled down before segmentation so the area threshold and overlap
// tolerance behave the same across input resolutions.
const MaxWidth = 800

// Normalize rescales an image to the working resolution.
//
// Images wider than MaxWidth are resized to exactly MaxWidth preserving
// aspect ratio; narrower images pass through unchanged. All downstream
// pixel measurements are in this normalized space, not the original.
func Normalize(img image.Image) image.Image {
	if img.Bounds().Dx() <= MaxWidth {
		return img
	}
	return imaging.Resize(img, MaxWidth, 0, imaging.Lanczos)
}
