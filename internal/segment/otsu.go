package segment

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	bildsegment "github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// Default tuning of the Otsu provider, calibrated for coins photographed
// against a light contrasting background at the normalized resolution.
const (
	// DefaultBlurRadius is the Gaussian pre-blur radius.
	DefaultBlurRadius = 2.0

	// DefaultKernelRadius is the structuring-element radius for the
	// morphological cleanup passes.
	DefaultKernelRadius = 2.0

	// DefaultCloseIterations closes small gaps and holes inside blobs.
	DefaultCloseIterations = 2

	// DefaultOpenIterations removes thin specks left after closing.
	DefaultOpenIterations = 1
)

// OtsuProvider is the default Provider: classical threshold segmentation
// for dark objects on a light background.
//
// Pipeline: grayscale → Gaussian blur → inverse binary threshold at the
// Otsu level → morphological close then open. The zero value is not
// usable; construct with NewOtsuProvider.
type OtsuProvider struct {
	BlurRadius      float64
	KernelRadius    float64
	CloseIterations int
	OpenIterations  int
}

// NewOtsuProvider returns an OtsuProvider with the default tuning.
func NewOtsuProvider() *OtsuProvider {
	return &OtsuProvider{
		BlurRadius:      DefaultBlurRadius,
		KernelRadius:    DefaultKernelRadius,
		CloseIterations: DefaultCloseIterations,
		OpenIterations:  DefaultOpenIterations,
	}
}

// Segment produces the foreground mask for an image.
//
// The returned mask has the image's dimensions. Segment never modifies the
// input image and currently cannot fail; the error return is part of the
// Provider contract.
func (p *OtsuProvider) Segment(img image.Image) (*Mask, error) {
	gray := imaging.Grayscale(img)
	blurred := blur.Gaussian(gray, p.BlurRadius)

	// Otsu picks the level separating the two luminance populations. The
	// level itself belongs to the dark class, while Threshold marks
	// pixels >= cut as white, hence the +1. Inverting afterwards makes
	// the dark objects the foreground.
	level := otsuLevel(blurred)
	binary := effect.Invert(bildsegment.Threshold(blurred, level+1))

	cleaned := p.morphClose(binary, p.CloseIterations)
	cleaned = p.morphOpen(cleaned, p.OpenIterations)

	return MaskFromImage(cleaned), nil
}

// morphClose dilates then erodes, closing gaps smaller than the kernel.
// OpenCV-style iterated close: all dilations first, then all erosions.
func (p *OtsuProvider) morphClose(img image.Image, iterations int) image.Image {
	out := img
	for i := 0; i < iterations; i++ {
		out = effect.Dilate(out, p.KernelRadius)
	}
	for i := 0; i < iterations; i++ {
		out = effect.Erode(out, p.KernelRadius)
	}
	return out
}

// morphOpen erodes then dilates, removing specks smaller than the kernel.
func (p *OtsuProvider) morphOpen(img image.Image, iterations int) image.Image {
	out := img
	for i := 0; i < iterations; i++ {
		out = effect.Erode(out, p.KernelRadius)
	}
	for i := 0; i < iterations; i++ {
		out = effect.Dilate(out, p.KernelRadius)
	}
	return out
}

// otsuLevel computes the Otsu threshold level of a grayscale image.
//
// Builds the 256-bin luminance histogram and picks the level maximizing
// the between-class variance of the two populations it separates. For an
// all-uniform image every split is equivalent and level 0 is returned.
func otsuLevel(img image.Image) uint8 {
	bounds := img.Bounds()

	var hist [256]int
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			// Channels are equal after grayscale conversion.
			hist[r>>8]++
			total++
		}
	}
	if total == 0 {
		return 0
	}

	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var sumBg, weightBg float64
	bestLevel := uint8(0)
	bestVariance := -1.0

	for i := 0; i < 256; i++ {
		weightBg += float64(hist[i])
		if weightBg == 0 {
			continue
		}
		weightFg := float64(total) - weightBg
		if weightFg == 0 {
			break
		}

		sumBg += float64(i) * float64(hist[i])
		meanBg := sumBg / weightBg
		meanFg := (sum - sumBg) / weightFg

		variance := weightBg * weightFg * (meanBg - meanFg) * (meanBg - meanFg)
		if variance > bestVariance {
			bestVariance = variance
			bestLevel = uint8(i)
		}
	}

	return bestLevel
}
