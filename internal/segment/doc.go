// Package segment isolates object regions in an image as a binary mask.
//
// It defines the Provider interface the detection core consumes and the
// default OtsuProvider implementation, a classical threshold pipeline for
// high-contrast photographs (coins on a plain background). Providers with
// different segmentation strategies can be swapped in without touching the
// detection code.
package segment
