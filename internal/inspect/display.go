package inspect

import "image"

// EventKind classifies a user action during inspection.
type EventKind int

const (
	// EventQuery is a pointer query at image coordinates (X, Y).
	EventQuery EventKind = iota

	// EventNext advances to the next image.
	EventNext

	// EventQuit ends the run.
	EventQuit
)

// Event is one user action delivered by a Display.
type Event struct {
	Kind EventKind

	// X, Y are set for EventQuery, in normalized-image pixel coordinates.
	X float64
	Y float64
}

// Display abstracts the presentation surface the session drives.
//
// Show presents a frame with an instruction caption; NextEvent blocks for
// the next user action. The core never talks to a concrete UI directly,
// only through this interface.
type Display interface {
	Show(img image.Image, caption string) error
	NextEvent() (Event, error)
}
