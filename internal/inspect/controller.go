package inspect

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/Dennis3204/Coin-Detection/internal/detect"
	"github.com/Dennis3204/Coin-Detection/internal/imaging"
)

const instructions = "Type '<x> <y>' to inspect an object, 'n' for next image, 'q' to quit."

// Session drives the interactive inspection of one image at a time.
//
// The currently displayed frame and its object list are explicit fields,
// fully replaced on each Inspect call and never merged across images.
// Results are printed to out; the Display only carries frames and events.
type Session struct {
	display Display
	out     io.Writer
	log     *slog.Logger

	frame   image.Image
	objects []detect.Object
}

// NewSession creates a session writing result lines to out.
func NewSession(display Display, out io.Writer, log *slog.Logger) *Session {
	return &Session{
		display: display,
		out:     out,
		log:     log,
	}
}

// Inspect shows an image's detection results and handles user events
// until the user advances or quits. The returned quit flag tells the
// caller to stop iterating the input directory.
func (s *Session) Inspect(img image.Image, objects []detect.Object) (quit bool, err error) {
	s.frame = imaging.Annotate(img, objects)
	s.objects = objects

	if err := s.display.Show(s.frame, instructions); err != nil {
		return false, err
	}

	for {
		ev, err := s.display.NextEvent()
		if err != nil {
			return true, err
		}

		switch ev.Kind {
		case EventQuery:
			if err := s.query(ev.X, ev.Y); err != nil {
				return false, err
			}
		case EventNext:
			return false, nil
		case EventQuit:
			return true, nil
		}
	}
}

// query resolves a pointer event against the current object list. A miss
// is silently ignored, matching the original tool.
func (s *Session) query(x, y float64) error {
	o, ok := detect.LocateObject(s.objects, x, y)
	if !ok {
		s.log.Debug("query missed", "x", x, "y", y)
		return nil
	}

	msg := fmt.Sprintf("Object %d: %.1f px", o.ID, o.DiameterPx)
	if o.DiameterPhys != nil {
		msg += fmt.Sprintf(", %.2f mm", *o.DiameterPhys)
	}
	fmt.Fprintln(s.out, msg)

	return s.display.Show(imaging.Highlight(s.frame, o), "")
}
