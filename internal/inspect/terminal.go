package inspect

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// TerminalDisplay implements Display over a line-oriented terminal.
//
// Frames are written as PNG to a single scratch file under the system temp
// directory so the user can view them in any image viewer; the file is
// overwritten per frame and is not a results format. Events are parsed
// from input lines:
//
//	<x> <y>   pointer query at those pixel coordinates
//	n         next image
//	q         quit
//
// End of input is treated as quit.
type TerminalDisplay struct {
	scanner   *bufio.Scanner
	out       io.Writer
	log       *slog.Logger
	framePath string
}

// NewTerminalDisplay creates a terminal display reading events from in and
// writing prompts to out.
func NewTerminalDisplay(in io.Reader, out io.Writer, log *slog.Logger) *TerminalDisplay {
	return &TerminalDisplay{
		scanner:   bufio.NewScanner(in),
		out:       out,
		log:       log,
		framePath: filepath.Join(os.TempDir(), "coin-detect-frame.png"),
	}
}

// FramePath returns where the current frame is written.
func (d *TerminalDisplay) FramePath() string { return d.framePath }

// Show writes the frame to the scratch file and prints the caption.
func (d *TerminalDisplay) Show(img image.Image, caption string) error {
	f, err := os.Create(d.framePath)
	if err != nil {
		return fmt.Errorf("failed to create frame file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}

	if caption != "" {
		fmt.Fprintln(d.out, caption)
	}
	fmt.Fprintf(d.out, "Frame: %s\n", d.framePath)
	return nil
}

// NextEvent blocks until an input line parses as an event.
// Unrecognized lines prompt again.
func (d *TerminalDisplay) NextEvent() (Event, error) {
	for {
		fmt.Fprint(d.out, "> ")
		if !d.scanner.Scan() {
			if err := d.scanner.Err(); err != nil {
				return Event{Kind: EventQuit}, fmt.Errorf("failed to read input: %w", err)
			}
			return Event{Kind: EventQuit}, nil
		}

		line := strings.TrimSpace(d.scanner.Text())
		switch line {
		case "":
			continue
		case "n", "next":
			return Event{Kind: EventNext}, nil
		case "q", "quit":
			return Event{Kind: EventQuit}, nil
		}

		fields := strings.Fields(line)
		if len(fields) == 2 {
			x, errX := strconv.ParseFloat(fields[0], 64)
			y, errY := strconv.ParseFloat(fields[1], 64)
			if errX == nil && errY == nil {
				return Event{Kind: EventQuery, X: x, Y: y}, nil
			}
		}

		d.log.Debug("unrecognized input", "line", line)
		fmt.Fprintln(d.out, "Commands: '<x> <y>' to inspect, 'n' for next image, 'q' to quit.")
	}
}
