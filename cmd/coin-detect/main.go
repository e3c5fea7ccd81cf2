// Command coin-detect measures circular objects in a directory of photos.
//
// Each image is normalized, segmented, and reduced to a deduplicated list
// of circle detections, then presented for interactive inspection. Results
// go to stdout; logs go to stderr.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Dennis3204/Coin-Detection/internal/detect"
	"github.com/Dennis3204/Coin-Detection/internal/imaging"
	"github.com/Dennis3204/Coin-Detection/internal/inspect"
	"github.com/Dennis3204/Coin-Detection/internal/segment"
)

func main() {
	inputDir := flag.String("input-dir", "test_IMG", "folder with input images")
	scale := flag.Float64("scale", 0, "physical units (mm) per pixel; 0 disables physical output")
	tol := flag.Float64("tol", detect.DefaultOverlapTol, "overlap tolerance as a fraction of a kept circle's diameter")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*inputDir, *scale, *tol, log); err != nil {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(inputDir string, scale, tol float64, log *slog.Logger) error {
	paths, err := imaging.ListImages(inputDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		log.Warn("no files in input directory", "dir", inputDir)
		return nil
	}

	cache := imaging.NewImageCache()
	provider := segment.NewOtsuProvider()
	display := inspect.NewTerminalDisplay(os.Stdin, os.Stdout, log)
	session := inspect.NewSession(display, os.Stdout, log)

	for _, path := range paths {
		img, err := cache.Load(path)
		if err != nil {
			// Unreadable files are reported and skipped; the rest of the
			// directory still gets processed.
			log.Warn("skipping unreadable image", "path", path, "error", err)
			continue
		}

		norm := imaging.Normalize(img)
		mask, err := provider.Segment(norm)
		if err != nil {
			log.Warn("segmentation failed", "path", path, "error", err)
			cache.Evict(path)
			continue
		}

		candidates := detect.ExtractCandidates(mask, scale)
		objects := detect.FilterOverlaps(candidates, tol)
		log.Debug("processed image",
			"path", path, "candidates", len(candidates), "objects", len(objects))

		fmt.Printf("\n%s: detected %d objects.\n", filepath.Base(path), len(objects))

		quit, err := session.Inspect(norm, objects)
		cache.Evict(path)
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}

	return nil
}
