// Command mandel renders the Mandelbrot set to a grayscale image file.
//
// Usage:
//
//	mandel [flags] FILE PIXELS UPPERLEFT LOWERRIGHT
//
// FILE is the output path; its extension selects the encoding (.png, .jpg,
// .bmp, .tif, with PNG as the fallback). PIXELS is the image size as
// WIDTHxHEIGHT. UPPERLEFT and LOWERRIGHT are the viewport corners on the
// complex plane as RE,IM.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/mandel"
)

func usage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] FILE PIXELS UPPERLEFT LOWERRIGHT\n", prog)
	fmt.Fprintf(os.Stderr, "Example: %s mandel.png 1000x750 -1.20,0.35 -1,0.20\n", prog)
	flag.PrintDefaults()
}

func main() {
	var (
		workers    = flag.Int("workers", 0, "concurrent render workers (0 = available parallelism)")
		limit      = flag.Int("limit", mandel.DefaultIterationLimit, "escape-time iteration limit")
		oversample = flag.Int("oversample", 1, "supersampling factor (1 = off)")
		verbose    = flag.Bool("v", false, "log render progress to stderr")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 4 {
		usage()
		os.Exit(1)
	}

	if *verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	file := flag.Arg(0)
	bounds, err := mandel.ParseBounds(flag.Arg(1))
	if err != nil {
		log.Fatalf("error parsing image dimensions: %v", err)
	}
	upperLeft, err := mandel.ParsePoint(flag.Arg(2))
	if err != nil {
		log.Fatalf("error parsing upper left corner point: %v", err)
	}
	lowerRight, err := mandel.ParsePoint(flag.Arg(3))
	if err != nil {
		log.Fatalf("error parsing lower right corner point: %v", err)
	}

	pm, err := mandel.Render(bounds, mandel.Viewport{UpperLeft: upperLeft, LowerRight: lowerRight},
		mandel.WithWorkers(*workers),
		mandel.WithIterationLimit(*limit),
		mandel.WithOversample(*oversample),
	)
	if err != nil {
		log.Fatalf("error rendering image: %v", err)
	}
	if err := pm.WriteFile(file); err != nil {
		log.Fatalf("error writing image file: %v", err)
	}
}
