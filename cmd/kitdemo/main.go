// Command kitdemo demonstrates the kit helper packages.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gogpu/kit"
	"github.com/gogpu/kit/color"
	"github.com/gogpu/kit/fileio"
	"github.com/gogpu/kit/mathutil"
	"github.com/gogpu/kit/winapi"
)

func main() {
	var (
		dir     = flag.String("dir", os.TempDir(), "directory for demo files")
		hex     = flag.String("color", "80FF0000", "color as AARRGGBB hex, or an SVG color name")
		verbose = flag.Bool("v", false, "log debug records to stderr")
		alert   = flag.Bool("alert", false, "show an alert dialog when done")
	)
	flag.Parse()

	if *verbose {
		kit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	packed, err := parseColor(*hex)
	if err != nil {
		log.Fatalf("Invalid color: %v", err)
	}

	path := filepath.Join(*dir, "kitdemo.txt")
	fileDemo(path)
	colorDemo(packed)
	lerpDemo()

	if *alert {
		err := winapi.ShowAlert("kitdemo finished", winapi.SeverityInfo, winapi.WithCaption("kitdemo"))
		if err != nil {
			log.Printf("Alert not shown: %v", err)
		}
	}
}

func parseColor(s string) (uint32, error) {
	if v, ok := color.Named(s); ok {
		return v, nil
	}
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func fileDemo(path string) {
	lines := []string{"first line", "second line", "third line"}
	if !fileio.WriteLines(path, lines) {
		log.Fatalf("Failed to write %s", path)
	}

	got, ok := fileio.ReadLines(path).Get()
	if !ok {
		log.Fatalf("Failed to read %s", path)
	}
	fmt.Printf("%s: %d lines\n", path, len(got))

	if block, ok := fileio.ReadBlock(path, 6, 4).Get(); ok {
		fmt.Printf("block at 6: %q\n", block)
	}
	if _, ok := fileio.ReadBlock(path, 0, 1<<20).Get(); !ok {
		fmt.Println("block of 1 MiB: absent (short read)")
	}
}

func colorDemo(hex uint32) {
	r, g, b, a := color.HexToRGBAInt(hex)
	fmt.Printf("%#08x -> r=%d g=%d b=%d a=%d\n", hex, r, g, b, a)

	rf, gf, bf, af := color.HexToRGBAFloat(hex)
	fmt.Printf("%#08x -> r=%.3f g=%.3f b=%.3f a=%.3f\n", hex, rf, gf, bf, af)
	fmt.Printf("repacked: %#08x\n", color.RGBAToHex(rf, gf, bf, af))
}

func lerpDemo() {
	for _, t := range []float64{0, 0.25, 0.5, 1, 1.5} {
		fmt.Printf("lerp(10, 20, %.2f) = %.2f\n", t, mathutil.Lerp(10.0, 20.0, t))
	}
}
