// Command gentables builds the rotated-bitboard lookup tables, checks them
// and writes them out as source for the consuming engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hailam/rotboard/internal/board"
	"github.com/hailam/rotboard/internal/emit"
	"github.com/hailam/rotboard/internal/render"
	"github.com/hailam/rotboard/internal/rotation"
	"github.com/hailam/rotboard/internal/tables"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	out        = flag.String("out", "-", "output file, - for stdout")
	format     = flag.String("format", "cpp", "output format: cpp or go")
	pkg        = flag.String("package", "tables", "package name for -format go")
	guard      = flag.String("guard", "", "include guard for -format cpp")
	only       = flag.String("tables", "", "comma separated table names to emit (default all)")
	workers    = flag.Int("workers", 0, "squares generated concurrently (0 = GOMAXPROCS)")
	report     = flag.Bool("report", false, "print table fingerprints and skip emission")

	renderOut = flag.String("render", "", "render one entry to this .svg or .png file and exit")
	square    = flag.String("square", "e4", "square of the rendered entry")
	axis      = flag.String("axis", "0", "axis of the rendered entry: 0, 45, 90, 135")
	pattern   = flag.Uint("pattern", 0, "row occupancy pattern of the rendered entry (0-255)")
	pinBack   = flag.Bool("pinback", false, "render the pin-back table instead of the attack table")
	size      = flag.Int("size", 480, "png size in pixels")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("gentables: ")

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	if err := run(context.Background()); err != nil {
		pprof.StopCPUProfile()
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context) error {
	start := time.Now()
	set, err := tables.Build(ctx, tables.Options{Workers: *workers})
	if err != nil {
		return err
	}
	log.Printf("tables built and verified in %s", time.Since(start).Round(time.Millisecond))

	switch {
	case *report:
		printReport(os.Stdout, set)
		return nil
	case *renderOut != "":
		return renderEntry(set)
	}
	return emitTables(set)
}

func printReport(w io.Writer, set *tables.Set) {
	var total int
	for _, fp := range set.Fingerprints() {
		fmt.Fprintf(w, "%-20s %9s entries %9s  %016x\n",
			fp.Name, humanize.Comma(int64(fp.Entries)), humanize.IBytes(uint64(fp.Bytes)), fp.Sum)
		total += fp.Bytes
	}
	fmt.Fprintf(w, "%-20s %28s\n", "total", humanize.IBytes(uint64(total)))
}

func emitTables(set *tables.Set) error {
	f, err := emit.ParseFormat(*format)
	if err != nil {
		return err
	}
	opts := emit.Options{Format: f, Package: *pkg, Guard: *guard}
	if *only != "" {
		opts.Only = strings.Split(*only, ",")
	}

	w := io.Writer(os.Stdout)
	if *out != "-" {
		file, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}
	if err := emit.Write(w, set, opts); err != nil {
		return err
	}
	if *out != "-" {
		log.Printf("wrote %s", *out)
	}
	return nil
}

func renderEntry(set *tables.Set) error {
	sq, err := board.ParseSquare(*square)
	if err != nil {
		return err
	}
	a, err := rotation.ParseAxis(*axis)
	if err != nil {
		return err
	}
	if *pattern > 0xff {
		return fmt.Errorf("pattern %d out of range", *pattern)
	}
	p := uint8(*pattern)

	d := render.Diagram{
		Origin:   sq,
		Marked:   set.Attack[sq][p][a],
		Blockers: rotation.Expand(sq, a, p),
	}
	if *pinBack {
		d.Marked = set.PinBack[sq][p][a]
	}

	file, err := os.Create(*renderOut)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(*renderOut)) {
	case ".png":
		err = render.PNG(file, d, *size)
	case ".svg":
		render.SVG(file, d)
	default:
		err = fmt.Errorf("render: unsupported extension %q", filepath.Ext(*renderOut))
	}
	if err != nil {
		return err
	}
	log.Printf("rendered %s axis %s pattern %#02x to %s", sq, a, p, *renderOut)
	return nil
}
