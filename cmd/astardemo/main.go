// astardemo is a small CLI around pkg/astar: it loads an ASCII grid scene,
// runs one A* query, and prints or renders the result.
//
// Usage:
//
//	astardemo --scene <path> [--out <path.pgm>] [--budget <fraction>] [--interactive] [--transcript <path>]
//
// In --interactive mode, every command and its output is appended to a
// transcript file (default astardemo.transcript, override with
// --transcript), atomic-written after each reset and on exit.
//
// Commands (in --interactive mode):
//
//	run                   Run one query from the scene's start to its goal
//	path                  Print the path reconstructed by the last run
//	image [path.pgm]      Print a heatmap; also write it to path.pgm if given
//	reset                 Discard the current buffer and start a fresh one
//	help                  Show this help
//	exit / quit / q       Exit
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/cloudwu/pathfinding/internal/grid"
	"github.com/cloudwu/pathfinding/internal/scene"
	"github.com/cloudwu/pathfinding/pkg/astar"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var errMissingScene = errors.New("astardemo: --scene is required")

func run() error {
	fs := flag.NewFlagSet("astardemo", flag.ExitOnError)

	scenePath := fs.String("scene", "", "path to a .scene.hujson file")
	outPath := fs.String("out", "", "write the explored-region heatmap as a PGM image to this path")
	budget := fs.Float64("budget", 0, "override the scene's exhaustion-budget fraction (0 < f <= 1)")
	interactive := fs.Bool("interactive", false, "drop into an interactive REPL after loading the scene")
	transcriptPath := fs.String("transcript", "", "path to write the REPL transcript to (interactive mode only; defaults to astardemo.transcript)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: astardemo --scene <path> [--out <path.pgm>] [--budget <fraction>] [--interactive] [--transcript <path>]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if *scenePath == "" {
		fs.Usage()
		return errMissingScene
	}

	sc, err := scene.Load(*scenePath)
	if err != nil {
		return fmt.Errorf("loading scene: %w", err)
	}

	if *budget != 0 {
		sc.BudgetFraction = *budget
	}

	d, err := newDemo(sc)
	if err != nil {
		return fmt.Errorf("preparing demo: %w", err)
	}

	if *interactive {
		path := *transcriptPath
		if path == "" {
			path = "astardemo.transcript"
		}

		repl := &REPL{demo: d, transcriptPath: path}
		return repl.Run()
	}

	d.run()
	d.printResult(os.Stdout)

	if *outPath != "" {
		if err := d.writeImage(*outPath); err != nil {
			return fmt.Errorf("writing heatmap: %w", err)
		}
	}

	return nil
}

// demo ties a parsed scene to a reusable astar.State. Calling reset gets a
// fresh buffer for the same scene without re-parsing it.
type demo struct {
	scene scene.Scene
	grid  *grid.Grid
	state *astar.State

	length int
	ranOK  bool
}

func newDemo(sc scene.Scene) (*demo, error) {
	d := &demo{scene: sc}

	g, err := sc.Grid()
	if err != nil {
		return nil, err
	}
	d.grid = g

	if err := d.reset(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *demo) reset() error {
	var sz uint64
	var err error

	if d.scene.Capacity != 0 {
		sz, err = astar.SizeForCapacity(d.scene.Capacity)
	} else {
		extent := d.grid.Width
		if d.grid.Height > extent {
			extent = d.grid.Height
		}
		sz, err = astar.Size(extent)
	}
	if err != nil {
		return fmt.Errorf("sizing buffer: %w", err)
	}

	st, err := astar.New(make([]byte, sz))
	if err != nil {
		return fmt.Errorf("initializing buffer: %w", err)
	}

	if d.scene.BudgetFraction != 0 {
		if err := st.SetBudgetFraction(d.scene.BudgetFraction); err != nil {
			return fmt.Errorf("applying scene budget override: %w", err)
		}
	}

	d.state = st
	d.ranOK = false
	d.length = 0

	return nil
}

func (d *demo) run() {
	length, err := d.state.Find(astar.Args{
		Start:     d.grid.Start,
		Goal:      d.grid.Goal,
		Neighbors: d.grid.Neighbors(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "query failed: %v\n", err)
		return
	}

	d.length = length
	d.ranOK = true
}

func (d *demo) printResult(w io.Writer) {
	if !d.ranOK {
		fmt.Fprintln(w, "no query has run yet")
		return
	}

	switch {
	case d.length > 0:
		fmt.Fprintf(w, "path found: %d nodes\n", d.length)
	case d.length < 0:
		fmt.Fprintf(w, "budget exhausted: best-effort path to nearest frontier, %d nodes\n", -d.length)
	default:
		fmt.Fprintln(w, "unreachable: no path from start")
	}

	path := d.path()
	if len(path) > 0 {
		fmt.Fprintln(w, d.grid.Render(path))
	}
}

func (d *demo) path() []astar.Coord {
	if !d.ranOK {
		return nil
	}

	n, err := d.state.Path(nil)
	if err != nil || n == 0 {
		return nil
	}

	out := make([]astar.Coord, n)
	if _, err := d.state.Path(out); err != nil {
		return nil
	}

	return out
}

func (d *demo) heatmap() string {
	image := make([]byte, d.grid.Width*d.grid.Height)
	d.state.Image(image, d.grid.Width, d.grid.Height, d.grid.DecodePoint())

	return d.grid.RenderHeatmap(image)
}

func (d *demo) writeImage(path string) error {
	image := make([]byte, d.grid.Width*d.grid.Height)
	d.state.Image(image, d.grid.Width, d.grid.Height, d.grid.DecodePoint())

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "P5\n%d %d\n255\n", d.grid.Width, d.grid.Height)
	buf.Write(image)

	return atomic.WriteFile(path, bytes.NewReader(buf.Bytes()))
}

// REPL is the interactive command loop around a demo. Every command and its
// output is appended to an in-memory transcript, atomic-written to
// transcriptPath on reset and on exit so a crash mid-session loses at most
// the commands since the last checkpoint, not the whole log.
type REPL struct {
	demo  *demo
	liner *liner.State

	transcriptPath string
	transcript     bytes.Buffer
}

func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	fmt.Printf("astardemo (%dx%d grid)\n", r.demo.grid.Width, r.demo.grid.Height)
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := r.liner.Prompt("astardemo> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Println("\nBye!")
				return r.saveTranscript()
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)
		fmt.Fprintf(&r.transcript, "> %s\n", line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		w := io.MultiWriter(os.Stdout, &r.transcript)

		switch cmd {
		case "exit", "quit", "q":
			fmt.Fprintln(w, "Bye!")
			return r.saveTranscript()

		case "help", "?":
			r.printHelp(w)

		case "run":
			r.demo.run()
			r.demo.printResult(w)

		case "path":
			r.cmdPath(w)

		case "image":
			r.cmdImage(w, args)

		case "reset":
			if err := r.demo.reset(); err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
			} else {
				fmt.Fprintln(w, "OK: buffer reset")
			}

			if err := r.saveTranscript(); err != nil {
				fmt.Printf("Error saving transcript: %v\n", err)
			}

		default:
			fmt.Fprintf(w, "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (r *REPL) saveTranscript() error {
	return atomic.WriteFile(r.transcriptPath, bytes.NewReader(r.transcript.Bytes()))
}

func (r *REPL) printHelp(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                   Run one query from the scene's start to its goal")
	fmt.Fprintln(w, "  path                  Print the path reconstructed by the last run")
	fmt.Fprintln(w, "  image [path.pgm]      Print a heatmap; also write it to path.pgm if given")
	fmt.Fprintln(w, "  reset                 Discard the current buffer and start a fresh one")
	fmt.Fprintln(w, "  help                  Show this help")
	fmt.Fprintln(w, "  exit / quit / q       Exit")
}

func (r *REPL) cmdPath(w io.Writer) {
	path := r.demo.path()
	if len(path) == 0 {
		fmt.Fprintln(w, "(no path; run a query first)")
		return
	}

	fmt.Fprintln(w, r.demo.grid.Render(path))
}

func (r *REPL) cmdImage(w io.Writer, args []string) {
	if !r.demo.ranOK {
		fmt.Fprintln(w, "(no query has run yet)")
		return
	}

	fmt.Fprintln(w, r.demo.heatmap())

	if len(args) == 0 {
		return
	}

	if err := r.demo.writeImage(args[0]); err != nil {
		fmt.Fprintf(w, "Error writing image: %v\n", err)
		return
	}

	fmt.Fprintf(w, "OK: wrote %s\n", args[0])
}

func (r *REPL) completer(line string) []string {
	commands := []string{"run", "path", "image", "reset", "help", "exit", "quit", "q"}

	var completions []string

	lower := strings.ToLower(line)
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}

	return completions
}

