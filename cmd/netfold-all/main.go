// Command netfold-all drives the exhaustive search mode (spec §1): it
// emits every common net of the supplied boxes. Flag parsing and the
// load -> run -> exit shape follow dshills/dungo's cmd/dungeongen/main.go.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/boxnets/netfold/boxgraph"
	"github.com/boxnets/netfold/config"
	"github.com/boxnets/netfold/resultio"
	"github.com/boxnets/netfold/worker"
)

var (
	configPath = flag.String("config", "", "path to a YAML configuration file (optional)")
	processes  = flag.Int("processes", 0, "override the configured worker count (0 = use config/default)")
	results    = flag.String("results", "results.txt", "path to append found nets to")
	verbose    = flag.Bool("verbose", false, "print progress to stdout")
)

func main() {
	boxes, rest, err := parseBoxArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		printUsage()
		os.Exit(1)
	}
	if err := flag.CommandLine.Parse(rest); err != nil {
		os.Exit(1)
	}

	if len(boxes) < 2 {
		fmt.Fprintln(os.Stderr, "Error: at least two -b/--box L H D arguments are required")
		printUsage()
		os.Exit(1)
	}

	if err := run(boxes); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(boxes []boxgraph.Dimensions) error {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if *processes > 0 {
		cfg.Processes = *processes
	}

	if *verbose {
		fmt.Printf("source box: %+v\n", boxes[0])
		fmt.Printf("target boxes: %+v\n", boxes[1:])
		fmt.Printf("processes: %d\n", cfg.Processes)
	}

	w, err := resultio.Open(*results)
	if err != nil {
		return fmt.Errorf("opening results file: %w", err)
	}
	defer w.Close()

	var mu sync.Mutex
	count := 0
	err = worker.RunExhaustive(context.Background(), boxes[0], boxes[1:], cfg, func(c worker.Candidate) {
		mu.Lock()
		defer mu.Unlock()
		count++
		if *verbose {
			fmt.Printf("\n%d\n%s\n", count, resultio.Render(c.Bitmap))
		}
		if werr := w.AppendNet(c.Bitmap, c.Matches); werr != nil {
			fmt.Fprintln(os.Stderr, "Error writing result:", werr)
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("found %d common net(s)\n", count)
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: netfold-all -b L H D -b L H D [-b L H D ...] [-config path.yaml] [-processes N] [-results path] [-verbose]")
}
