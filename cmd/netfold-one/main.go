// Command netfold-one drives the heuristic search mode (spec §1): it
// searches boxes in randomised order, scoring partial candidates, until
// a single common net of every supplied box is found.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"flag"

	"github.com/boxnets/netfold/boxgraph"
	"github.com/boxnets/netfold/config"
	"github.com/boxnets/netfold/resultio"
	"github.com/boxnets/netfold/worker"
)

var (
	configPath = flag.String("config", "", "path to a YAML configuration file (optional)")
	processes  = flag.Int("processes", 0, "override the configured worker count (0 = use config/default)")
	threshold  = flag.Int("threshold", -1, "override the configured score threshold (negative = use config/default)")
	results    = flag.String("results", "results.txt", "path to append the found net to")
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
	if *threshold >= 0 {
		cfg.ScoreThreshold = *threshold
	}

	if *verbose {
		fmt.Printf("source box: %+v\n", boxes[0])
		fmt.Printf("target boxes: %+v\n", boxes[1:])
		fmt.Printf("processes: %d, score threshold: %d\n", cfg.Processes, cfg.ScoreThreshold)
	}

	candidate, ok, err := worker.RunHeuristic(context.Background(), boxes[0], boxes[1:], cfg, time.Now().UnixNano())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no common net found")
		return nil
	}

	if *verbose {
		fmt.Println(resultio.Render(candidate.Bitmap))
	}

	w, err := resultio.Open(*results)
	if err != nil {
		return fmt.Errorf("opening results file: %w", err)
	}
	defer w.Close()

	if err := w.AppendNet(candidate.Bitmap, candidate.Matches); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	fmt.Println("found a common net")
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: netfold-one -b L H D -b L H D [-b L H D ...] [-config path.yaml] [-processes N] [-threshold N] [-results path] [-verbose]")
}
