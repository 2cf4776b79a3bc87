package main

import (
	"fmt"
	"strconv"

	"github.com/boxnets/netfold/boxgraph"
)

// parseBoxArgs scans args for repeated "-b"/"--box" flags, each followed
// by three integer tokens (L H D), mirroring
// original_source/python/arg_parser.py's `nargs=3` box argument. Go's
// flag package has no multi-token flag support, so box arguments are
// pulled out by hand here; everything else is returned unconsumed for
// flag.CommandLine.Parse to handle.
func parseBoxArgs(args []string) (boxes []boxgraph.Dimensions, rest []string, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg != "-b" && arg != "--box" {
			rest = append(rest, arg)
			continue
		}
		if i+3 >= len(args) {
			return nil, nil, fmt.Errorf("%s requires three integer arguments: L H D", arg)
		}
		dim, err := parseDims(args[i+1], args[i+2], args[i+3])
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", arg, err)
		}
		boxes = append(boxes, dim)
		i += 3
	}
	return boxes, rest, nil
}

func parseDims(l, h, d string) (boxgraph.Dimensions, error) {
	li, err := strconv.Atoi(l)
	if err != nil {
		return boxgraph.Dimensions{}, fmt.Errorf("invalid L %q: %w", l, err)
	}
	hi, err := strconv.Atoi(h)
	if err != nil {
		return boxgraph.Dimensions{}, fmt.Errorf("invalid H %q: %w", h, err)
	}
	di, err := strconv.Atoi(d)
	if err != nil {
		return boxgraph.Dimensions{}, fmt.Errorf("invalid D %q: %w", d, err)
	}
	dim := boxgraph.Dimensions{L: li, H: hi, D: di}
	if err := dim.Validate(); err != nil {
		return boxgraph.Dimensions{}, err
	}
	return dim, nil
}
