package main

import (
	"fmt"
	"strconv"

	"github.com/boxnets/netfold/boxgraph"
)

// parseBoxArgs scans args for repeated "-b"/"--box" flags, each followed
// by three integer tokens (L H D); identical in shape to
// netfold-all's parser, duplicated here because the two binaries share
// no internal package and spec §1 treats the CLI surface as a thin,
// per-entry-point collaborator.
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
