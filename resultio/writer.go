package resultio

import (
	"fmt"
	"os"
	"sync"

	"github.com/boxnets/netfold/boxgraph"
	"github.com/boxnets/netfold/netshape"
)

// separator precedes every appended entry in results.txt.
const separator = "--------------------"

// Writer appends net emissions to a results file. It is safe for
// concurrent use by worker's fan-out pool: writes are serialised behind
// a mutex so two workers' emissions never interleave mid-entry.
type Writer struct {
	mu   sync.Mutex
	file *os.File
}

// Open opens (creating if necessary, appending if present) the results
// file at path.
func Open(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("resultio: opening %s: %w", path, err)
	}
	return &Writer{file: f}, nil
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	return w.file.Close()
}

// AppendNet writes one entry: the separator line, the bitmap's
// rendering, and one "Common development with (L, H, D)" line per
// matching target dimension.
func (w *Writer) AppendNet(b netshape.Bitmap, matches []boxgraph.Dimensions) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := fmt.Fprintln(w.file, separator); err != nil {
		return fmt.Errorf("resultio: writing separator: %w", err)
	}
	if _, err := fmt.Fprintln(w.file, Render(b)); err != nil {
		return fmt.Errorf("resultio: writing bitmap: %w", err)
	}
	for _, dim := range matches {
		if _, err := fmt.Fprintf(w.file, "Common development with (%d, %d, %d)\n", dim.L, dim.H, dim.D); err != nil {
			return fmt.Errorf("resultio: writing match line: %w", err)
		}
	}
	return nil
}
