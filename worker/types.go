package worker

import (
	"sync"

	"github.com/boxnets/netfold/boxgraph"
	"github.com/boxnets/netfold/netshape"
	"github.com/boxnets/netfold/resultio"
)

// Candidate is one canonical bitmap paired with the target dimensions it
// was confirmed to fold onto (spec §6's "membership evidence").
type Candidate struct {
	Bitmap  netshape.Bitmap
	Matches []boxgraph.Dimensions
}

// seenSet is the spec §5 `seen` set: a mutex-guarded linearisable set of
// canonical bitmaps emitted so far, keyed by their rendered string.
// Grounded on lvlath/core's mutex-guarded maps rather than sync.Map,
// since entries here are looked up and inserted together under one
// critical section (check-then-add), which sync.Map does not make
// atomic without its own extra bookkeeping.
type seenSet struct {
	mu   sync.Mutex
	keys map[string]bool
}

func newSeenSet() *seenSet {
	return &seenSet{keys: make(map[string]bool)}
}

// addIfNew reports whether b was not already present, inserting it if
// so. The check and insert happen under the same lock, so concurrent
// callers never both observe "new" for the same bitmap.
func (s *seenSet) addIfNew(b netshape.Bitmap) bool {
	key := resultio.Render(b)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keys[key] {
		return false
	}
	s.keys[key] = true
	return true
}

// disabledSeenSet never remembers anything: every bitmap looks new.
// Backs config.Config.Dedup == false, spec §5's "option to disable
// deduplication for pathological inputs."
type disabledSeenSet struct{}

func (disabledSeenSet) addIfNew(netshape.Bitmap) bool { return true }

type deduper interface {
	addIfNew(netshape.Bitmap) bool
}

func newDeduper(enabled bool) deduper {
	if !enabled {
		return disabledSeenSet{}
	}
	return newSeenSet()
}
