// Package dirty tracks which regions of the console need redrawing.
package dirty

import "strings"

// Region is a set of screen regions.
type Region uint8

const (
	// Output is the scrollback area.
	Output Region = 1 << iota
	// Status is the status bar.
	Status
	// Input is the input line.
	Input

	// None is the empty set.
	None Region = 0
	// All covers every region.
	All = Output | Status | Input
)

// Has returns true if r contains every region in other.
func (r Region) Has(other Region) bool {
	return r&other == other && other != None
}

// String returns the region names joined by "|".
func (r Region) String() string {
	if r == None {
		return "none"
	}
	var parts []string
	if r&Output != 0 {
		parts = append(parts, "output")
	}
	if r&Status != 0 {
		parts = append(parts, "status")
	}
	if r&Input != 0 {
		parts = append(parts, "input")
	}
	return strings.Join(parts, "|")
}

// Tracker accumulates dirty regions between redraws.
// The zero value has nothing dirty.
type Tracker struct {
	pending Region
	redraws uint64
}

// NewTracker returns a tracker with every region dirty, so the first
// redraw paints the whole screen.
func NewTracker() *Tracker {
	return &Tracker{pending: All}
}

// Mark adds regions to the dirty set.
func (t *Tracker) Mark(r Region) {
	t.pending |= r
}

// MarkAll marks the whole screen dirty.
func (t *Tracker) MarkAll() {
	t.pending = All
}

// IsDirty returns true if any region is dirty.
func (t *Tracker) IsDirty() bool {
	return t.pending != None
}

// Pending returns the dirty set without clearing it.
func (t *Tracker) Pending() Region {
	return t.pending
}

// Take returns the dirty set and clears it. Each non-empty take counts as
// one redraw.
func (t *Tracker) Take() Region {
	r := t.pending
	t.pending = None
	if r != None {
		t.redraws++
	}
	return r
}

// Redraws returns how many non-empty sets have been taken.
func (t *Tracker) Redraws() uint64 {
	return t.redraws
}
