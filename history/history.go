// This file is part of Rollback.
//
// Rollback is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rollback is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rollback.  If not, see <https://www.gnu.org/licenses/>.

// Package history provides a fixed-capacity sequence of frame snapshots
// keyed by recency. Pushing beyond capacity evicts the oldest entry.
//
// Entries are looked up by age: age 0 is the most recently pushed entry,
// age k is the entry pushed k positions before the most recent. An entry's
// age increases by one with every subsequent push until it is evicted.
//
// A History is exclusively owned by its containing component. It is not
// safe for concurrent use.
package history

import (
	"fmt"

	"github.com/retroloop/rollback/frame"
)

// History is a bounded buffer of frame snapshots. The capacity is fixed at
// creation. There is no removal other than eviction-on-push.
type History struct {
	// circular array of snapshotted entries. the read position for any age
	// is derived from the monotonic push counter, there are no separate
	// start/end cursors to keep in step
	entries []*frame.Snapshot

	// number of pushes over the lifetime of the History. monotonic
	pushes int
}

// NewHistory is the preferred method of initialisation for the History
// type. The capacity argument is the prediction window of the session.
func NewHistory(capacity int) (*History, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("history: invalid capacity (%d)", capacity)
	}
	return &History{
		entries: make([]*frame.Snapshot, capacity),
	}, nil
}

// Push a snapshot onto the back of the history, evicting the oldest entry
// if the history is at capacity.
func (h *History) Push(s *frame.Snapshot) {
	h.entries[h.pushes%len(h.entries)] = s
	h.pushes++
}

// Front returns the most recently pushed snapshot, or nil if the history is
// empty.
func (h *History) Front() *frame.Snapshot {
	return h.Get(0)
}

// Get returns the snapshot at the given age, or nil if no entry of that age
// is live.
func (h *History) Get(age int) *frame.Snapshot {
	if age < 0 || age >= h.Len() {
		return nil
	}
	return h.entries[(h.pushes-1-age)%len(h.entries)]
}

// Len returns the number of live entries in the history. Never more than
// the capacity.
func (h *History) Len() int {
	if h.pushes < len(h.entries) {
		return h.pushes
	}
	return len(h.entries)
}
