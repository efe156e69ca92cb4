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

// Package sync implements the synchronization layer of the rollback core.
// The layer owns a bounded history of frame snapshots and exposes the
// save/advance/load operations that session types build on.
//
// The layer's frame counter increases by one per tick for the lifetime of
// the session. Snapshots are taken before a tick is simulated, so the most
// recent snapshot in the history is always for the frame before the
// counter's current value.
package sync

import (
	"fmt"

	"github.com/retroloop/rollback/curated"
	"github.com/retroloop/rollback/frame"
	"github.com/retroloop/rollback/history"
	"github.com/retroloop/rollback/session"
)

// DefaultWindow is a reasonable prediction window for sessions that have no
// particular requirement. The window bounds both memory use and the
// recoverable rollback depth.
const DefaultWindow = 8

// Layer is the synchronization layer. One Layer is created per session and
// destroyed with it.
type Layer struct {
	numPlayers int
	inputSize  int
	window     int

	// history of snapshots used for rollback. restored from in LoadFrame()
	saved *history.History

	// incremented once per tick by AdvanceFrame()
	frame int

	// the most recent frame confirmed by every remote participant. rollback
	// never needs to go further back than this. reserved for networked
	// session types; the determinism test driver leaves it untouched
	lastConfirmedFrame int
}

// NewLayer is the preferred method of initialisation for the Layer type.
// The window argument is the maximum prediction window. Frames older than
// the window are unrecoverable.
func NewLayer(numPlayers int, inputSize int, window int) (*Layer, error) {
	saved, err := history.NewHistory(window)
	if err != nil {
		return nil, fmt.Errorf("sync: %w", err)
	}

	return &Layer{
		numPlayers:         numPlayers,
		inputSize:          inputSize,
		window:             window,
		saved:              saved,
		lastConfirmedFrame: -1,
	}, nil
}

// Frame returns the current value of the frame counter.
func (lay *Layer) Frame() int {
	return lay.frame
}

// Window returns the prediction window the layer was created with.
func (lay *Layer) Window() int {
	return lay.window
}

// AdvanceFrame increments the frame counter. Pure counter mutation; the
// host is not involved.
func (lay *Layer) AdvanceFrame() {
	lay.frame++
}

// SaveCurrentState captures the host's state into a new snapshot tagged
// with the current frame counter and the given input, and appends it to the
// history. A nil input is recorded as a zero-filled input of the configured
// size.
//
// The input is copied. The caller is free to erase or reuse it after the
// call.
func (lay *Layer) SaveCurrentState(input *frame.Input, host session.Host) {
	var saved *frame.Input
	if input != nil {
		saved = input.Clone()
	} else {
		saved = frame.NewInput(lay.numPlayers, lay.inputSize)
	}

	lay.saved.Push(&frame.Snapshot{
		Frame: lay.frame,
		State: host.SaveState(),
		Input: saved,
	})
}

// LastSavedState returns the most recent snapshot, or nil if nothing has
// been saved yet. Calling it repeatedly without an intervening
// SaveCurrentState() returns the same snapshot.
func (lay *Layer) LastSavedState() *frame.Snapshot {
	return lay.saved.Front()
}

// SetLastConfirmedFrame records the most recent frame confirmed by every
// remote participant. Not used by the determinism test driver.
func (lay *Layer) SetLastConfirmedFrame(f int) {
	lay.lastConfirmedFrame = f
}

// LoadFrame restores the host to the state snapshotted at the target frame.
//
// The request is rejected when the target frame is the current frame (there
// is nothing to roll back to), when it is in the future, or when it is
// older than the prediction window (evicted from history, unrecoverable).
//
// The frame counter is not changed. After a successful load the caller is
// responsible for re-advancing the counter as it resimulates.
func (lay *Layer) LoadFrame(host session.Host, targetFrame int) error {
	if targetFrame == lay.frame {
		return curated.Errorf(session.InvalidRequest, fmt.Sprintf("frame %d is the current frame", targetFrame))
	}
	if targetFrame > lay.frame {
		return curated.Errorf(session.InvalidRequest, fmt.Sprintf("frame %d has not happened yet", targetFrame))
	}
	if targetFrame < 0 || targetFrame < lay.frame-lay.window {
		return curated.Errorf(session.InvalidRequest, fmt.Sprintf("frame %d is outside the prediction window", targetFrame))
	}

	// the newest snapshot is for the frame before the current counter
	// value, so the target's age is one less than the counter difference
	age := lay.frame - targetFrame - 1

	snp := lay.saved.Get(age)
	if snp == nil {
		// the range checks passed so this is a buffer/frame-counter
		// desynchronization. a bug in this package, not a caller mistake
		return curated.Errorf(session.GeneralFailure, fmt.Sprintf("no snapshot at age %d for frame %d", age, targetFrame))
	}
	if snp.Frame != targetFrame {
		return curated.Errorf(session.GeneralFailure, fmt.Sprintf("snapshot at age %d is for frame %d, wanted %d", age, snp.Frame, targetFrame))
	}

	host.LoadState(snp.State)

	return nil
}
