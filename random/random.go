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

// Package random provides random numbers that a host simulation can consume
// without breaking the determinism precondition of the rollback core.
// Values are derived from the simulation's own frame counter, so a
// resimulated frame sees exactly the numbers the frame saw the first time
// it was simulated.
//
// Hosts that want randomness from any other source must record the values
// in their saved state. Randomness that is neither frame-keyed nor part of
// the state will desynchronize.
package random

import (
	"math/rand"
)

// Framer is implemented by hosts that can report their current frame
// number.
type Framer interface {
	Frame() int
}

// Random is a random number generator keyed to the frame counter of the
// host simulation.
type Random struct {
	framer Framer

	// mixed into every value. a session seed can make runs differ from one
	// another while individual frames within a run stay reproducible.
	// leave at zero for normalised instances where values must be
	// predictable across runs
	Seed int64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(framer Framer) *Random {
	return &Random{
		framer: framer,
	}
}

// Value returns a deterministic random value for the current frame. The tap
// argument separates independent streams within a frame: two calls on the
// same frame with the same tap return the same value, calls with different
// taps do not.
func (rnd *Random) Value(tap int) uint32 {
	src := rand.NewSource(rnd.Seed + int64(rnd.framer.Frame())<<16 + int64(tap))
	return rand.New(src).Uint32()
}

// Intn is like Value but returns a value in the interval [0, n).
func (rnd *Random) Intn(tap int, n int) int {
	src := rand.NewSource(rnd.Seed + int64(rnd.framer.Frame())<<16 + int64(tap))
	return rand.New(src).Intn(n)
}
