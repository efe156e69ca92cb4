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

package demo_test

import (
	"testing"

	"github.com/retroloop/rollback/curated"
	"github.com/retroloop/rollback/demo"
	"github.com/retroloop/rollback/frame"
	"github.com/retroloop/rollback/session"
	"github.com/retroloop/rollback/synctest"
	"github.com/retroloop/rollback/test"
)

var _ session.Host = (*demo.Game)(nil)

// the same sequence of inputs always produces the same checksums
func TestDeterminism(t *testing.T) {
	a := demo.NewGame(2)
	b := demo.NewGame(2)

	inp := frame.NewInput(2, 1)
	for i := 0; i < 100; i++ {
		inp.Erase()
		inp.Merge(0, []byte{byte(i % 16)})
		inp.Merge(1, []byte{byte((i / 2) % 16)})

		a.AdvanceFrame(inp, 0)
		b.AdvanceFrame(inp, 0)

		sa := a.SaveState()
		sb := b.SaveState()
		test.ExpectSuccess(t, sa.Checksummed)
		test.ExpectEquality(t, sa.Checksum, sb.Checksum)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g := demo.NewGame(2)

	inp := frame.NewInput(2, 1)
	inp.Merge(0, []byte{demo.MoveRight})
	for i := 0; i < 10; i++ {
		g.AdvanceFrame(inp, 0)
	}

	saved := g.SaveState()

	// wander off
	for i := 0; i < 10; i++ {
		g.AdvanceFrame(inp, 0)
	}
	test.ExpectInequality(t, g.SaveState().Checksum, saved.Checksum)

	// loading restores a byte-identical state
	g.LoadState(saved)
	test.ExpectEquality(t, g.SaveState().Checksum, saved.Checksum)
	test.ExpectEquality(t, g.Frame(), 10)
}

func TestMovementWraps(t *testing.T) {
	g := demo.NewGame(1)

	inp := frame.NewInput(1, 1)
	inp.Merge(0, []byte{demo.MoveLeft})

	// starting at x=4, moving left crosses the edge after five ticks
	for i := 0; i < 5; i++ {
		g.AdvanceFrame(inp, 0)
	}
	x, _ := g.PlayerPosition(0)
	test.ExpectEquality(t, x, demo.GridWidth-1)
}

// the demo simulation survives a sync test. this is the property the demo
// exists to demonstrate
func TestUnderSyncTest(t *testing.T) {
	sess, err := synctest.NewSession(2, 1, 7, 8)
	test.ExpectSuccess(t, err)

	g := demo.NewGame(2)
	test.ExpectSuccess(t, sess.StartSession())

	for i := 0; i < 200; i++ {
		test.ExpectSuccess(t, sess.AddLocalInput(0, []byte{byte(i % 16)}))
		test.ExpectSuccess(t, sess.AddLocalInput(1, []byte{byte((i / 3) % 16)}))
		test.ExpectSuccess(t, sess.AdvanceFrame(g))
		test.ExpectEquality(t, g.Frame(), i+1)
	}
}

// a deliberately broken demo simulation is caught
func TestNondeterministicUnderSyncTest(t *testing.T) {
	sess, err := synctest.NewSession(1, 1, 7, 8)
	test.ExpectSuccess(t, err)

	g := demo.NewGame(1)
	g.Nondeterministic = true
	test.ExpectSuccess(t, sess.StartSession())

	var advErr error
	for i := 0; i < 50; i++ {
		test.ExpectSuccess(t, sess.AddLocalInput(0, []byte{demo.MoveRight}))
		if advErr = sess.AdvanceFrame(g); advErr != nil {
			break
		}
	}

	test.ExpectSuccess(t, curated.Is(advErr, session.DesyncDetected))
}
