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

package synctest_test

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/retroloop/rollback/curated"
	"github.com/retroloop/rollback/session"
	"github.com/retroloop/rollback/synctest"
	"github.com/retroloop/rollback/test"
)

var _ session.Session = (*synctest.Session)(nil)

const (
	numPlayers    = 2
	inputSize     = 4
	checkDistance = 7
	window        = 8
)

func newSession(t *testing.T) *synctest.Session {
	t.Helper()
	sess, err := synctest.NewSession(numPlayers, inputSize, checkDistance, window)
	test.ExpectSuccess(t, err)
	return sess
}

func leUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func TestNewSessionValidation(t *testing.T) {
	_, err := synctest.NewSession(0, inputSize, checkDistance, window)
	test.ExpectSuccess(t, curated.Is(err, session.InvalidRequest))

	_, err = synctest.NewSession(numPlayers, 0, checkDistance, window)
	test.ExpectSuccess(t, curated.Is(err, session.InvalidRequest))

	_, err = synctest.NewSession(numPlayers, inputSize, -1, window)
	test.ExpectSuccess(t, curated.Is(err, session.InvalidRequest))

	// the check distance must leave room in the window for the frames that
	// are compared
	_, err = synctest.NewSession(numPlayers, inputSize, window, window)
	test.ExpectSuccess(t, curated.Is(err, session.InvalidRequest))
}

func TestAddPlayer(t *testing.T) {
	sess := newSession(t)

	h, err := sess.AddPlayer(session.NewPlayer(session.PlayerLocal, 0))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h, 0)

	h, err = sess.AddPlayer(session.NewPlayer(session.PlayerLocal, 1))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h, 1)
}

func TestAddPlayerInvalidHandle(t *testing.T) {
	sess := newSession(t)

	_, err := sess.AddPlayer(session.NewPlayer(session.PlayerLocal, numPlayers+1))
	test.ExpectSuccess(t, curated.Is(err, session.InvalidPlayerHandle))
}

func TestAddPlayerRemote(t *testing.T) {
	sess := newSession(t)

	// remote players have no place in a sync test
	_, err := sess.AddPlayer(session.NewPlayer(session.PlayerRemote, 0))
	test.ExpectSuccess(t, curated.Is(err, session.InvalidRequest))
}

func TestStartSession(t *testing.T) {
	sess := newSession(t)

	test.ExpectSuccess(t, sess.StartSession())

	// starting is irreversible and cannot happen twice
	err := sess.StartSession()
	test.ExpectSuccess(t, curated.Is(err, session.InvalidRequest))
}

func TestAddLocalInputNotRunning(t *testing.T) {
	sess := newSession(t)

	// input before the session has started always fails, even with an
	// invalid handle
	err := sess.AddLocalInput(0, leUint32(0))
	test.ExpectSuccess(t, curated.Is(err, session.NotSynchronized))

	err = sess.AddLocalInput(numPlayers+1, leUint32(0))
	test.ExpectSuccess(t, curated.Is(err, session.NotSynchronized))
}

func TestAddLocalInputInvalidHandle(t *testing.T) {
	sess := newSession(t)
	test.ExpectSuccess(t, sess.StartSession())

	err := sess.AddLocalInput(numPlayers+1, leUint32(0))
	test.ExpectSuccess(t, curated.Is(err, session.InvalidPlayerHandle))
}

func TestInputMerge(t *testing.T) {
	sess := newSession(t)
	game := &stubGame{}

	test.ExpectSuccess(t, sess.StartSession())

	// two submissions for the same handle within one tick are OR-merged
	test.ExpectSuccess(t, sess.AddLocalInput(0, []byte{0x0f, 0x00, 0x01, 0x00}))
	test.ExpectSuccess(t, sess.AddLocalInput(0, []byte{0xf0, 0x00, 0x02, 0x00}))

	// a submission for a different handle lands in its own slice
	test.ExpectSuccess(t, sess.AddLocalInput(1, []byte{0x55, 0x00, 0x00, 0x00}))

	test.ExpectSuccess(t, sess.AdvanceFrame(game))

	test.ExpectEquality(t, len(game.lastInput), numPlayers*inputSize)
	test.ExpectEquality(t, game.lastInput[0], 0xff)
	test.ExpectEquality(t, game.lastInput[2], 0x03)
	test.ExpectEquality(t, game.lastInput[4], 0x55)

	// every other byte is untouched
	for _, i := range []int{1, 3, 5, 6, 7} {
		test.ExpectEquality(t, game.lastInput[i], 0)
	}

	// the input was erased after the tick. a tick with no submissions hands
	// all-zero input to the host
	test.ExpectSuccess(t, sess.AdvanceFrame(game))
	for i := range game.lastInput {
		test.ExpectEquality(t, game.lastInput[i], 0)
	}
}

// the scenario from the original test suite: 200 frames of distinct input
// with a verification pass on every frame once the ledger is deep enough
func TestAdvanceFrame(t *testing.T) {
	sess := newSession(t)
	game := &stubGame{}

	const handle = 1
	h, err := sess.AddPlayer(session.NewPlayer(session.PlayerLocal, handle))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h, handle)

	test.ExpectSuccess(t, sess.StartSession())

	for i := 0; i < 200; i++ {
		test.ExpectSuccess(t, sess.AddLocalInput(handle, leUint32(uint32(i))))
		test.ExpectSuccess(t, sess.AdvanceFrame(game))

		// the host's own frame counter tracks the session's
		test.ExpectEquality(t, game.frame, i+1)
		test.ExpectEquality(t, sess.Frame(), i+1)
	}

	// the running event arrives with the first tick and nothing else is
	// reported for a deterministic host
	test.ExpectEquality(t, len(game.events), 1)
	test.ExpectEquality(t, game.events[0], session.EventRunning)
}

// a host whose advance consumes a non-replayed source of randomness must be
// caught by the verification pass
func TestNondeterministicHost(t *testing.T) {
	sess := newSession(t)
	game := &stubGame{nondeterministic: true}

	test.ExpectSuccess(t, sess.StartSession())

	var err error
	for i := 0; i < 50; i++ {
		test.ExpectSuccess(t, sess.AddLocalInput(0, leUint32(uint32(i))))
		if err = sess.AdvanceFrame(game); err != nil {
			break
		}
	}

	test.ExpectSuccess(t, curated.Is(err, session.DesyncDetected))

	// the first verification pass runs once the ledger holds more than
	// checkDistance entries, and the nondeterminism diverges on every
	// frame, so detection happens at that first pass
	test.ExpectEquality(t, sess.Frame(), checkDistance+1)

	// the desync was also reported through the host's event callback
	test.ExpectEquality(t, game.events[len(game.events)-1], session.EventDesyncDetected)
}

// a host that never supplies checksums cannot desynchronize detectably
func TestNoChecksumNoDetection(t *testing.T) {
	sess := newSession(t)
	game := &stubGame{nondeterministic: true, nochecksum: true}

	test.ExpectSuccess(t, sess.StartSession())

	for i := 0; i < 50; i++ {
		test.ExpectSuccess(t, sess.AddLocalInput(0, leUint32(uint32(i))))
		test.ExpectSuccess(t, sess.AdvanceFrame(game))
	}
}

func TestZeroCheckDistance(t *testing.T) {
	sess, err := synctest.NewSession(numPlayers, inputSize, 0, window)
	test.ExpectSuccess(t, err)

	game := &stubGame{}
	test.ExpectSuccess(t, sess.StartSession())

	// a check distance of zero disables verification entirely. the session
	// still simulates
	for i := 0; i < 20; i++ {
		test.ExpectSuccess(t, sess.AdvanceFrame(game))
	}
	test.ExpectEquality(t, game.frame, 20)
	test.ExpectEquality(t, game.loads, 0)
}

func TestIdle(t *testing.T) {
	sess := newSession(t)
	test.ExpectSuccess(t, sess.Idle(&stubGame{}))
}

func TestUnsupportedOperations(t *testing.T) {
	sess := newSession(t)

	err := sess.DisconnectPlayer(0)
	test.ExpectSuccess(t, curated.Is(err, session.Unsupported))

	_, err = sess.NetworkStats(0)
	test.ExpectSuccess(t, curated.Is(err, session.Unsupported))

	err = sess.SetFrameDelay(0, 2)
	test.ExpectSuccess(t, curated.Is(err, session.Unsupported))

	err = sess.SetDisconnectTimeout(time.Second)
	test.ExpectSuccess(t, curated.Is(err, session.Unsupported))

	err = sess.SetDisconnectNotifyDelay(time.Second)
	test.ExpectSuccess(t, curated.Is(err, session.Unsupported))
}
