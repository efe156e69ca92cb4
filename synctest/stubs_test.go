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

	"github.com/retroloop/rollback/digest"
	"github.com/retroloop/rollback/frame"
	"github.com/retroloop/rollback/session"
)

// a non-replayed source of randomness. a host that consults this breaks the
// determinism precondition: resimulated frames see different values than
// the original run did
var poison uint32

// stubGame is a minimal host. the frame counter, a running value and the
// accumulated noise are the entire state.
type stubGame struct {
	frame int
	value uint32
	noise uint32

	// number of calls to LoadState
	loads int

	// a copy of the input handed to the most recent AdvanceFrame call
	lastInput []byte

	// every event delivered through OnEvent, in order
	events []session.Event

	nondeterministic bool
	nochecksum       bool
}

func (g *stubGame) SaveState() frame.State {
	buf := make([]byte, 12)
	binary.LittleEndian.PutUint32(buf, uint32(g.frame))
	binary.LittleEndian.PutUint32(buf[4:], g.value)
	binary.LittleEndian.PutUint32(buf[8:], g.noise)

	if g.nochecksum {
		return frame.NewState(buf)
	}
	return frame.NewStateWithChecksum(buf, digest.Checksum(buf))
}

func (g *stubGame) LoadState(state frame.State) {
	g.frame = int(binary.LittleEndian.Uint32(state.Buffer))
	g.value = binary.LittleEndian.Uint32(state.Buffer[4:])
	g.noise = binary.LittleEndian.Uint32(state.Buffer[8:])
	g.loads++
}

func (g *stubGame) AdvanceFrame(input *frame.Input, _ uint32) {
	g.lastInput = make([]byte, input.Len())
	copy(g.lastInput, input.Bits())

	g.frame++
	g.value += binary.LittleEndian.Uint32(input.Player(0)) + 2
	g.value += binary.LittleEndian.Uint32(input.Player(1))

	if g.nondeterministic {
		poison++
		g.noise += poison
	}
}

func (g *stubGame) OnEvent(event session.Event) {
	g.events = append(g.events, event)
}
