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

package frame

import (
	"fmt"
	"strings"
)

// Input is the combined input for one simulation tick across all players.
// Each player's input occupies a fixed-offset contiguous slice of the
// buffer. The length of the buffer is fixed at construction and never
// changes for the lifetime of the session.
type Input struct {
	inputSize int
	bits      []byte
}

// NewInput is the preferred method of initialisation for the Input type.
// inputSize is the number of bytes of input per player per tick.
func NewInput(numPlayers int, inputSize int) *Input {
	return &Input{
		inputSize: inputSize,
		bits:      make([]byte, numPlayers*inputSize),
	}
}

// Merge the supplied bits into the player's slice of the input buffer with
// a bitwise OR. Multiple partial submissions for the same tick accumulate
// until the input is erased. Bits beyond the player's slice width are
// ignored.
func (inp *Input) Merge(handle int, bits []byte) {
	o := handle * inp.inputSize
	if o < 0 || o+inp.inputSize > len(inp.bits) {
		return
	}
	for i := 0; i < len(bits) && i < inp.inputSize; i++ {
		inp.bits[o+i] |= bits[i]
	}
}

// Player returns the slice of the input buffer belonging to the player.
// The slice aliases the underlying buffer and should not be retained across
// ticks.
func (inp *Input) Player(handle int) []byte {
	o := handle * inp.inputSize
	if o < 0 || o+inp.inputSize > len(inp.bits) {
		return nil
	}
	return inp.bits[o : o+inp.inputSize]
}

// Bits returns the entire input buffer. As with the Player() function the
// returned slice aliases the underlying buffer.
func (inp *Input) Bits() []byte {
	return inp.bits
}

// Erase sets every bit of the input buffer to zero. Called exactly once per
// tick, immediately after the input has been handed to the host's advance
// callback.
func (inp *Input) Erase() {
	for i := range inp.bits {
		inp.bits[i] = 0
	}
}

// Clone returns a copy of the Input that does not share storage with the
// original.
func (inp *Input) Clone() *Input {
	n := &Input{
		inputSize: inp.inputSize,
		bits:      make([]byte, len(inp.bits)),
	}
	copy(n.bits, inp.bits)
	return n
}

// Len returns the length of the input buffer in bytes.
func (inp *Input) Len() int {
	return len(inp.bits)
}

func (inp *Input) String() string {
	s := strings.Builder{}
	for i, b := range inp.bits {
		if i > 0 && i%inp.inputSize == 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return s.String()
}
