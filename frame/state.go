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

// State is an opaque serialization of the host simulation, produced by the
// host's SaveState() callback and consumed only by its LoadState() callback.
// The core never interprets the bytes.
type State struct {
	Buffer []byte

	// checksum of the state, supplied by the host. only meaningful when
	// Checksummed is true
	Checksum    uint32
	Checksummed bool
}

// NewState creates a State without a checksum. Desynchronization cannot be
// detected for states created this way.
func NewState(buffer []byte) State {
	return State{Buffer: buffer}
}

// NewStateWithChecksum creates a State with an integrity checksum.
func NewStateWithChecksum(buffer []byte, checksum uint32) State {
	return State{
		Buffer:      buffer,
		Checksum:    checksum,
		Checksummed: true,
	}
}
