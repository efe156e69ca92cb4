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

// Package digest helps host implementations produce the integrity checksum
// that accompanies a saved state. The synchronization core never computes
// checksums itself; it only compares the tokens the host supplies.
//
// Note that the use of Adler-32 is fine for this application because this
// is not a cryptographic task. The checksum only needs to make divergence
// between two runs of the same simulation visible.
package digest

import (
	"encoding/binary"
	"hash/adler32"
)

// Checksum returns the Adler-32 checksum of the buffer.
func Checksum(buffer []byte) uint32 {
	return adler32.Checksum(buffer)
}

// Chained returns the checksum of the buffer fingerprinted with the
// checksum of the previous frame. Chaining means a frame's checksum depends
// on the entire history of the simulation, so two runs that momentarily
// pass through the same state still compare as diverged if they took
// different routes to it.
func Chained(previous uint32, buffer []byte) uint32 {
	b := make([]byte, 4+len(buffer))
	binary.LittleEndian.PutUint32(b, previous)
	copy(b[4:], buffer)
	return adler32.Checksum(b)
}
