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

import "fmt"

// Snapshot bundles the game state captured at a frame boundary with the
// input that will produce the next frame. The frame number matches the
// synchronization layer's frame counter at the time of capture.
//
// A Snapshot is immutable once stored. The Input field must not be mutated
// after the Snapshot has been created.
type Snapshot struct {
	Frame int
	State State
	Input *Input
}

func (s Snapshot) String() string {
	if s.State.Checksummed {
		return fmt.Sprintf("frame %d (checksum %08x)", s.Frame, s.State.Checksum)
	}
	return fmt.Sprintf("frame %d (no checksum)", s.Frame)
}
