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

package session

// Event is an asynchronous notification delivered to the host through the
// OnEvent() callback. The core passes events through without acting on
// them.
type Event int

// List of valid Event values.
const (
	// the session has started and frames are being simulated
	EventRunning Event = iota

	// a verification pass found a checksum mismatch. the corresponding
	// AdvanceFrame() call returns the full desync error
	EventDesyncDetected
)

func (e Event) String() string {
	switch e {
	case EventRunning:
		return "running"
	case EventDesyncDetected:
		return "desync detected"
	}
	return "unknown"
}
