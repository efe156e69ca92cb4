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

import (
	"time"

	"github.com/retroloop/rollback/frame"
)

// Host is the callback interface implemented by the game simulation that a
// session drives. See the package documentation for the determinism
// precondition that implementations must satisfy.
type Host interface {
	// SaveState produces an opaque serialization of the current simulation
	// state, optionally with an integrity checksum. Without a checksum,
	// desynchronization is undetectable.
	SaveState() frame.State

	// LoadState restores the simulation from a previously produced state.
	// It must be a pure inverse of SaveState().
	LoadState(state frame.State)

	// AdvanceFrame executes exactly one simulation tick with the provided
	// merged input.
	AdvanceFrame(input *frame.Input, disconnectFlags uint32)

	// OnEvent receives session notifications. The core does nothing with
	// events beyond passing them through.
	OnEvent(event Event)
}

// Stats describes the network performance of a connection to a remote
// player. Only meaningful for session types that perform networking.
type Stats struct {
	SendQueueLen int
	Ping         time.Duration
	KbpsSent     int
}

// Session is the surface consumed by external callers. All operations run
// to completion on the caller's goroutine before returning; none suspend or
// block on I/O.
type Session interface {
	// AddPlayer must be called for each player before the session starts.
	// Returns the player's handle unchanged. Handles are externally
	// assigned, not generated.
	AddPlayer(player Player) (int, error)

	// StartSession transitions the session to the running state. It cannot
	// be called twice.
	StartSession() error

	// AddLocalInput registers input for a local player for the current
	// tick. Multiple calls for the same handle within one tick are merged
	// with a bitwise OR.
	AddLocalInput(handle int, bits []byte) error

	// AdvanceFrame runs one simulation tick through the host. Callers
	// should budget for a latency spike on ticks that perform a
	// verification pass.
	AdvanceFrame(host Host) error

	// Idle gives the session an opportunity to do work outside of the
	// frame cadence.
	Idle(host Host) error

	// DisconnectPlayer from the session.
	DisconnectPlayer(handle int) error

	// NetworkStats for the connection to the given player.
	NetworkStats(handle int) (Stats, error)

	// SetFrameDelay sets the number of frames of input delay for the given
	// player.
	SetFrameDelay(handle int, delay int) error

	// SetDisconnectTimeout sets how long to wait before dropping an
	// unresponsive player.
	SetDisconnectTimeout(timeout time.Duration) error

	// SetDisconnectNotifyDelay sets how long to wait before notifying
	// about an unresponsive player.
	SetDisconnectNotifyDelay(delay time.Duration) error
}
