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

// Error patterns returned by session implementations and by the
// synchronization layer. Use with curated.Errorf() when creating errors and
// with curated.Is()/curated.Has() when testing for them.
const (
	// the handle exceeds the configured number of players
	InvalidPlayerHandle = "invalid player handle (%d)"

	// input was submitted before the session was started
	NotSynchronized = "not synchronized: session has not been started"

	// the request is valid in general but not in the session's current
	// state. restarting a running session, rolling back to the current or
	// a future frame
	InvalidRequest = "invalid request: %v"

	// an internal invariant was violated. this is a bug in the
	// synchronization core, not a caller mistake
	GeneralFailure = "general failure: %v"

	// a verification pass resimulated a frame and arrived at a different
	// checksum than the one recorded during the original run. this is the
	// single most important signal the synchronization core produces
	DesyncDetected = "desync detected: frame %d: resimulated checksum %08x does not match original %08x"

	// the operation is only meaningful for session types that perform
	// networking
	Unsupported = "unsupported operation: %s"
)
