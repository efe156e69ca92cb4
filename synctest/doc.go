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

// Package synctest implements a session that verifies the determinism of a
// host simulation. It should be used before any networked session is
// attempted: a host that desynchronizes against itself on one machine will
// certainly desynchronize against a peer.
//
// On every tick, once enough history has accumulated, the session forces a
// rollback of checkDistance frames and resimulates forward to the current
// frame using the inputs exactly as they were recorded during the original
// run. After each resimulated frame the host's checksum is compared with
// the checksum recorded the first time the frame was simulated. A mismatch
// means the host's AdvanceFrame() is not a pure function of state and
// input.
//
// The rollback and resimulation happen synchronously inside AdvanceFrame().
// Callers should budget for a latency spike proportional to the check
// distance on verification ticks.
//
// Hosts that do not supply checksums from SaveState() can still be driven
// by this session but desynchronization cannot be detected.
package synctest
