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

// Package frame defines the per-frame data carried by the synchronization
// core: the combined input for one simulation tick, the opaque game state
// produced by the host, and the snapshot that bundles the two together with
// a frame number.
//
// The game state is never interpreted by this package or by any other part
// of the core. It is a byte sequence owned by the host, optionally paired
// with a 32-bit checksum. The checksum is supplied by the host and used
// purely as a comparison token during resimulation. Without a checksum,
// desynchronization is undetectable for that frame.
package frame
