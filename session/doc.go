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

// Package session defines the boundary between the synchronization core and
// the code around it: the Host interface implemented by the game simulation,
// the Session interface implemented by session types, and the error
// patterns shared by all implementations.
//
// The Host contract carries a strong precondition that the core cannot
// enforce: AdvanceFrame() must be deterministic and referentially
// transparent with respect to the declared state. The same input applied to
// the same restored state must produce the same resulting state and the
// same checksum. A host that consults any source of information outside the
// save/load cycle (wall clock time, an unseeded random number generator,
// global mutable state) will desynchronize, and the violation surfaces only
// as a checksum mismatch during a verification pass.
package session
