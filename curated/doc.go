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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Unlike the similarly
// named function in the fmt package, the formatting pattern is retained by
// the error and doubles as its identity. The Is() function compares that
// identity:
//
//	err := curated.Errorf("history: invalid age (%d)", age)
//
//	if curated.Is(err, "history: invalid age (%d)") {
//		fmt.Println("true")
//	}
//
// Packages in this repository export the patterns they return as constants,
// so callers can test for specific conditions without string literals:
//
//	if curated.Is(err, session.DesyncDetected) {
//		...
//	}
//
// The Has() function is like Is() but walks the chain of wrapped curated
// errors looking for the pattern at any depth.
//
// The Error() message is normalised: adjacent duplicate parts of the message
// chain are removed. This means errors can be wrapped freely at every level
// of a call stack without producing messages like "sync: sync: bad frame".
package curated
