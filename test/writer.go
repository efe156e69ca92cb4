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

package test

import (
	"strings"
)

// Writer is an implementation of the io.Writer interface. It should be used
// to capture output during testing.
type Writer struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (tw *Writer) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Compare the contents of the Writer with the supplied string.
func (tw *Writer) Compare(s string) bool {
	return tw.buffer.String() == s
}

// Reset the contents of the Writer.
func (tw *Writer) Reset() {
	tw.buffer.Reset()
}

func (tw *Writer) String() string {
	return tw.buffer.String()
}
