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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes, with
// a different set of flags for each mode.
//
// Initialise with the command line arguments and the list of recognised
// modes, then call Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CHECK", "PLAY", "VERSION")
//	p, err := md.Parse()
//
// The first non-flag argument is matched (case insensitively) against the
// list of sub-modes. The result is available through the Mode() function and
// the program can dispatch on it:
//
//	switch md.Mode() {
//	case "CHECK":
//		err = check(md)
//	case "PLAY":
//		err = play(md)
//	}
//
// Each mode handler then declares its own flags and calls Parse() again to
// process the arguments that follow the mode selector:
//
//	func check(md *modalflag.Modes) error {
//		md.NewMode()
//		numFrames := md.AddInt("frames", 1000, "frames to simulate")
//		p, err := md.Parse()
//		if err != nil || p != modalflag.ParseContinue {
//			return err
//		}
//		...
//	}
//
// Help messages (in response to the -help flag) are printed to the Output
// field automatically. Parse() returns ParseHelp in that instance and the
// caller should quit without further output.
package modalflag
