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

// PlayerType distinguishes players whose input arrives locally from players
// whose input arrives over a network connection.
type PlayerType int

// List of valid PlayerType values. Remote players are only meaningful for
// session types that perform networking.
const (
	PlayerLocal PlayerType = iota
	PlayerRemote
)

func (p PlayerType) String() string {
	switch p {
	case PlayerLocal:
		return "local"
	case PlayerRemote:
		return "remote"
	}
	return "unknown"
}

// Player joins a player type with an externally assigned handle. The handle
// identifies the player in all session operations.
type Player struct {
	Type   PlayerType
	Handle int
}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer(playerType PlayerType, handle int) Player {
	return Player{
		Type:   playerType,
		Handle: handle,
	}
}
