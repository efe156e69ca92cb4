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

// Package demo is a reference implementation of the session.Host interface:
// a small grid game where every player steers a cell and chases a pellet.
// The entire simulation state is a handful of integers, all of which round
// trip through SaveState()/LoadState(), and the only randomness (the pellet
// respawn) is frame-keyed. That makes the simulation deterministic and
// suitable for driving through a sync test.
//
// The Nondeterministic field deliberately breaks the determinism
// precondition so that desync detection can be demonstrated.
package demo

import (
	"encoding/binary"

	"github.com/retroloop/rollback/digest"
	"github.com/retroloop/rollback/frame"
	"github.com/retroloop/rollback/logger"
	"github.com/retroloop/rollback/random"
	"github.com/retroloop/rollback/session"
)

// dimensions of the playfield.
const (
	GridWidth  = 64
	GridHeight = 48
)

// Input bits for one player. One byte of input is enough for the demo; any
// additional input bytes are ignored.
const (
	MoveUp byte = 1 << iota
	MoveDown
	MoveLeft
	MoveRight
)

type position struct {
	x int
	y int
}

// a non-replayed source of randomness. consulting this during a tick is
// exactly the kind of mistake the sync test exists to catch
var entropy uint32

// Game is the demo simulation. It implements session.Host.
type Game struct {
	frame   int
	players []position
	scores  []int
	pellet  position

	// accumulated nondeterministic noise. zero unless Nondeterministic is
	// set. carried in the saved state so that it poisons the checksum
	noise uint32

	rnd *random.Random

	// Nondeterministic breaks the simulation on purpose. every tick
	// consumes a value that is not restored by LoadState(), so resimulated
	// frames diverge from the original run
	Nondeterministic bool
}

// NewGame is the preferred method of initialisation for the Game type.
func NewGame(numPlayers int) *Game {
	g := &Game{
		players: make([]position, numPlayers),
		scores:  make([]int, numPlayers),
		pellet:  position{x: GridWidth / 2, y: GridHeight / 2},
	}

	// players start spread along the left edge
	for i := range g.players {
		g.players[i] = position{
			x: 4,
			y: (i + 1) * GridHeight / (numPlayers + 1),
		}
	}

	g.rnd = random.NewRandom(g)

	return g
}

// Frame implements the random.Framer interface.
func (g *Game) Frame() int {
	return g.frame
}

// NumPlayers in the game.
func (g *Game) NumPlayers() int {
	return len(g.players)
}

// PlayerPosition returns the position of the player's cell.
func (g *Game) PlayerPosition(handle int) (int, int) {
	return g.players[handle].x, g.players[handle].y
}

// Score of the player.
func (g *Game) Score(handle int) int {
	return g.scores[handle]
}

// PelletPosition returns the position of the pellet.
func (g *Game) PelletPosition() (int, int) {
	return g.pellet.x, g.pellet.y
}

// AdvanceFrame implements the session.Host interface.
func (g *Game) AdvanceFrame(input *frame.Input, _ uint32) {
	for h := range g.players {
		bits := input.Player(h)
		if len(bits) == 0 {
			continue
		}

		b := bits[0]
		if b&MoveUp == MoveUp {
			g.players[h].y--
		}
		if b&MoveDown == MoveDown {
			g.players[h].y++
		}
		if b&MoveLeft == MoveLeft {
			g.players[h].x--
		}
		if b&MoveRight == MoveRight {
			g.players[h].x++
		}

		// the playfield wraps around
		g.players[h].x = (g.players[h].x + GridWidth) % GridWidth
		g.players[h].y = (g.players[h].y + GridHeight) % GridHeight

		if g.players[h] == g.pellet {
			g.scores[h]++

			// respawn keyed to the frame counter so that a resimulated
			// respawn lands in the same place
			g.pellet = position{
				x: g.rnd.Intn(0, GridWidth),
				y: g.rnd.Intn(1, GridHeight),
			}
		}
	}

	if g.Nondeterministic {
		entropy++
		g.noise += entropy
	}

	g.frame++
}

// SaveState implements the session.Host interface.
func (g *Game) SaveState() frame.State {
	buf := make([]byte, 4*(4+3*len(g.players)))

	binary.LittleEndian.PutUint32(buf, uint32(g.frame))
	binary.LittleEndian.PutUint32(buf[4:], g.noise)
	binary.LittleEndian.PutUint32(buf[8:], uint32(g.pellet.x))
	binary.LittleEndian.PutUint32(buf[12:], uint32(g.pellet.y))

	o := 16
	for i := range g.players {
		binary.LittleEndian.PutUint32(buf[o:], uint32(g.players[i].x))
		binary.LittleEndian.PutUint32(buf[o+4:], uint32(g.players[i].y))
		binary.LittleEndian.PutUint32(buf[o+8:], uint32(g.scores[i]))
		o += 12
	}

	return frame.NewStateWithChecksum(buf, digest.Checksum(buf))
}

// LoadState implements the session.Host interface.
func (g *Game) LoadState(state frame.State) {
	buf := state.Buffer

	g.frame = int(binary.LittleEndian.Uint32(buf))
	g.noise = binary.LittleEndian.Uint32(buf[4:])
	g.pellet.x = int(binary.LittleEndian.Uint32(buf[8:]))
	g.pellet.y = int(binary.LittleEndian.Uint32(buf[12:]))

	o := 16
	for i := range g.players {
		g.players[i].x = int(binary.LittleEndian.Uint32(buf[o:]))
		g.players[i].y = int(binary.LittleEndian.Uint32(buf[o+4:]))
		g.scores[i] = int(binary.LittleEndian.Uint32(buf[o+8:]))
		o += 12
	}
}

// OnEvent implements the session.Host interface.
func (g *Game) OnEvent(event session.Event) {
	logger.Logf(logger.Allow, "demo", "event: %s", event.String())
}
