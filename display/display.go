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

// Package display is an SDL2 window for the demo simulation. It is used by
// the PLAY mode of the harness and has no role in the synchronization core
// itself.
package display

import (
	"github.com/retroloop/rollback/curated"
	"github.com/retroloop/rollback/demo"

	"github.com/veandco/go-sdl2/sdl"
)

// Display is an SDL2 window onto the demo playfield. One grid cell is drawn
// as a scale x scale square.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
}

// NewDisplay is the preferred method of initialisation for the Display
// type. Must be called from the main thread.
func NewDisplay(title string, scale int32) (*Display, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf("display: %v", err)
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		demo.GridWidth*scale, demo.GridHeight*scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf("display: %v", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, curated.Errorf("display: %v", err)
	}

	return &Display{
		window:   window,
		renderer: renderer,
		scale:    scale,
	}, nil
}

// Destroy the window and release SDL resources.
func (scr *Display) Destroy() {
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}

// Poll the SDL event queue and the keyboard. Returns the demo input bits
// for the first two players (cursor keys and WASD respectively) and whether
// the user has asked to quit.
func (scr *Display) Poll() (byte, byte, bool) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev.(type) {
		case *sdl.QuitEvent:
			return 0, 0, true
		}
	}

	keys := sdl.GetKeyboardState()

	var p0 byte
	if keys[sdl.SCANCODE_UP] != 0 {
		p0 |= demo.MoveUp
	}
	if keys[sdl.SCANCODE_DOWN] != 0 {
		p0 |= demo.MoveDown
	}
	if keys[sdl.SCANCODE_LEFT] != 0 {
		p0 |= demo.MoveLeft
	}
	if keys[sdl.SCANCODE_RIGHT] != 0 {
		p0 |= demo.MoveRight
	}

	var p1 byte
	if keys[sdl.SCANCODE_W] != 0 {
		p1 |= demo.MoveUp
	}
	if keys[sdl.SCANCODE_S] != 0 {
		p1 |= demo.MoveDown
	}
	if keys[sdl.SCANCODE_A] != 0 {
		p1 |= demo.MoveLeft
	}
	if keys[sdl.SCANCODE_D] != 0 {
		p1 |= demo.MoveRight
	}

	if keys[sdl.SCANCODE_ESCAPE] != 0 {
		return p0, p1, true
	}

	return p0, p1, false
}

// Render the current state of the game.
func (scr *Display) Render(game *demo.Game) error {
	if err := scr.renderer.SetDrawColor(10, 10, 10, 255); err != nil {
		return curated.Errorf("display: %v", err)
	}
	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf("display: %v", err)
	}

	// the pellet
	px, py := game.PelletPosition()
	scr.renderer.SetDrawColor(240, 200, 60, 255)
	scr.renderer.FillRect(scr.cell(px, py))

	// player cells. colors repeat after the fourth player
	colors := [][3]uint8{
		{80, 160, 240},
		{240, 80, 120},
		{80, 220, 120},
		{200, 120, 240},
	}
	for h := 0; h < game.NumPlayers(); h++ {
		c := colors[h%len(colors)]
		x, y := game.PlayerPosition(h)
		scr.renderer.SetDrawColor(c[0], c[1], c[2], 255)
		scr.renderer.FillRect(scr.cell(x, y))
	}

	scr.renderer.Present()

	return nil
}

func (scr *Display) cell(x int, y int) *sdl.Rect {
	return &sdl.Rect{
		X: int32(x) * scr.scale,
		Y: int32(y) * scr.scale,
		W: scr.scale,
		H: scr.scale,
	}
}
