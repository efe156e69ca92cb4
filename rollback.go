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

package main

import (
	"fmt"
	"os"

	"github.com/retroloop/rollback/demo"
	"github.com/retroloop/rollback/display"
	"github.com/retroloop/rollback/logger"
	"github.com/retroloop/rollback/modalflag"
	"github.com/retroloop/rollback/performance/limiter"
	"github.com/retroloop/rollback/session"
	"github.com/retroloop/rollback/statsview"
	"github.com/retroloop/rollback/synctest"
	"github.com/retroloop/rollback/version"

	"github.com/bradleyjkemp/memviz"
	"github.com/caarlos0/env/v11"
)

// config is the set of session parameters common to all modes. every field
// can be set from the environment. mode-specific options are handled by
// command line flags.
type config struct {
	NumPlayers    int `env:"ROLLBACK_PLAYERS" envDefault:"2"`
	InputSize     int `env:"ROLLBACK_INPUT_SIZE" envDefault:"1"`
	CheckDistance int `env:"ROLLBACK_CHECK_DISTANCE" envDefault:"7"`
	Window        int `env:"ROLLBACK_WINDOW" envDefault:"8"`
	FPS           int `env:"ROLLBACK_FPS" envDefault:"60"`
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("CHECK", "PLAY", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "CHECK":
		err = check(md, cfg)

	case "PLAY":
		err = play(md, cfg)

	case "VERSION":
		ver, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, ver)
		if !release {
			fmt.Println(rev)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

// newSession prepares a sync test session with the requested number of local
// players, started and ready for the first frame.
func newSession(cfg config) (*synctest.Session, error) {
	sess, err := synctest.NewSession(cfg.NumPlayers, cfg.InputSize, cfg.CheckDistance, cfg.Window)
	if err != nil {
		return nil, err
	}

	for h := 0; h < cfg.NumPlayers; h++ {
		if _, err := sess.AddPlayer(session.NewPlayer(session.PlayerLocal, h)); err != nil {
			return nil, err
		}
	}

	if err := sess.StartSession(); err != nil {
		return nil, err
	}

	return sess, nil
}

// the input script used by CHECK mode. every player wanders the grid in the
// same repeating pattern, offset by its handle so the players diverge.
func scripted(frame int, handle int) byte {
	pattern := []byte{
		demo.MoveRight,
		demo.MoveRight | demo.MoveDown,
		demo.MoveDown,
		demo.MoveLeft | demo.MoveDown,
		demo.MoveLeft,
		demo.MoveUp,
	}
	return pattern[(frame+handle*2)%len(pattern)]
}

func check(md *modalflag.Modes, cfg config) error {
	md.NewMode()

	numFrames := md.AddInt("frames", 1000, "number of frames to simulate")
	nondet := md.AddBool("nondet", false, "deliberately break determinism in the demo game")
	memvizFile := md.AddString("memviz", "", "write a graphviz rendering of the session to file")
	stats := md.AddBool("statsview", false, "run the statistics server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	sess, err := newSession(cfg)
	if err != nil {
		return err
	}

	game := demo.NewGame(cfg.NumPlayers)
	game.Nondeterministic = *nondet

	bits := make([]byte, cfg.InputSize)
	for i := 0; i < *numFrames; i++ {
		for h := 0; h < cfg.NumPlayers; h++ {
			bits[0] = scripted(i, h)
			if err := sess.AddLocalInput(h, bits); err != nil {
				return err
			}
		}

		if err := sess.AdvanceFrame(game); err != nil {
			return err
		}
	}

	fmt.Printf("%d frames simulated without desync\n", sess.Frame())

	if *memvizFile != "" {
		if err := writeMemviz(*memvizFile, sess); err != nil {
			return err
		}
		fmt.Printf("session rendering written to %s\n", *memvizFile)
	}

	return nil
}

// writeMemviz dumps a graphviz visualisation of the session and everything
// hanging off it (the sync layer, the history buffers, the ledger).
func writeMemviz(filename string, sess *synctest.Session) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, sess)

	return nil
}

func play(md *modalflag.Modes, cfg config) error {
	md.NewMode()

	scale := md.AddInt("scale", 12, "size of one grid cell in pixels")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	sess, err := newSession(cfg)
	if err != nil {
		return err
	}

	game := demo.NewGame(cfg.NumPlayers)

	scr, err := display.NewDisplay("rollback demo", int32(*scale))
	if err != nil {
		return err
	}
	defer scr.Destroy()

	lim, err := limiter.NewFPSLimiter(cfg.FPS)
	if err != nil {
		return err
	}
	defer lim.Stop()

	bits := make([]byte, cfg.InputSize)
	for {
		lim.Wait()

		p0, p1, quit := scr.Poll()
		if quit {
			break // for loop
		}

		bits[0] = p0
		if err := sess.AddLocalInput(0, bits); err != nil {
			return err
		}
		if cfg.NumPlayers > 1 {
			bits[0] = p1
			if err := sess.AddLocalInput(1, bits); err != nil {
				return err
			}
		}

		if err := sess.AdvanceFrame(game); err != nil {
			return err
		}

		if err := scr.Render(game); err != nil {
			return err
		}
	}

	fmt.Printf("session ended at frame %d\n", sess.Frame())

	return nil
}
