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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate.
//
// A new FpsLimiter can be created with (error handling removed for
// clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"fmt"
	"time"
)

// FpsLimiter will trigger every frame. Only any good if the base
// performance of the machine is well above the required rate.
type FpsLimiter struct {
	framesPerSecond int
	tick            *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for the
// FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond < 1 {
		return nil, fmt.Errorf("limiter: invalid rate (%d)", framesPerSecond)
	}

	return &FpsLimiter{
		framesPerSecond: framesPerSecond,
		tick:            time.NewTicker(time.Second / time.Duration(framesPerSecond)),
	}, nil
}

// SetLimit changes the rate at which the FpsLimiter triggers.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond < 1 {
		return
	}
	lim.framesPerSecond = framesPerSecond
	lim.tick.Reset(time.Second / time.Duration(framesPerSecond))
}

// Wait blocks until the next trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick.C
}

// Stop the limiter and release its resources. The limiter cannot be used
// after a call to Stop().
func (lim *FpsLimiter) Stop() {
	lim.tick.Stop()
}
