// seehuhn.de/go/shade - a software triangle shader
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package clock measures the time between frames of a render loop.
//
// A [Clock] is an ordinary value owned by the render loop, so that
// independent loops (for example in tests) do not share timing state.
package clock

import "time"

// DefaultInterval is the frame interval used for pacing, 60 frames per
// second.
const DefaultInterval = 16666666 * time.Nanosecond

// Clock tracks the time between calls to [Clock.Tick].
//
// A Clock is not safe for concurrent use.
type Clock struct {
	now      func() time.Time
	pacing   bool
	interval time.Duration

	last       time.Time // start of the previous tick
	nextSecond time.Time // when the frame rate is updated next
	nextFrame  time.Time // earliest end of the next paced tick
	count      int       // ticks since nextSecond was last advanced
	frameRate  int
	frames     uint64
	delta      float64
}

// Option configures a Clock.
type Option func(*Clock)

// WithSource replaces the time source.  The default is [time.Now].
func WithSource(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// WithPacing enables pacing.  Tick then waits until at least interval has
// passed since the previous paced tick.  If interval is not positive,
// [DefaultInterval] is used.
func WithPacing(interval time.Duration) Option {
	return func(c *Clock) {
		c.pacing = true
		if interval > 0 {
			c.interval = interval
		}
	}
}

// New returns a started clock.
func New(opts ...Option) *Clock {
	c := &Clock{
		now:      time.Now,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Init()
	return c
}

// Init restarts the clock.  The next call to Tick measures the time since
// Init.
func (c *Clock) Init() {
	now := c.now()
	c.last = now
	c.nextSecond = now.Add(time.Second)
	c.nextFrame = now
	c.count = 0
	c.frameRate = 0
	c.frames = 0
	c.delta = 0
}

// Tick marks the end of a frame and returns the time in seconds since the
// previous tick.
//
// If pacing is enabled, Tick busy-waits until the next frame interval
// boundary before returning.  The waiting time is counted towards the
// next frame, so that the deltas add up to the wall time.
func (c *Clock) Tick() float64 {
	start := c.now()
	now := start

	c.count++
	if !now.Before(c.nextSecond) {
		c.frameRate = c.count
		c.count = 0
		c.nextSecond = c.nextSecond.Add(time.Second)
		if !now.Before(c.nextSecond) {
			// more than a second without ticks
			c.nextSecond = now.Add(time.Second)
		}
	}

	c.delta = start.Sub(c.last).Seconds()
	c.frames++

	if c.pacing {
		for now.Before(c.nextFrame) {
			now = c.now()
		}
		c.nextFrame = c.nextFrame.Add(c.interval)
		if c.nextFrame.Before(now) {
			// Frames took longer than the interval.  Start over instead
			// of returning immediately until the schedule has caught up.
			c.nextFrame = now.Add(c.interval)
		}
	}
	c.last = start

	return c.delta
}

// DeltaTime returns the value returned by the most recent call to Tick.
func (c *Clock) DeltaTime() float64 { return c.delta }

// FrameRate returns the number of ticks during the most recent full second.
func (c *Clock) FrameRate() int { return c.frameRate }

// Frames returns the number of ticks since Init.
func (c *Clock) Frames() uint64 { return c.frames }

// Pacing reports whether Tick waits for the frame interval.
func (c *Clock) Pacing() bool { return c.pacing }

// SetPacing enables or disables pacing.
func (c *Clock) SetPacing(on bool) {
	if on && !c.pacing {
		c.nextFrame = c.now()
	}
	c.pacing = on
}

// Interval returns the frame interval used for pacing.
func (c *Clock) Interval() time.Duration { return c.interval }
