// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.


// Package limiter provides a rough and ready way of holding the emulation to
// a fixed clock rate.
//
// A new ClockLimiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewClockLimiter(2.0)
//
// Execution can then be stalled with the Wait() function, passing the number
// of cycles consumed by the most recent instruction. For example:
//
//	for {
//		r, _ := m.Step()
//		lim.Wait(r.Cycles)
//	}
package limiter

import (
	"fmt"
	"time"

	"github.com/gopher8080/gopher8080/curated"
)

// LimiterError is returned when the limiter cannot be created.
const LimiterError = "limiter: %v"

// the limiter only sleeps once it is this far ahead of the wall clock.
// sleeping for every instruction would be far too coarse.
const granularity = time.Millisecond

// ClockLimiter stalls execution so that cycles are consumed at no more than
// the requested rate.
type ClockLimiter struct {
	mhz float64

	start  time.Time
	cycles uint64

	// replaceable for testing
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClockLimiter is the preferred method of initialisation for the
// ClockLimiter type. The rate is specified in MHz.
func NewClockLimiter(mhz float64) (*ClockLimiter, error) {
	lim := &ClockLimiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
	if err := lim.SetLimit(mhz); err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the rate at which the ClockLimiter allows cycles to be
// consumed. Counting restarts from the moment of the call.
func (lim *ClockLimiter) SetLimit(mhz float64) error {
	if mhz <= 0 {
		return curated.Errorf(LimiterError, fmt.Errorf("clock rate must be positive (%.2f)", mhz))
	}
	lim.mhz = mhz
	lim.start = lim.now()
	lim.cycles = 0
	return nil
}

// Limit returns the current clock rate in MHz.
func (lim *ClockLimiter) Limit() float64 {
	return lim.mhz
}

// Wait records that the number of cycles have been consumed and blocks until
// the wall clock has caught up.
func (lim *ClockLimiter) Wait(cycles int) {
	lim.cycles += uint64(cycles)

	// mhz is cycles per microsecond
	due := time.Duration(float64(lim.cycles)/lim.mhz) * time.Microsecond
	elapsed := lim.now().Sub(lim.start)

	if ahead := due - elapsed; ahead >= granularity {
		lim.sleep(ahead)
	}
}
