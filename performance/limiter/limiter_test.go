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


package limiter

import (
	"testing"
	"time"

	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/test"
)

// fakeClock only advances when the limiter sleeps.
type fakeClock struct {
	t     time.Time
	slept time.Duration
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) sleep(d time.Duration) {
	c.slept += d
	c.t = c.t.Add(d)
}

func newTestLimiter(t *testing.T, mhz float64) (*ClockLimiter, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Unix(0, 0)}
	lim := &ClockLimiter{now: clk.now, sleep: clk.sleep}
	test.DemandSuccess(t, lim.SetLimit(mhz))
	return lim, clk
}

func TestClockLimiter(t *testing.T) {
	lim, clk := newTestLimiter(t, 2.0)
	test.ExpectEquality(t, lim.Limit(), 2.0)

	// 1000 cycles at 2MHz is 500us. not enough to cause a sleep
	lim.Wait(1000)
	test.ExpectEquality(t, clk.slept, time.Duration(0))

	// a further 1000 cycles takes the limiter to 1ms ahead of the clock
	lim.Wait(1000)
	test.ExpectEquality(t, clk.slept, time.Millisecond)

	// two million cycles is one second
	lim.Wait(1998000)
	test.ExpectEquality(t, clk.slept, time.Second)
}

func TestClockLimiterBehind(t *testing.T) {
	lim, clk := newTestLimiter(t, 2.0)

	// the wall clock has moved on further than the cycles consumed
	clk.t = clk.t.Add(time.Second)
	lim.Wait(1000000)
	test.ExpectEquality(t, clk.slept, time.Duration(0))
}

func TestClockLimiterBadRate(t *testing.T) {
	_, err := NewClockLimiter(0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, LimiterError))

	_, err = NewClockLimiter(-1)
	test.ExpectFailure(t, err)

	lim, err := NewClockLimiter(1.5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, lim.Limit(), 1.5)
}
