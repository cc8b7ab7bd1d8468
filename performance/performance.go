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


package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/debugger/govern"
	"github.com/gopher8080/gopher8080/environment"
	"github.com/gopher8080/gopher8080/hardware"
	"github.com/gopher8080/gopher8080/hardware/clocks"
	"github.com/gopher8080/gopher8080/hardware/preferences"
	"github.com/gopher8080/gopher8080/imageloader"
)

// PerformanceError wraps any error raised by the performance harness.
const PerformanceError = "performance: %v"

// the number of instructions executed between checks of the timer.
const performanceBrake = 1000

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Throughput is the result of a performance check.
type Throughput struct {
	Instructions uint64
	Cycles       uint64
	Halts        int
	Elapsed      time.Duration
}

// InstructionsPerSecond is the number of instructions executed per second of
// real time.
func (tp Throughput) InstructionsPerSecond() float64 {
	if tp.Elapsed <= 0 {
		return 0
	}
	return float64(tp.Instructions) / tp.Elapsed.Seconds()
}

// MHz is the effective clock rate of the interpreter.
func (tp Throughput) MHz() float64 {
	if tp.Elapsed <= 0 {
		return 0
	}
	return float64(tp.Cycles) / tp.Elapsed.Seconds() / 1000000
}

func (tp Throughput) String() string {
	return fmt.Sprintf("%d instructions, %d cycles in %.2f seconds (%.0f instructions/sec, %.2f MHz, %s)",
		tp.Instructions, tp.Cycles, tp.Elapsed.Seconds(), tp.InstructionsPerSecond(), tp.MHz(), clocks.Ratio(tp.MHz()))
}

// combine adds the counts of another throughput. Machines run side by side
// so the elapsed time is the longest of the two.
func (tp *Throughput) combine(o Throughput) {
	tp.Instructions += o.Instructions
	tp.Cycles += o.Cycles
	tp.Halts += o.Halts
	tp.Elapsed = max(tp.Elapsed, o.Elapsed)
}

// Check the performance of the interpreter using the supplied image.
//
// The image will run for the specified duration, being reset every time it
// halts. If instances is more than one then that many independent machines
// are run concurrently and the combined throughput is reported as well as
// the throughput of each machine.
//
// A cpu profile, memory profile, a trace (or a combination of those) will be
// created as defined by the Profile argument.
//
// The machines run in their own environments and so do not write to the
// central log.
func Check(output io.Writer, profile Profile, ld imageloader.Loader, duration string, instances int) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	if instances < 1 {
		return curated.Errorf(PerformanceError, fmt.Errorf("number of instances must be at least one (%d)", instances))
	}

	// preferences are created once so that every instance sees the values on
	// the command line stack. the values are not changed while running
	prefs, err := preferences.NewPreferences()
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	results := make([]Throughput, instances)

	runner := func() error {
		var g errgroup.Group
		for i := range results {
			i := i
			g.Go(func() error {
				// each goroutine loads its own copy of the image
				ld := ld
				var err error
				results[i], err = measure(prefs, &ld, dur)
				return err
			})
		}
		return g.Wait()
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	var total Throughput
	for i, tp := range results {
		if instances > 1 {
			output.Write([]byte(fmt.Sprintf("#%d: %s\n", i, tp)))
		}
		total.combine(tp)
	}
	output.Write([]byte(fmt.Sprintf("%s\n", total)))

	return nil
}

// measure runs the image in a new machine until the duration has elapsed.
// prefs may be nil, in which case new preferences are created for the
// machine.
func measure(prefs *preferences.Preferences, ld *imageloader.Loader, dur time.Duration) (tp Throughput, err error) {
	env, err := environment.NewEnvironment(environment.Label("performance"), prefs)
	if err != nil {
		return tp, err
	}

	m := hardware.NewMachine(env)
	err = m.AttachImage(ld)
	if err != nil {
		return tp, err
	}

	// the timer channel is closed when the duration has elapsed
	timerChan := make(chan bool)
	time.AfterFunc(dur, func() {
		close(timerChan)
	})

	brake := 0

	continueCheck := func() (govern.State, error) {
		tp.Instructions++

		brake++
		if brake >= performanceBrake {
			brake = 0

			select {
			case <-timerChan:
				return govern.Ending, timedOut
			default:
			}
		}

		return govern.Running, nil
	}

	// tp is a named result so that the elapsed time is recorded on every
	// return
	start := time.Now()
	defer func() {
		tp.Elapsed = time.Since(start)
	}()

	for {
		err := m.Run(continueCheck)

		// cycles are cleared when the machine is reset so keep a running
		// total
		tp.Cycles += m.CPU.Cycles

		// the timer may expire on the HLT instruction itself
		if m.Halted() {
			tp.Halts++
		}

		if errors.Is(err, timedOut) {
			return tp, nil
		}
		if err != nil {
			return tp, err
		}

		select {
		case <-timerChan:
			return tp, nil
		default:
		}

		err = m.Reset()
		if err != nil {
			return tp, err
		}
	}
}
