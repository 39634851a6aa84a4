/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package latency implements the measurement core: the deterministic
inter-trial delay sequence, the trigger/detect trial loop and the raw
sample output.

A trial asserts a digital output, busy-waits until the configured input
source observes the active state, and records the elapsed time on the
monotonic clock. Detection is busy-polled on purpose: a blocking wait
would fold scheduler wakeup latency into the measured quantity.
*/
package latency

import (
	"fmt"
	"time"
)

// Detector blocks until an input source reaches a requested logical state.
// The logical state is decoupled from the electrical one; implementations
// account for pull-up inversion or event encoding themselves.
type Detector interface {
	// WaitForState busy-polls the input source until its logical state
	// equals active. There is deliberately no timeout: the caller bounds
	// the run by trial count, and an input that never responds blocks
	// forever.
	WaitForState(active bool) error
}

// Output drives the digital output line that actuates the input under test.
type Output interface {
	Set(active bool) error
}

// Measure runs one trial per entry of delays and returns the latency
// samples in trial order. Each trial sleeps for its scheduled delay,
// asserts the output, waits for the detector to observe the active state
// and records the elapsed time. The output is then de-asserted and the
// loop waits, untimed, for the inactive state so a stale active reading
// cannot leak into the next trial.
//
// The loop is single-threaded and trials never overlap. Any error from
// the output or the detector aborts the run.
func Measure(out Output, det Detector, delays []time.Duration) ([]time.Duration, error) {
	samples := make([]time.Duration, len(delays))
	for i, delay := range delays {
		time.Sleep(delay)

		start := time.Now()
		if err := out.Set(true); err != nil {
			return nil, fmt.Errorf("trial %d: asserting output: %w", i, err)
		}
		if err := det.WaitForState(true); err != nil {
			return nil, fmt.Errorf("trial %d: waiting for active input: %w", i, err)
		}
		samples[i] = time.Since(start)

		if err := out.Set(false); err != nil {
			return nil, fmt.Errorf("trial %d: de-asserting output: %w", i, err)
		}
		if err := det.WaitForState(false); err != nil {
			return nil, fmt.Errorf("trial %d: waiting for input to settle: %w", i, err)
		}
	}
	return samples, nil
}
