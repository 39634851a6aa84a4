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

package latency

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mirrorProbe reflects the output state straight back to the detector,
// simulating a fixture with zero propagation delay.
type mirrorProbe struct {
	state    atomic.Bool
	asserts  int
	releases int
}

func (m *mirrorProbe) Set(active bool) error {
	if active {
		m.asserts++
	} else {
		m.releases++
	}
	m.state.Store(active)
	return nil
}

func (m *mirrorProbe) WaitForState(active bool) error {
	for m.state.Load() != active {
	}
	return nil
}

// brokenOutput fails on the first assert.
type brokenOutput struct{}

func (brokenOutput) Set(bool) error { return errors.New("line gone") }

func TestMeasureSampleCount(t *testing.T) {
	probe := &mirrorProbe{}
	delays := Delays(5, 0, 0)
	samples, err := Measure(probe, probe, delays)
	require.NoError(t, err)
	require.Equal(t, len(delays), len(samples))
	for i, s := range samples {
		assert.GreaterOrEqual(t, s, time.Duration(0), "sample %d", i)
	}
	// one assert/release pair per trial, no overlap
	assert.Equal(t, 5, probe.asserts)
	assert.Equal(t, 5, probe.releases)
}

func TestMeasureZeroPropagation(t *testing.T) {
	probe := &mirrorProbe{}
	samples, err := Measure(probe, probe, Delays(3, 0, 0))
	require.NoError(t, err)
	require.Equal(t, 3, len(samples))
	for i, s := range samples {
		assert.GreaterOrEqual(t, s, time.Duration(0), "sample %d", i)
		// bounded by loop overhead only; generous to keep CI happy
		assert.Less(t, s, 100*time.Millisecond, "sample %d", i)
	}
}

func TestMeasureOutputError(t *testing.T) {
	probe := &mirrorProbe{}
	samples, err := Measure(brokenOutput{}, probe, Delays(2, 0, 0))
	require.Error(t, err)
	assert.Nil(t, samples)
}

func TestMeasureNoDelays(t *testing.T) {
	probe := &mirrorProbe{}
	samples, err := Measure(probe, probe, nil)
	require.NoError(t, err)
	require.Empty(t, samples)
	assert.Zero(t, probe.asserts)
}

func TestWriteSamples(t *testing.T) {
	var buf bytes.Buffer
	samples := []time.Duration{0, time.Nanosecond, 1500 * time.Microsecond, time.Second}
	require.NoError(t, WriteSamples(&buf, samples))
	require.Equal(t, "0\n1\n1500000\n1000000000\n", buf.String())
}

func TestWriteSamplesEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSamples(&buf, nil))
	require.Empty(t, buf.String())
}

// Full pass over the core with the loopback probe: three trials, zero
// scheduled delay, three non-negative lines out.
func TestMeasureEndToEnd(t *testing.T) {
	probe := &mirrorProbe{}
	samples, err := Measure(probe, probe, Delays(3, 0, 0))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSamples(&buf, samples))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Equal(t, 3, len(lines))
	for _, line := range lines {
		ns, err := strconv.ParseInt(line, 10, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ns, int64(0))
	}
}
