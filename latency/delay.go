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
	"math/rand/v2"
	"time"
)

// delaySeed is the fixed PCG seed for the delay sequence. Runs with
// identical configuration must replay identical delays so experiments can
// be compared; real entropy is explicitly not wanted here. The algorithm
// (PCG) and the seed are part of the tool's output contract.
const delaySeed = 30378

// Delays returns n inter-trial delays, each drawn independently and
// uniformly from the closed range [min, max] at microsecond granularity.
// The delays are randomized to avoid resonating with periodic system
// activity, but deterministic: two calls with the same arguments return
// the same sequence. min == max yields a constant sequence. max < min is
// rejected by configuration validation before this is ever called.
func Delays(n int, min, max time.Duration) []time.Duration {
	r := rand.New(rand.NewPCG(delaySeed, delaySeed))
	span := (max-min).Microseconds() + 1
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = min + time.Duration(r.Int64N(span))*time.Microsecond
	}
	return delays
}
