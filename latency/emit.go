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
	"bufio"
	"io"
	"strconv"
	"time"
)

// WriteSamples writes one integer nanosecond count per line, in trial
// order. Raw values only, no aggregation or unit conversion, so external
// tooling can compute whatever statistics it wants.
func WriteSamples(w io.Writer, samples []time.Duration) error {
	bw := bufio.NewWriter(w)
	for _, s := range samples {
		if _, err := bw.WriteString(strconv.FormatInt(s.Nanoseconds(), 10)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
