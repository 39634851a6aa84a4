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

package cmd

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/facebookincubator/evlat/latency"
)

// runMeasurement drives the trial loop with the already validated
// configuration and streams raw samples to stdout, summary first when
// requested.
func runMeasurement(out latency.Output, det latency.Detector) error {
	if cfg.Summary {
		if err := cfg.PrintSummary(os.Stdout); err != nil {
			return err
		}
	}
	delays := latency.Delays(cfg.Iterations,
		time.Duration(cfg.DelayMin)*time.Microsecond,
		time.Duration(cfg.DelayMax)*time.Microsecond)
	log.Debugf("running %d trials with delays in [%dus, %dus]", cfg.Iterations, cfg.DelayMin, cfg.DelayMax)
	samples, err := latency.Measure(out, det, delays)
	if err != nil {
		return err
	}
	return latency.WriteSamples(os.Stdout, samples)
}
