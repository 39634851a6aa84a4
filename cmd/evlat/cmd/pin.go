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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebookincubator/evlat/gpio"
)

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Measure latency via a busy-polled GPIO input line",
	Run:   runPinCmd,
}

func init() {
	RootCmd.AddCommand(pinCmd)
	flags := pinCmd.Flags()
	flags.StringVar(&cfg.Chip, "chip", gpio.DefaultChip, "GPIO character device to request lines from")
	flags.IntVar(&cfg.OutputLine, "output-line", gpio.DefaultOutputLine, "line offset of the trigger output")
	flags.IntVar(&cfg.InputLine, "input-line", gpio.DefaultInputLine, "line offset of the sensed input")
}

func runPinCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	cfg.Pin = true
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if err := measurePin(); err != nil {
		log.Fatal(err)
	}
}

func measurePin() error {
	probe, err := gpio.Open(cfg.Chip, cfg.OutputLine, cfg.InputLine)
	if err != nil {
		return err
	}
	defer probe.Close()
	return runMeasurement(probe, probe)
}
