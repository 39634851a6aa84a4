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
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd is a main entry point. It's exported so evlat could be easily extended without touching core functionality.
var RootCmd = &cobra.Command{
	Use:   "evlat",
	Short: "Input latency measurement for single-board computers",
	Long: `evlat measures the end-to-end latency between driving a GPIO output
and observing the resulting transition on an input channel, either a
busy-polled GPIO line or a kernel input event device. It prints one raw
nanosecond sample per trial; statistics are left to external tooling.`,
}

// flags
var rootVerboseFlag bool

func init() {
	pf := RootCmd.PersistentFlags()
	pf.BoolVarP(&rootVerboseFlag, "verbose", "v", false, "verbose output")
	pf.IntVarP(&cfg.Iterations, "iterations", "i", DefaultIterations, "number of trials to perform")
	pf.IntVarP(&cfg.DelayMin, "delaymin", "d", DefaultDelayMin, "minimum inter-trial delay in microseconds")
	pf.IntVarP(&cfg.DelayMax, "delaymax", "D", DefaultDelayMax, "maximum inter-trial delay in microseconds")
	pf.BoolVarP(&cfg.Summary, "summary", "s", false, "print the active configuration as JSON before the run")
}

// ConfigureVerbosity configures log verbosity based on parsed flags. Needs to be called by any subcommand.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
}

// Execute is the main entry point for CLI interface
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
