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
	"encoding/json"
	"fmt"
	"io"
)

// Defaults for the measurement flags, kept identical across tool versions
// so published results stay comparable.
const (
	DefaultIterations = 1000
	DefaultDelayMin   = 10000
	DefaultDelayMax   = 20000
)

// Config is the full per-run configuration. The measurement core trusts
// it blindly, so Validate must pass before any resource is opened.
type Config struct {
	Iterations int
	DelayMin   int // microseconds
	DelayMax   int // microseconds
	Summary    bool

	// variant selection, set by the subcommand that ran
	Pin bool
	USB bool

	// GPIO fixture
	Chip       string
	OutputLine int
	InputLine  int

	// usb variant parameters, -1 when not supplied
	Device int
	Key    int
}

// cfg is shared between the subcommands; exactly one of them runs per
// invocation and stamps its variant on it.
var cfg = Config{Device: -1, Key: -1}

// Validate checks the configuration and returns a descriptive error on
// the first problem found.
func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be greater than zero")
	}
	if c.DelayMin < 0 || c.DelayMax < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	if c.DelayMax < c.DelayMin {
		return fmt.Errorf("delaymin must be smaller or equal to delaymax")
	}
	if c.Pin == c.USB {
		return fmt.Errorf("exactly one of the pin and usb variants must be selected")
	}
	if c.USB {
		if c.Device < 0 {
			return fmt.Errorf("usb measurement requires an event device id (--device)")
		}
		if c.Key < 0 {
			return fmt.Errorf("usb measurement requires a key code (--key)")
		}
	}
	return nil
}

// summary is the JSON rendering of the configuration. The key names are
// part of the output contract.
type summary struct {
	Iterations int  `json:"iterations"`
	DelayMin   int  `json:"delay_min"`
	DelayMax   int  `json:"delay_max"`
	Pin        bool `json:"pin"`
	USB        *int `json:"usb"`
	Key        *int `json:"key"`
}

// PrintSummary writes the configuration as a single JSON line, with the
// usb fields null for the pin variant.
func (c *Config) PrintSummary(w io.Writer) error {
	s := summary{
		Iterations: c.Iterations,
		DelayMin:   c.DelayMin,
		DelayMax:   c.DelayMax,
		Pin:        c.Pin,
	}
	if c.USB {
		s.USB = &c.Device
		s.Key = &c.Key
	}
	b, err := json.Marshal(&s)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
