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
Package gpio drives the measurement fixture's GPIO lines through the GPIO
character device: the output line that actuates the input under test and
the pull-up input line that senses it back.
*/
package gpio

import (
	"github.com/pkg/errors"
	"github.com/warthog618/go-gpiocdev"
)

// Default line offsets, matching the fixture's historical wiring
// (BCM 27 out, BCM 17 in on a Raspberry Pi header).
const (
	DefaultOutputLine = 27
	DefaultInputLine  = 17
)

// DefaultChip is the GPIO character device holding both lines.
const DefaultChip = "gpiochip0"

// Probe owns both lines for the duration of a run. Exclusive: the request
// fails if another process holds either line.
type Probe struct {
	out *gpiocdev.Line
	in  *gpiocdev.Line
}

// Open requests the output line, driven low, and the input line with
// pull-up bias. With the pull-up the input reads electrically high at
// rest and low when the contact closes, so the logical sense is inverted
// relative to the raw level.
func Open(chip string, outputLine, inputLine int) (*Probe, error) {
	out, err := gpiocdev.RequestLine(chip, outputLine, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, errors.Wrapf(err, "requesting output line %d on %s", outputLine, chip)
	}
	in, err := gpiocdev.RequestLine(chip, inputLine, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		out.Close()
		return nil, errors.Wrapf(err, "requesting input line %d on %s", inputLine, chip)
	}
	return &Probe{out: out, in: in}, nil
}

// Set drives the output line high (active) or low.
func (p *Probe) Set(active bool) error {
	value := 0
	if active {
		value = 1
	}
	return errors.Wrap(p.out.SetValue(value), "writing output line")
}

// WaitForState busy-polls the input line until its logical state equals
// active. No sleep in the loop: each pass performs a real uAPI read, and
// anything gentler would add scheduler latency to the measured path.
func (p *Probe) WaitForState(active bool) error {
	// pull-up inversion: the line reads 0 while the contact is closed
	want := 1
	if active {
		want = 0
	}
	for {
		value, err := p.in.Value()
		if err != nil {
			return errors.Wrap(err, "reading input line")
		}
		if value == want {
			return nil
		}
	}
}

// Close returns the output line to its rest state and releases both lines.
func (p *Probe) Close() error {
	serr := p.out.SetValue(0)
	oerr := p.out.Close()
	ierr := p.in.Close()
	if serr != nil {
		return errors.Wrap(serr, "resting output line")
	}
	if oerr != nil {
		return oerr
	}
	return ierr
}
