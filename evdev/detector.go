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

package evdev

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Detector watches one device for press/release records of a single key
// code. It implements the measurement loop's detector capability.
type Detector struct {
	dev  *Device
	code uint16
}

// NewDetector returns a detector for the given key code on dev. The
// detector does not own the device; closing it stays with the caller.
func NewDetector(dev *Device, code uint16) *Detector {
	return &Detector{dev: dev, code: code}
}

// WaitForState busy-polls the device until it reports the configured key
// pressed (active) or released. Reads that would block or are interrupted
// are retried immediately; that is the expected steady state while the
// key is idle. Records of other types, other codes or the wrong value are
// consumed and skipped. There is no timeout.
func (det *Detector) WaitForState(active bool) error {
	want := int32(KeyReleased)
	if active {
		want = KeyPressed
	}
	for {
		ev, err := det.dev.ReadEvent()
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return err
		}
		if ev.Type == EvKey && ev.Code == det.code && ev.Value == want {
			return nil
		}
	}
}
