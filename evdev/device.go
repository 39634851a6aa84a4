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
Package evdev gives access to kernel input event devices
(/dev/input/eventN): non-blocking reads of raw input_event records,
device naming and enumeration, and a key-event detector for the
measurement loop.
*/
package evdev

import (
	"fmt"
	"io"
	"path/filepath"
	"unsafe"

	"github.com/vtolstov/go-ioctl"
	"golang.org/x/sys/unix"

	"github.com/facebookincubator/evlat/hostendian"
)

// DefaultDir is where the kernel exposes input event devices.
const DefaultDir = "/dev/input"

// EvKey is the event type carrying key and button press/release records,
// as per Linux kernel's include/uapi/linux/input-event-codes.h.
const EvKey = 0x01

// Key event values as reported by the kernel.
const (
	KeyReleased = 0
	KeyPressed  = 1
)

// A struct input_event is a struct timeval followed by type, code and
// value. The timeval width differs between 32 and 64 bit kernels, so the
// offsets are derived rather than hard-coded.
const (
	timevalSize = int(unsafe.Sizeof(unix.Timeval{}))
	eventSize   = timevalSize + 8
)

// maxNameLen bounds the name returned by the EVIOCGNAME ioctl.
const maxNameLen = 256

// ioctlEviocgName is an IOCTL corresponding to EVIOCGNAME(maxNameLen) in linux/input.h
var ioctlEviocgName = ioctl.IOR('E', 0x06, maxNameLen)

// Event is one decoded input_event record. The kernel timestamp is not
// carried: detection latency is measured on the monotonic clock around
// the whole read, not from the record itself.
type Event struct {
	Type  uint16
	Code  uint16
	Value int32
}

// Device is an exclusively owned handle to one input event device, opened
// in non-blocking mode so reads never park the polling loop in the kernel.
type Device struct {
	fd   int
	id   int
	path string
}

// Open opens /dev/input/event<id> for non-blocking reads. Failure to open
// is terminal for a measurement run: it means a wrong id or insufficient
// permissions, not a transient condition.
func Open(id int) (*Device, error) {
	return openPath(filepath.Join(DefaultDir, fmt.Sprintf("event%d", id)), id)
}

func openPath(path string, id int) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("opening event device %d (%s): %w", id, path, err)
	}
	return &Device{fd: fd, id: id, path: path}, nil
}

// ID returns the numeric event device id the handle was opened with.
func (d *Device) ID() int {
	return d.id
}

// Name returns the device name reported by the kernel, or an empty string
// when the handle does not support the naming ioctl.
func (d *Device) Name() string {
	var name [maxNameLen]byte
	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL, uintptr(d.fd),
		ioctlEviocgName,
		uintptr(unsafe.Pointer(&name[0])),
	)
	if errno != 0 {
		return ""
	}
	return unix.ByteSliceToString(name[:])
}

// ReadEvent reads and decodes a single input_event record. With no record
// queued the read fails with unix.EAGAIN; callers busy-polling the device
// are expected to retry immediately.
func (d *Device) ReadEvent() (Event, error) {
	var buf [eventSize]byte
	n, err := unix.Read(d.fd, buf[:])
	if err != nil {
		return Event{}, err
	}
	if n == 0 {
		return Event{}, io.EOF
	}
	if n != eventSize {
		return Event{}, fmt.Errorf("short event record from %s: %d bytes", d.path, n)
	}
	return Event{
		Type:  hostendian.Order.Uint16(buf[timevalSize : timevalSize+2]),
		Code:  hostendian.Order.Uint16(buf[timevalSize+2 : timevalSize+4]),
		Value: int32(hostendian.Order.Uint32(buf[timevalSize+4 : timevalSize+8])),
	}, nil
}

// Close releases the device handle.
func (d *Device) Close() error {
	return unix.Close(d.fd)
}
