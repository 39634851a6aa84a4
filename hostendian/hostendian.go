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
Package hostendian provides the byte order of the machine this code is
running on.

Records read from kernel interfaces such as evdev come back in host byte
order, which typically is LittleEndian but is not guaranteed to be, so
decoding them needs the detected order rather than a hard-coded one.
*/
package hostendian

import (
	"encoding/binary"
	"unsafe"
)

// Order of the bytes
var Order binary.ByteOrder = binary.LittleEndian

// IsBigEndian is a flag determining if value is in Big Endian
var IsBigEndian bool

func init() {
	var i uint16 = 0x0100
	ptr := unsafe.Pointer(&i)
	if *(*byte)(ptr) == 0x01 {
		// we are on the big endian machine
		IsBigEndian = true
		Order = binary.BigEndian
	}
}
