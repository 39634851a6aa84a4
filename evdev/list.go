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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DeviceInfo identifies one input event device for the operator.
type DeviceInfo struct {
	ID   int
	Name string
}

// List scans dir for event devices and returns their (id, name) pairs
// sorted by id. Devices that cannot be opened, typically for permission
// reasons, are skipped; a device whose name cannot be queried is listed
// with an empty name.
func List(dir string) ([]DeviceInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	var infos []DeviceInfo
	for _, entry := range entries {
		id, ok := parseEventID(entry.Name())
		if !ok {
			continue
		}
		dev, err := openPath(filepath.Join(dir, entry.Name()), id)
		if err != nil {
			continue
		}
		infos = append(infos, DeviceInfo{ID: id, Name: dev.Name()})
		dev.Close()
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}

func parseEventID(name string) (int, bool) {
	s, ok := strings.CutPrefix(name, "event")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
