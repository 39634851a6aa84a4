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
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebookincubator/evlat/evdev"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List input event devices and their ids",
	Run:   runEventsCmd,
}

func init() {
	RootCmd.AddCommand(eventsCmd)
}

func runEventsCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	if err := printEvents(os.Stdout, evdev.DefaultDir); err != nil {
		log.Fatal(err)
	}
}

func printEvents(w io.Writer, dir string) error {
	infos, err := evdev.List(dir)
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name"})
	for _, info := range infos {
		table.Append([]string{strconv.Itoa(info.ID), info.Name})
	}
	table.Render()
	return nil
}
