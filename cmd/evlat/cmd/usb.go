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

	"github.com/facebookincubator/evlat/evdev"
	"github.com/facebookincubator/evlat/gpio"
)

var usbCmd = &cobra.Command{
	Use:   "usb",
	Short: "Measure latency via a kernel input event device",
	Long: `Measure latency via a kernel input event device. The GPIO output
line still actuates the device under test; detection happens on the key
press/release records the device emits. Use 'evlat events' to discover
event device ids.`,
	Run: runUsbCmd,
}

func init() {
	RootCmd.AddCommand(usbCmd)
	flags := usbCmd.Flags()
	flags.IntVarP(&cfg.Device, "device", "u", -1, "event device id, as listed by 'evlat events'")
	flags.IntVarP(&cfg.Key, "key", "k", -1, "event code of the key under test, see the kernel's input-event-codes.h")
	flags.StringVar(&cfg.Chip, "chip", gpio.DefaultChip, "GPIO character device to request lines from")
	flags.IntVar(&cfg.OutputLine, "output-line", gpio.DefaultOutputLine, "line offset of the trigger output")
	flags.IntVar(&cfg.InputLine, "input-line", gpio.DefaultInputLine, "line offset of the sensed input")
}

func runUsbCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	cfg.USB = true
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if err := measureUSB(); err != nil {
		log.Fatal(err)
	}
}

func measureUSB() error {
	dev, err := evdev.Open(cfg.Device)
	if err != nil {
		return err
	}
	defer dev.Close()
	probe, err := gpio.Open(cfg.Chip, cfg.OutputLine, cfg.InputLine)
	if err != nil {
		return err
	}
	defer probe.Close()
	return runMeasurement(probe, evdev.NewDetector(dev, uint16(cfg.Key)))
}
