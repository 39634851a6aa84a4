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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPinConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		DelayMin:   DefaultDelayMin,
		DelayMax:   DefaultDelayMax,
		Pin:        true,
		Device:     -1,
		Key:        -1,
	}
}

func validUSBConfig() Config {
	c := validPinConfig()
	c.Pin = false
	c.USB = true
	c.Device = 3
	c.Key = 272
	return c
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mangle  func(*Config)
		wantErr string
	}{
		{"valid pin", func(c *Config) {}, ""},
		{"valid usb", func(c *Config) { *c = validUSBConfig() }, ""},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }, "iterations"},
		{"negative iterations", func(c *Config) { c.Iterations = -5 }, "iterations"},
		{"negative delay", func(c *Config) { c.DelayMin = -1 }, "negative"},
		{"inverted delays", func(c *Config) { c.DelayMin = 100; c.DelayMax = 50 }, "delaymin"},
		{"no variant", func(c *Config) { c.Pin = false }, "variant"},
		{"both variants", func(c *Config) { c.USB = true; c.Device = 0; c.Key = 1 }, "variant"},
		{"usb without key", func(c *Config) { *c = validUSBConfig(); c.Key = -1 }, "key"},
		{"usb without device", func(c *Config) { *c = validUSBConfig(); c.Device = -1 }, "device"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validPinConfig()
			tt.mangle(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestPrintSummaryPin(t *testing.T) {
	c := validPinConfig()
	var buf bytes.Buffer
	require.NoError(t, c.PrintSummary(&buf))
	require.Equal(t,
		`{"iterations":1000,"delay_min":10000,"delay_max":20000,"pin":true,"usb":null,"key":null}`+"\n",
		buf.String())
}

func TestPrintSummaryUSB(t *testing.T) {
	c := validUSBConfig()
	var buf bytes.Buffer
	require.NoError(t, c.PrintSummary(&buf))
	require.Equal(t,
		`{"iterations":1000,"delay_min":10000,"delay_max":20000,"pin":false,"usb":3,"key":272}`+"\n",
		buf.String())
}
