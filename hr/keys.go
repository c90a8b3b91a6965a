// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hr

import "github.com/goki/ki/kit"

//////////////////////////////////////////////////////////////////////
// ConfigKeys

// ConfigKeys are the recognized configuration keys.
// Names used by hosts, including all synonyms, are mapped onto these
// once at the boundary by ConfigKeyByName.
type ConfigKeys int

//go:generate stringer -type=ConfigKeys

var KiT_ConfigKeys = kit.Enums.AddEnum(ConfigKeysN, false, nil)

func (ev ConfigKeys) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ConfigKeys) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// ConfigX sets the x variable and its initial value (x, x0)
	ConfigX ConfigKeys = iota

	// ConfigY sets the y variable and its initial value (y, y0)
	ConfigY

	// ConfigZ sets the z variable and its initial value (z, z0)
	ConfigZ

	// ConfigI is the baseline drive current (I, i, e, E)
	ConfigI

	ConfigA
	ConfigB
	ConfigC
	ConfigD

	// ConfigR is the slow time scale (r, mu)
	ConfigR

	// ConfigS is the slow variable gain (s, S)
	ConfigS

	ConfigXr

	// ConfigVh is the z coupling (Vh, vh, VH)
	ConfigVh

	// ConfigBurstDur is the burst duration override in seconds -- <= -1 defers to the input
	ConfigBurstDur

	// ConfigPeriodSecs directly sets the observed tick period in seconds
	ConfigPeriodSecs

	ConfigKeysN
)

// ConfigAliases maps every recognized configuration name to its key
var ConfigAliases = map[string]ConfigKeys{
	"x":                  ConfigX,
	"x0":                 ConfigX,
	"y":                  ConfigY,
	"y0":                 ConfigY,
	"z":                  ConfigZ,
	"z0":                 ConfigZ,
	"I":                  ConfigI,
	"i":                  ConfigI,
	"e":                  ConfigI,
	"E":                  ConfigI,
	"a":                  ConfigA,
	"b":                  ConfigB,
	"c":                  ConfigC,
	"d":                  ConfigD,
	"r":                  ConfigR,
	"mu":                 ConfigR,
	"s":                  ConfigS,
	"S":                  ConfigS,
	"xr":                 ConfigXr,
	"Vh":                 ConfigVh,
	"vh":                 ConfigVh,
	"VH":                 ConfigVh,
	"Burst duration (s)": ConfigBurstDur,
	"period_seconds":     ConfigPeriodSecs,
}

// ConfigKeyByName returns the key for given configuration name or alias
func ConfigKeyByName(name string) (ConfigKeys, bool) {
	k, ok := ConfigAliases[name]
	return k, ok
}

//////////////////////////////////////////////////////////////////////
// InputKeys

// InputKeys are the externally driven, per-tick inputs
type InputKeys int

//go:generate stringer -type=InputKeys

var KiT_InputKeys = kit.Enums.AddEnum(InputKeysN, false, nil)

func (ev InputKeys) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *InputKeys) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// InputIsyn is the synaptic current, subtracted from dx/dt
	InputIsyn InputKeys = iota

	// InputBurstDur is the externally supplied burst duration in seconds
	InputBurstDur

	InputKeysN
)

// InputNames are the host-facing names of the inputs, in InputKeys order
var InputNames = [InputKeysN]string{"Isyn (nA)", "Burst duration (s)"}

// Name returns the host-facing name of the input
func (ev InputKeys) Name() string {
	if ev < 0 || ev >= InputKeysN {
		return ev.String()
	}
	return InputNames[ev]
}

// InputKeyByName returns the key for given host-facing input name
func InputKeyByName(name string) (InputKeys, bool) {
	for i, nm := range InputNames {
		if nm == name {
			return InputKeys(i), true
		}
	}
	return InputKeysN, false
}

//////////////////////////////////////////////////////////////////////
// OutputKeys

// OutputKeys are the available projections of the membrane potential
type OutputKeys int

//go:generate stringer -type=OutputKeys

var KiT_OutputKeys = kit.Enums.AddEnum(OutputKeysN, false, nil)

func (ev OutputKeys) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *OutputKeys) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// OutputVmV is x in volts (x / 1000)
	OutputVmV OutputKeys = iota

	// OutputVmMV is x in native model units, treated as millivolts
	OutputVmMV

	OutputKeysN
)

// OutputNames are the host-facing names of the outputs, in OutputKeys order
var OutputNames = [OutputKeysN]string{"Vm (v)", "Vm (mV)"}

// Name returns the host-facing name of the output
func (ev OutputKeys) Name() string {
	if ev < 0 || ev >= OutputKeysN {
		return ev.String()
	}
	return OutputNames[ev]
}

// OutputKeyByName returns the key for given host-facing output name
func OutputKeyByName(name string) (OutputKeys, bool) {
	for i, nm := range OutputNames {
		if nm == name {
			return OutputKeys(i), true
		}
	}
	return OutputKeysN, false
}
