// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hr

// NamedVal is a named default configuration value
type NamedVal struct {
	Name string
	Val  float64
}

// Behavior describes how a host should manage the model in its UI and run control
type Behavior struct {
	SupportsStartStop bool `desc:"model can be started and stopped"`
	SupportsRestart   bool `desc:"model supports Restart back to its configured initial condition"`
	SupportsApply     bool `desc:"model needs an explicit apply step for config changes -- false: changes take effect immediately"`
	LoadsStarted      bool `desc:"model starts running as soon as it is loaded"`
	ExternalWindow    bool `desc:"model opens its own window"`
	StartsExpanded    bool `desc:"host shows the model's settings expanded by default"`
}

// Descriptor is the metadata a host uses to load and wire the model
type Descriptor struct {
	Name         string
	Kind         string
	Type         string
	Inputs       []string
	Outputs      []string
	InternalVars []string
	DefaultVars  []NamedVal
	Behavior     Behavior
}

// DefaultVars returns the default configuration, in host display order
func DefaultVars() []NamedVal {
	var hp Params
	hp.Defaults()
	return []NamedVal{
		{"x0", DefaultInit.X},
		{"y0", DefaultInit.Y},
		{"z0", DefaultInit.Z},
		{"e", hp.I},
		{"a", hp.A},
		{"b", hp.B},
		{"c", hp.C},
		{"d", hp.D},
		{"mu", hp.R},
		{"S", hp.S},
		{"xr", hp.Xr},
		{"Vh", hp.Vh},
		{"Burst duration (s)", 1},
	}
}

// Describe returns the Descriptor for the Hindmarsh-Rose neuron model
func Describe() *Descriptor {
	return &Descriptor{
		Name:         "Hindmarsh-Rose 1984 Neuron",
		Kind:         "hindmarsh_rose_1984_neuron",
		Type:         "computational",
		Inputs:       InputNames[:],
		Outputs:      OutputNames[:],
		InternalVars: NeuronVars,
		DefaultVars:  DefaultVars(),
		Behavior: Behavior{
			SupportsStartStop: true,
			SupportsRestart:   true,
			StartsExpanded:    true,
		},
	}
}
