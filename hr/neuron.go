// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hr

import (
	"math"

	"github.com/emer/rthybrid/integ"
)

// hr.Neuron holds the state, parameters and adaptive stepping bookkeeping
// for one Hindmarsh-Rose neuron.  It is owned by the host, which must
// serialize all calls on a given Neuron -- there is no internal locking.
type Neuron struct {

	// current state variables x, y, z -- always finite after Process
	Vars State

	// configured initial condition, restored by Restart
	Init State

	// model parameters
	Params Params `view:"inline"`

	// integration step size in model time units, derived from the burst / period ratio -- not directly settable
	Dt float64 `inactive:"+"`

	// effective burst duration in seconds driving the step size policy, always > 0
	BurstDur float64 `inactive:"+"`

	// configured burst duration override in seconds -- <= -1 means use InputBurstDur
	BurstDurValue float64 `def:"1"`

	// real-time tick period last observed from the host, in seconds
	PeriodSecs float64 `inactive:"+"`

	// 1 / PeriodSecs
	Freq float64 `inactive:"+"`

	// number of integration steps per tick, clamped to [1, MaxSteps] at Process
	StepCount int `inactive:"+"`

	// synaptic current input for the current tick
	InputSyn float64

	// externally supplied burst duration for the current tick, in seconds
	InputBurstDur float64

	// integration method
	Stepper integ.Steppers

	// the integrator -- any integ.Stepper can be substituted here
	Integ integ.Stepper `view:"-" json:"-"`

	// true once the step size policy has been derived for the current PeriodSecs
	policyOK bool

	// integration vector, reused across steps
	vars [3]float64
}

// NewNeuron returns a new Neuron in its default state
func NewNeuron() *Neuron {
	nrn := &Neuron{}
	nrn.Defaults()
	return nrn
}

// Defaults sets the default initial condition, parameters and step size
func (nrn *Neuron) Defaults() {
	nrn.Vars = DefaultInit
	nrn.Init = DefaultInit
	nrn.Params.Defaults()
	nrn.Dt = DefaultDt
	nrn.BurstDur = 1
	nrn.BurstDurValue = 1
	nrn.PeriodSecs = 0.001
	nrn.Freq = 1000
	nrn.StepCount = 1
	nrn.InputSyn = 0
	nrn.InputBurstDur = 1
	nrn.Stepper = integ.RK4Step
	nrn.Integ = integ.New(nrn.Stepper)
	nrn.policyOK = false
}

// Restart restores the configured initial condition and clears the
// per-tick inputs.  Parameters and burst settings are retained.
func (nrn *Neuron) Restart() {
	nrn.Vars = nrn.Init
	nrn.InputSyn = 0
	nrn.InputBurstDur = 1
	nrn.UpdateBurst()
}

// SetStepper sets the integration method, replacing Integ
func (nrn *Neuron) SetStepper(typ integ.Steppers) {
	nrn.Stepper = typ
	nrn.Integ = integ.New(typ)
}

///////////////////////////////////////////////////////////////////////
//  Config

// SetConfig sets the field for given key and re-derives the step size
// policy.  No validation: non-finite values are caught at Process.
func (nrn *Neuron) SetConfig(key ConfigKeys, val float64) {
	switch key {
	case ConfigX:
		nrn.Vars.X, nrn.Init.X = val, val
	case ConfigY:
		nrn.Vars.Y, nrn.Init.Y = val, val
	case ConfigZ:
		nrn.Vars.Z, nrn.Init.Z = val, val
	case ConfigI:
		nrn.Params.I = val
	case ConfigA:
		nrn.Params.A = val
	case ConfigB:
		nrn.Params.B = val
	case ConfigC:
		nrn.Params.C = val
	case ConfigD:
		nrn.Params.D = val
	case ConfigR:
		nrn.Params.R = val
	case ConfigS:
		nrn.Params.S = val
	case ConfigXr:
		nrn.Params.Xr = val
	case ConfigVh:
		nrn.Params.Vh = val
	case ConfigBurstDur:
		nrn.BurstDurValue = val
	case ConfigPeriodSecs:
		nrn.PeriodSecs = val
		if val > 0 {
			nrn.Freq = 1 / val
		}
	default:
		return
	}
	nrn.UpdateBurst()
}

// SetConfigByName sets the configuration value for given name or alias.
// Unknown names are ignored, and false is returned.
func (nrn *Neuron) SetConfigByName(name string, val float64) bool {
	key, ok := ConfigKeyByName(name)
	if !ok {
		return false
	}
	nrn.SetConfig(key, val)
	return true
}

// Config returns the current value for given configuration key
func (nrn *Neuron) Config(key ConfigKeys) float64 {
	switch key {
	case ConfigX:
		return nrn.Vars.X
	case ConfigY:
		return nrn.Vars.Y
	case ConfigZ:
		return nrn.Vars.Z
	case ConfigI:
		return nrn.Params.I
	case ConfigA:
		return nrn.Params.A
	case ConfigB:
		return nrn.Params.B
	case ConfigC:
		return nrn.Params.C
	case ConfigD:
		return nrn.Params.D
	case ConfigR:
		return nrn.Params.R
	case ConfigS:
		return nrn.Params.S
	case ConfigXr:
		return nrn.Params.Xr
	case ConfigVh:
		return nrn.Params.Vh
	case ConfigBurstDur:
		return nrn.BurstDurValue
	case ConfigPeriodSecs:
		return nrn.PeriodSecs
	}
	return 0
}

///////////////////////////////////////////////////////////////////////
//  Inputs

// SetInput sets given per-tick input.  Non-finite Isyn becomes 0 and
// non-finite burst duration becomes 1.
func (nrn *Neuron) SetInput(key InputKeys, val float64) {
	switch key {
	case InputIsyn:
		if !isFinite(val) {
			val = 0
		}
		nrn.InputSyn = val
	case InputBurstDur:
		if !isFinite(val) {
			val = 1
		}
		nrn.InputBurstDur = val
	}
}

// SetInputByName sets the input with given host-facing name,
// returning false if the name is not a recognized input
func (nrn *Neuron) SetInputByName(name string, val float64) bool {
	key, ok := InputKeyByName(name)
	if !ok {
		return false
	}
	nrn.SetInput(key, val)
	return true
}

///////////////////////////////////////////////////////////////////////
//  Outputs

// Output returns given projection of the membrane potential x
func (nrn *Neuron) Output(key OutputKeys) float64 {
	switch key {
	case OutputVmV:
		return nrn.Vars.X / 1000
	case OutputVmMV:
		return nrn.Vars.X
	}
	return 0
}

// OutputByName returns the output with given host-facing name, 0 if unknown
func (nrn *Neuron) OutputByName(name string) float64 {
	key, ok := OutputKeyByName(name)
	if !ok {
		return 0
	}
	return nrn.Output(key)
}

// NeuronVars are the internal variables exposed by VarByName
var NeuronVars = []string{"x", "y", "z"}

// VarByName returns internal variable x, y or z, or false if not valid
func (nrn *Neuron) VarByName(varNm string) (float64, bool) {
	switch varNm {
	case "x":
		return nrn.Vars.X, true
	case "y":
		return nrn.Vars.Y, true
	case "z":
		return nrn.Vars.Z, true
	}
	return math.NaN(), false
}
