// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hr provides the Hindmarsh-Rose (1984) three-variable neuron model,
for use in real-time hybrid circuits where model neurons interact with
living or hardware neurons on a fixed real-time clock tick.

The model equations are:

	dx/dt = y + b x^2 - a x^3 - Vh z + I - Isyn
	dy/dt = c - d x^2 - y
	dz/dt = r (s (x - xr) - Vh z)

x is the membrane-potential-like fast variable, y the fast recovery variable,
and z the slow adaptation current that produces bursting.

Because the model has no physical time scale, each Neuron adapts its
integration step (Dt) to the ratio between the desired burst duration and the
real-time tick period, using a fixed table (see SelectDt).  The Neuron.Process
method is called once per tick, and never fails: invalid periods are ignored,
invalid state is reseeded, and any integration step that diverges is rolled back.
*/
package hr

import "math"

// State is the Hindmarsh-Rose state vector
type State struct {

	// membrane potential (fast) variable, treated as millivolts
	X float64

	// fast recovery variable
	Y float64

	// slow adaptation current
	Z float64
}

// DefaultInit is the initial condition for all new neurons and for reseeding
// after invalid state: a point near the chaotic attractor of the default parameters.
var DefaultInit = State{X: -0.9013747551021072, Y: -3.15948829665501, Z: 3.247826955037619}

// IsFinite returns true if all variables are finite (no NaN or Inf)
func (st *State) IsFinite() bool {
	return isFinite(st.X) && isFinite(st.Y) && isFinite(st.Z)
}

// ToVars copies the state into a vars slice of at least length 3
func (st *State) ToVars(vars []float64) {
	vars[0], vars[1], vars[2] = st.X, st.Y, st.Z
}

// FromVars sets the state from a vars slice of at least length 3
func (st *State) FromVars(vars []float64) {
	st.X, st.Y, st.Z = vars[0], vars[1], vars[2]
}

// Params are the Hindmarsh-Rose model parameters
type Params struct {
	A  float64 `def:"1" desc:"coefficient on the cubic x^3 term of dx/dt"`
	B  float64 `def:"3" desc:"coefficient on the quadratic x^2 term of dx/dt"`
	C  float64 `def:"1" desc:"constant term of dy/dt"`
	D  float64 `def:"5" desc:"coefficient on the quadratic x^2 term of dy/dt"`
	R  float64 `def:"0.0021" desc:"(mu) time scale of the slow adaptation variable z -- smaller = slower bursts"`
	S  float64 `def:"4" desc:"gain of x on the slow adaptation variable z"`
	Xr float64 `def:"-1.6" desc:"equilibrium offset of x for the slow adaptation variable"`
	Vh float64 `def:"1" desc:"coupling of z into dx/dt and self-decay of z"`
	I  float64 `def:"3" desc:"(e) baseline external drive current"`
}

func (hp *Params) Defaults() {
	hp.A = 1
	hp.B = 3
	hp.C = 1
	hp.D = 5
	hp.R = 0.0021
	hp.S = 4
	hp.Xr = -1.6
	hp.Vh = 1
	hp.I = 3
}

// Derivs returns the rate of change of x, y, z given synaptic input isyn.
// Total for any finite input -- extreme values are the caller's concern.
func (hp *Params) Derivs(x, y, z, isyn float64) (dx, dy, dz float64) {
	x2 := x * x
	dx = y + hp.B*x2 - hp.A*x2*x - hp.Vh*z + hp.I - isyn
	dy = hp.C - hp.D*x2 - y
	dz = hp.R * (hp.S*(x-hp.Xr) - z*hp.Vh)
	return
}

// Ctx is an immutable snapshot of parameters and synaptic input for one tick.
// It implements integ.Derivs on a 3-element vars vector (x, y, z).
type Ctx struct {
	Params
	Isyn float64
}

// Derivs implements integ.Derivs
func (cx *Ctx) Derivs(vars, dvars []float64) {
	dvars[0], dvars[1], dvars[2] = cx.Params.Derivs(vars[0], vars[1], vars[2], cx.Isyn)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
