// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package integ provides fixed-order, single-step numerical integrators for
small ordinary differential equation systems, such as the three-variable
Hindmarsh-Rose neuron in package hr.

A Stepper advances a state vector in place by exactly one step of size dt,
using repeated evaluations of a Derivs function.  Steppers are deterministic
given identical inputs, and have no side effects beyond the state vector
and their own scratch buffers -- they allocate only on first use or when
the state size changes, so they can run inside a real-time tick.
*/
package integ

import "github.com/goki/ki/kit"

// Derivs computes the instantaneous rate of change dvars of the state vars.
// Both slices have the same length.  Implementations must be pure.
type Derivs interface {
	Derivs(vars, dvars []float64)
}

// DerivsFunc adapts a plain function to the Derivs interface
type DerivsFunc func(vars, dvars []float64)

// Derivs calls the function
func (fn DerivsFunc) Derivs(vars, dvars []float64) { fn(vars, dvars) }

// Stepper advances vars in place by one integration step of size dt
type Stepper interface {
	Step(vars []float64, dt float64, fn Derivs)
}

// Steppers are the available integration methods
type Steppers int

//go:generate stringer -type=Steppers

var KiT_Steppers = kit.Enums.AddEnum(SteppersN, false, nil)

func (ev Steppers) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Steppers) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// RK4Step is the classic 4th order Runge-Kutta step -- 4 derivative evaluations per step
	RK4Step Steppers = iota

	// EulerStep is the forward Euler step -- 1 derivative evaluation per step, mostly for testing
	EulerStep

	SteppersN
)

// New returns a new Stepper of given type.  Unknown types get RK4.
func New(typ Steppers) Stepper {
	switch typ {
	case EulerStep:
		return &Euler{}
	default:
		return &RK4{}
	}
}

// resize returns buf with length n, reusing its storage when possible
func resize(buf []float64, n int) []float64 {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}
