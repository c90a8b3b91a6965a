// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integ

// RK4 is the classic 4th order Runge-Kutta integrator.
// The zero value is ready to use.  Not safe for concurrent use:
// each integrated system should have its own RK4.
type RK4 struct {
	k1, k2, k3, k4 []float64
	tmp            []float64
}

// Step advances vars by dt:
// vars += dt/6 * (k1 + 2 k2 + 2 k3 + k4)
func (rk *RK4) Step(vars []float64, dt float64, fn Derivs) {
	n := len(vars)
	rk.k1 = resize(rk.k1, n)
	rk.k2 = resize(rk.k2, n)
	rk.k3 = resize(rk.k3, n)
	rk.k4 = resize(rk.k4, n)
	rk.tmp = resize(rk.tmp, n)

	hdt := 0.5 * dt
	fn.Derivs(vars, rk.k1)
	for i, v := range vars {
		rk.tmp[i] = v + hdt*rk.k1[i]
	}
	fn.Derivs(rk.tmp, rk.k2)
	for i, v := range vars {
		rk.tmp[i] = v + hdt*rk.k2[i]
	}
	fn.Derivs(rk.tmp, rk.k3)
	for i, v := range vars {
		rk.tmp[i] = v + dt*rk.k3[i]
	}
	fn.Derivs(rk.tmp, rk.k4)

	sdt := dt / 6
	for i := range vars {
		vars[i] += sdt * (rk.k1[i] + 2*rk.k2[i] + 2*rk.k3[i] + rk.k4[i])
	}
}

// Euler is the forward Euler integrator: vars += dt * f(vars)
type Euler struct {
	dv []float64
}

// Step advances vars by dt
func (eu *Euler) Step(vars []float64, dt float64, fn Derivs) {
	eu.dv = resize(eu.dv, len(vars))
	fn.Derivs(vars, eu.dv)
	for i := range vars {
		vars[i] += dt * eu.dv[i]
	}
}
