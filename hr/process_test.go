// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hr

import (
	"math"
	"testing"

	"github.com/emer/rthybrid/integ"
)

// countStepper counts Step calls and optionally forwards to another Stepper
type countStepper struct {
	N    int
	Dts  []float64
	Next integ.Stepper
}

func (cs *countStepper) Step(vars []float64, dt float64, fn integ.Derivs) {
	cs.N++
	cs.Dts = append(cs.Dts, dt)
	if cs.Next != nil {
		cs.Next.Step(vars, dt, fn)
	}
}

// nanStepper produces non-finite state after a given number of good steps
type nanStepper struct {
	Good int
	n    int
}

func (ns *nanStepper) Step(vars []float64, dt float64, fn integ.Derivs) {
	ns.n++
	if ns.n > ns.Good {
		vars[1] = math.NaN()
		return
	}
	for i := range vars {
		vars[i] += 1
	}
}

func TestProcessDefault(t *testing.T) {
	nrn := NewNeuron()
	nrn.Process(0.001)
	if !nrn.Vars.IsFinite() {
		t.Fatalf("non-finite state after one tick: %+v\n", nrn.Vars)
	}
	if nrn.Vars == DefaultInit {
		t.Errorf("state did not change\n")
	}
	// default burst 1s / 1ms = 1000 ticks per burst: coarsest step
	if nrn.Dt != 0.1 {
		t.Errorf("dt: %v\n", nrn.Dt)
	}
	// one RK4 step of 0.1 changes the state by a bounded amount
	dx := math.Abs(nrn.Vars.X - DefaultInit.X)
	dy := math.Abs(nrn.Vars.Y - DefaultInit.Y)
	dz := math.Abs(nrn.Vars.Z - DefaultInit.Z)
	if dx > 1 || dy > 1 || dz > 0.01 {
		t.Errorf("step too large: %v %v %v\n", dx, dy, dz)
	}

	// reproducible
	n2 := NewNeuron()
	n2.Process(0.001)
	if n2.Vars != nrn.Vars {
		t.Errorf("not reproducible: %+v vs %+v\n", n2.Vars, nrn.Vars)
	}
}

func TestProcessMatchesStepper(t *testing.T) {
	nrn := NewNeuron()
	nrn.Process(0.001)

	vars := []float64{DefaultInit.X, DefaultInit.Y, DefaultInit.Z}
	ctx := &Ctx{}
	ctx.Defaults()
	rk := &integ.RK4{}
	rk.Step(vars, 0.1, ctx)
	if nrn.Vars.X != vars[0] || nrn.Vars.Y != vars[1] || nrn.Vars.Z != vars[2] {
		t.Errorf("process != one RK4 step: %+v vs %v\n", nrn.Vars, vars)
	}
}

func TestProcessLong(t *testing.T) {
	for _, per := range []float64{1e-6, 1e-5, 1e-4, 0.001, 0.01} {
		nrn := NewNeuron()
		minX, maxX := math.Inf(1), math.Inf(-1)
		for i := 0; i < 20000; i++ {
			nrn.Process(per)
			if !nrn.Vars.IsFinite() {
				t.Fatalf("period: %v, tick: %v, non-finite: %+v\n", per, i, nrn.Vars)
			}
			minX = math.Min(minX, nrn.Vars.X)
			maxX = math.Max(maxX, nrn.Vars.X)
		}
		// the attractor stays within these bounds for the default params
		if minX < -3 || maxX > 3 {
			t.Errorf("period: %v, x range: %v .. %v\n", per, minX, maxX)
		}
	}
}

func TestProcessStableDt(t *testing.T) {
	for _, per := range []float64{1e-7, 2e-6, 5e-6, 1e-5, 5e-5, 1e-4, 3e-4, 0.001, 0.1} {
		nrn := NewNeuron()
		nrn.Process(per)
		dt := nrn.Dt
		if dt != SelectDt(1/per) {
			t.Errorf("period: %v, dt: %v, cor: %v\n", per, dt, SelectDt(1/per))
		}
		for i := 0; i < 10; i++ {
			nrn.Process(per)
			if nrn.Dt != dt {
				t.Errorf("period: %v, dt changed: %v -> %v\n", per, dt, nrn.Dt)
			}
		}
	}
}

func TestProcessBadPeriod(t *testing.T) {
	nrn := NewNeuron()
	cs := &countStepper{}
	nrn.Integ = cs
	for _, per := range []float64{0, -0.001, math.NaN(), math.Inf(1), math.Inf(-1)} {
		nrn.Process(per)
	}
	if cs.N != 0 || nrn.Vars != DefaultInit || nrn.PeriodSecs != 0.001 || nrn.Dt != DefaultDt {
		t.Errorf("bad period must be a no-op: steps: %v, vars: %+v, period: %v\n", cs.N, nrn.Vars, nrn.PeriodSecs)
	}
}

func TestProcessPeriodChange(t *testing.T) {
	nrn := NewNeuron()
	nrn.Process(0.001)
	if nrn.Dt != 0.1 {
		t.Errorf("dt: %v\n", nrn.Dt)
	}
	nrn.Process(0.001 + 1e-20) // within tolerance
	if nrn.PeriodSecs != 0.001 {
		t.Errorf("period changed within tolerance: %v\n", nrn.PeriodSecs)
	}
	nrn.Process(1e-6)
	if nrn.PeriodSecs != 1e-6 || nrn.Dt != 0.0005 {
		t.Errorf("period change: period: %v, dt: %v\n", nrn.PeriodSecs, nrn.Dt)
	}
	if math.Abs(nrn.Freq-1e6) > 1e-6 {
		t.Errorf("freq: %v\n", nrn.Freq)
	}
}

func TestProcessDeferredBurst(t *testing.T) {
	nrn := NewNeuron()
	nrn.SetConfigByName("Burst duration (s)", -1)
	nrn.Process(1e-5) // input burst 1 -> res 1e5 -> 0.003
	if nrn.Dt != 0.003 {
		t.Errorf("dt: %v\n", nrn.Dt)
	}
	nrn.SetInputByName("Burst duration (s)", 10) // res 1e6
	nrn.Process(1e-5)
	if nrn.BurstDur != 10 || nrn.Dt != 0.0005 {
		t.Errorf("input burst change not applied: burst: %v, dt: %v\n", nrn.BurstDur, nrn.Dt)
	}
}

func TestProcessSanitizeDt(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), 0, -1, MinDt} {
		nrn := NewNeuron()
		cs := &countStepper{}
		nrn.Process(0.001)
		nrn.Integ = cs
		nrn.Dt = bad
		nrn.Process(0.001)
		if nrn.Dt != DefaultDt || len(cs.Dts) != 1 || cs.Dts[0] != DefaultDt {
			t.Errorf("dt %v not sanitized: %v, %v\n", bad, nrn.Dt, cs.Dts)
		}
	}
}

func TestProcessReseed(t *testing.T) {
	nrn := NewNeuron()
	nrn.Integ = &countStepper{}
	nrn.SetConfig(ConfigX, 0.5)
	nrn.SetConfig(ConfigY, math.Inf(1))
	nrn.Process(0.001)
	if nrn.Vars != DefaultInit {
		t.Errorf("non-finite state must be fully reseeded: %+v\n", nrn.Vars)
	}
}

func TestProcessStepClamp(t *testing.T) {
	type tcase struct {
		steps, cor int
	}
	for _, tc := range []tcase{{0, 1}, {-4, 1}, {1, 1}, {7, 7}, {50, 50}, {51, 50}, {1000, 50}} {
		nrn := NewNeuron()
		nrn.Process(0.001)
		cs := &countStepper{}
		nrn.Integ = cs
		nrn.StepCount = tc.steps
		nrn.Process(0.001)
		if cs.N != tc.cor || nrn.StepCount != tc.cor {
			t.Errorf("steps: %v, ran: %v, count: %v, cor: %v\n", tc.steps, cs.N, nrn.StepCount, tc.cor)
		}
	}
	if ClampSteps(0) != 1 || ClampSteps(MaxSteps+1) != MaxSteps {
		t.Errorf("ClampSteps\n")
	}
}

func TestProcessRollback(t *testing.T) {
	nrn := NewNeuron()
	nrn.Process(0.001)
	pre := nrn.Vars
	nrn.SetConfig(ConfigA, math.Inf(1)) // derivative diverges immediately
	nrn.Process(0.001)
	if nrn.Vars != pre {
		t.Errorf("diverged step not rolled back: %+v vs %+v\n", nrn.Vars, pre)
	}
	nrn.SetConfig(ConfigA, math.NaN())
	nrn.Process(0.001)
	if nrn.Vars != pre {
		t.Errorf("NaN param step not rolled back: %+v vs %+v\n", nrn.Vars, pre)
	}
}

func TestProcessRollbackPartial(t *testing.T) {
	nrn := NewNeuron()
	nrn.Process(0.001)
	pre := nrn.Vars
	ns := &nanStepper{Good: 3}
	nrn.Integ = ns
	nrn.StepCount = 10
	nrn.Process(0.001)
	if ns.n != 4 {
		t.Errorf("remaining steps not aborted: %v steps\n", ns.n)
	}
	cor := State{pre.X + 1 + 1 + 1, pre.Y + 1 + 1 + 1, pre.Z + 1 + 1 + 1}
	if nrn.Vars != cor {
		t.Errorf("partial tick: %+v, cor: %+v\n", nrn.Vars, cor)
	}
}

func TestProcessSnapshot(t *testing.T) {
	// the derivative context is a copy: changes during a tick do not affect it
	nrn := NewNeuron()
	nrn.Process(0.001)
	var seen []float64
	nrn.Integ = &snoopStepper{fn: func(fn integ.Derivs) {
		nrn.Params.I = 100
		nrn.InputSyn = 100
		seen = append(seen, fn.(*Ctx).I, fn.(*Ctx).Isyn)
	}}
	nrn.StepCount = 2
	nrn.Process(0.001)
	if len(seen) != 4 || seen[0] != 3 || seen[1] != 0 || seen[2] != 3 || seen[3] != 0 {
		t.Errorf("context not a snapshot: %v\n", seen)
	}
}

type snoopStepper struct {
	fn func(fn integ.Derivs)
}

func (ss *snoopStepper) Step(vars []float64, dt float64, fn integ.Derivs) {
	ss.fn(fn)
}

func TestProcessEuler(t *testing.T) {
	nrn := NewNeuron()
	nrn.SetStepper(integ.EulerStep)
	nrn.Process(0.001)
	x, y, z := nrn.Params.Derivs(DefaultInit.X, DefaultInit.Y, DefaultInit.Z, 0)
	cor := State{DefaultInit.X + 0.1*x, DefaultInit.Y + 0.1*y, DefaultInit.Z + 0.1*z}
	if nrn.Vars != cor {
		t.Errorf("euler: %+v, cor: %+v\n", nrn.Vars, cor)
	}
	nrn.Integ = nil
	nrn.Process(0.001)
	if _, ok := nrn.Integ.(*integ.Euler); !ok {
		t.Errorf("nil Integ not rebuilt from Stepper: %T\n", nrn.Integ)
	}
}

func TestProcessSynInput(t *testing.T) {
	n1 := NewNeuron()
	n2 := NewNeuron()
	n2.SetInput(InputIsyn, 0.5)
	n1.Process(0.001)
	n2.Process(0.001)
	// positive Isyn is subtracted from dx/dt, so x is lower
	if !(n2.Vars.X < n1.Vars.X) {
		t.Errorf("Isyn effect: %v vs %v\n", n2.Vars.X, n1.Vars.X)
	}
}
