// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hr

import (
	"math"

	"github.com/emer/rthybrid/integ"
)

// Process advances the neuron by one real-time tick of periodSecs seconds,
// taking StepCount integration steps of Dt.  It never fails:
// an invalid period is a no-op, invalid Dt or state is reset before
// stepping, and a step producing non-finite state is rolled back and
// ends the tick, leaving the last valid state.
func (nrn *Neuron) Process(periodSecs float64) {
	if !isFinite(periodSecs) || periodSecs <= 0 {
		return
	}
	if !(math.Abs(nrn.PeriodSecs-periodSecs) <= PeriodTol) { // also true for a NaN PeriodSecs
		nrn.PeriodSecs = periodSecs
		nrn.Freq = 1 / periodSecs
		nrn.UpdateBurst()
	} else if !nrn.policyOK || nrn.ResolveBurstDur() != nrn.BurstDur {
		nrn.UpdateBurst()
	}

	if !validDt(nrn.Dt) {
		nrn.Dt = DefaultDt
	}
	if !nrn.Vars.IsFinite() {
		nrn.Vars = DefaultInit
	}
	nrn.StepCount = ClampSteps(nrn.StepCount)
	if nrn.Integ == nil {
		nrn.Integ = integ.New(nrn.Stepper)
	}

	ctx := &Ctx{Params: nrn.Params, Isyn: nrn.InputSyn}
	vars := nrn.vars[:]
	for step := 0; step < nrn.StepCount; step++ {
		nrn.Vars.ToVars(vars) // Vars keeps the pre-step values until the step is accepted
		nrn.Integ.Step(vars, nrn.Dt, ctx)
		if !isFinite(vars[0]) || !isFinite(vars[1]) || !isFinite(vars[2]) {
			break
		}
		nrn.Vars.FromVars(vars)
	}
}

// ClampSteps clamps a step count to [1, MaxSteps]
func ClampSteps(n int) int {
	switch {
	case n < 1:
		return 1
	case n > MaxSteps:
		return MaxSteps
	}
	return n
}
