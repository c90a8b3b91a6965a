// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hr

import "math"

// DtRes pairs an integration step size with the minimum required resolution
// (ticks per burst) at which that step is selected
type DtRes struct {
	Dt  float64
	Res float64
}

// DtTable is the step size table, finest step first.
// These values were validated against reference outputs of the model --
// any change here is a behavioral change.
var DtTable = [12]DtRes{
	{0.0005, 577638.0},
	{0.001, 286092.5},
	{0.0015, 189687.0},
	{0.002, 142001.8},
	{0.003, 94527.4},
	{0.005, 56664.4},
	{0.01, 28313.6},
	{0.015, 18381.1},
	{0.02, 14223.2},
	{0.03, 9497.0},
	{0.05, 5716.9},
	{0.1, 2829.7},
}

const (
	// DefaultDt is the step size used at construction and whenever Dt becomes invalid
	DefaultDt = 0.0015

	// MinDt is the floor at or below which Dt is considered decayed (smallest normal float64)
	MinDt = 0x1p-1022

	// MinBurstDur is the floor for a non-positive resolved burst duration
	MinBurstDur = 1e-9

	// MaxSteps is the maximum number of integration steps per tick
	MaxSteps = 50

	// PeriodTol is the tolerance for detecting a change in tick period (float64 epsilon)
	PeriodTol = 0x1p-52
)

// SelectDt returns the step size for the given required resolution
// (burst duration / tick period): the finest step whose threshold is
// at or below res, or the coarsest step if none is.
func SelectDt(res float64) float64 {
	for _, dr := range DtTable {
		if dr.Res <= res {
			return dr.Dt
		}
	}
	return DtTable[len(DtTable)-1].Dt
}

// ResolveBurstDur returns the effective burst duration: the configured
// BurstDurValue unless it is <= -1, in which case the externally supplied
// InputBurstDur is used.  Non-positive or invalid values get MinBurstDur.
func (nrn *Neuron) ResolveBurstDur() float64 {
	burst := nrn.BurstDurValue
	if burst <= -1 {
		burst = nrn.InputBurstDur
	}
	if math.IsNaN(burst) || burst <= 0 {
		burst = MinBurstDur
	}
	return burst
}

// UpdateBurst re-derives BurstDur, Dt and StepCount from the current
// burst settings and PeriodSecs.  If PeriodSecs is not positive, only
// StepCount is reset and Dt is left as is.
func (nrn *Neuron) UpdateBurst() {
	if !(nrn.PeriodSecs > 0) {
		nrn.StepCount = 1
		nrn.policyOK = false
		return
	}
	nrn.BurstDur = nrn.ResolveBurstDur()
	nrn.Dt = SelectDt(nrn.BurstDur / nrn.PeriodSecs)
	if !validDt(nrn.Dt) {
		nrn.Dt = DefaultDt
	}
	nrn.StepCount = 1
	nrn.policyOK = true
}

// Res returns the current required resolution: number of ticks per burst
func (nrn *Neuron) Res() float64 {
	if !(nrn.PeriodSecs > 0) {
		return 0
	}
	return nrn.BurstDur / nrn.PeriodSecs
}

func validDt(dt float64) bool {
	return isFinite(dt) && dt > MinDt
}
