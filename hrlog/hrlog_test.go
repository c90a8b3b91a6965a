// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hrlog

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/emer/rthybrid/hr"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-9

func runTrace(t *testing.T, tl *TraceLog, n int, per float64) *hr.Neuron {
	t.Helper()
	nrn := hr.NewNeuron()
	for i := 0; i < n; i++ {
		nrn.Process(per)
		tl.Record(i, float64(i)*per, nrn)
	}
	return nrn
}

func TestTraceRows(t *testing.T) {
	tl := NewTraceLog("Trace")
	nrn := runTrace(t, tl, 25, 0.001)
	if tl.Rows() != 25 {
		t.Errorf("rows: %v\n", tl.Rows())
	}
	dt := tl.Table
	if dt.CellFloat(ColTick, 24) != 24 {
		t.Errorf("last tick: %v\n", dt.CellFloat(ColTick, 24))
	}
	if dt.CellFloat(ColX, 24) != nrn.Vars.X || dt.CellFloat(ColZ, 24) != nrn.Vars.Z {
		t.Errorf("last state not recorded\n")
	}
	if math.Abs(dt.CellFloat(ColVmV, 24)-nrn.Vars.X/1000) > difTol || dt.CellFloat(ColVmMV, 24) != nrn.Vars.X {
		t.Errorf("Vm columns: %v %v\n", dt.CellFloat(ColVmV, 24), dt.CellFloat(ColVmMV, 24))
	}
	if dt.MetaData["name"] != "Trace" {
		t.Errorf("name: %v\n", dt.MetaData["name"])
	}

	tl.Config("Trace")
	if tl.Rows() != 0 {
		t.Errorf("Config did not reset rows: %v\n", tl.Rows())
	}
}

func TestTraceCSV(t *testing.T) {
	var buf bytes.Buffer
	tl := NewTraceLog("Trace")
	tl.SetFile(&buf)
	runTrace(t, tl, 10, 0.001)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 11 {
		t.Fatalf("expected header + 10 rows, got %v lines\n", len(lines))
	}
	if !strings.Contains(lines[0], ColTick) || !strings.Contains(lines[0], ColVmMV) {
		t.Errorf("header: %v\n", lines[0])
	}
	if strings.Contains(lines[1], ColTick) {
		t.Errorf("header repeated: %v\n", lines[1])
	}
	ncol := strings.Count(lines[0], ",")
	for i, ln := range lines[1:] {
		if strings.Count(ln, ",") != ncol {
			t.Errorf("row %v has wrong number of columns: %v\n", i, ln)
		}
	}
}

func TestSummary(t *testing.T) {
	tl := NewTraceLog("Trace")
	if sm := tl.Summary(); sm.Ticks != 0 || sm.Spikes != 0 {
		t.Errorf("empty summary: %+v\n", sm)
	}
	runTrace(t, tl, 20000, 0.001)
	sm := tl.Summary()
	if sm.Ticks != 20000 {
		t.Errorf("ticks: %v\n", sm.Ticks)
	}
	if !(sm.MinVm <= sm.MeanVm && sm.MeanVm <= sm.MaxVm) {
		t.Errorf("min/mean/max out of order: %+v\n", sm)
	}
	if sm.StdVm < 0 {
		t.Errorf("std: %v\n", sm.StdVm)
	}
	if math.Abs(sm.Dur-19999*0.001) > difTol {
		t.Errorf("dur: %v\n", sm.Dur)
	}
	// the default neuron bursts: x crosses 1 repeatedly within 20000 steps of 0.1
	if sm.Spikes == 0 {
		t.Errorf("no spikes: %+v\n", sm)
	}
}

func TestCountSpikes(t *testing.T) {
	vals := []float64{-1, 0, 1.5, 2, 0.5, 1, 1, -2, 3}
	if n := CountSpikes(vals, 1); n != 3 {
		t.Errorf("spikes: %v\n", n)
	}
	if n := CountSpikes(nil, 1); n != 0 {
		t.Errorf("nil spikes: %v\n", n)
	}
}

func TestSummaryOneTick(t *testing.T) {
	tl := NewTraceLog("Trace")
	nrn := runTrace(t, tl, 1, 0.001)
	sm := tl.Summary()
	if sm.Ticks != 1 || sm.StdVm != 0 || sm.Dur != 0 {
		t.Errorf("one tick summary: %+v\n", sm)
	}
	if sm.MinVm != nrn.Vars.X || sm.MeanVm != nrn.Vars.X || sm.MaxVm != nrn.Vars.X {
		t.Errorf("one tick Vm: %+v, x: %v\n", sm, nrn.Vars.X)
	}
}

// failWriter fails every write after the first lim bytes
type failWriter struct {
	lim int
	n   int
}

var errDiskFull = errors.New("disk full")

func (fw *failWriter) Write(p []byte) (int, error) {
	if fw.n+len(p) > fw.lim {
		return 0, errDiskFull
	}
	fw.n += len(p)
	return len(p), nil
}

func TestTraceWriteError(t *testing.T) {
	tl := NewTraceLog("Trace")
	if tl.Err() != nil {
		t.Errorf("error before any write: %v\n", tl.Err())
	}
	fw := &failWriter{lim: 200}
	tl.SetFile(fw)
	runTrace(t, tl, 20, 0.001)
	if tl.Rows() != 20 {
		t.Errorf("rows must still be recorded: %v\n", tl.Rows())
	}
	if !errors.Is(tl.Err(), errDiskFull) {
		t.Errorf("write error not kept: %v\n", tl.Err())
	}
	n := fw.n
	fw.lim = 1 << 20
	runTrace(t, tl, 2, 0.001)
	if fw.n != n {
		t.Errorf("rows written after an error: %v -> %v bytes\n", n, fw.n)
	}

	var buf bytes.Buffer
	tl.SetFile(&buf)
	if tl.Err() != nil {
		t.Errorf("SetFile did not clear error: %v\n", tl.Err())
	}
}
