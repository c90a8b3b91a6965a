// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hrlog records the per-tick state of an hr.Neuron into an etable.Table,
optionally streaming each row as CSV as it is recorded, and summarizes the
recorded membrane potential trace.
*/
package hrlog

import (
	"fmt"
	"io"
	"strconv"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/rthybrid/hr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 6

// Column names of the trace table
const (
	ColTick = "Tick"
	ColTime = "Time"
	ColVmMV = "Vm_mV"
	ColVmV  = "Vm_V"
	ColX    = "X"
	ColY    = "Y"
	ColZ    = "Z"
	ColIsyn = "Isyn"
	ColDt   = "Dt"
)

// TraceLog records neuron state per tick
type TraceLog struct {

	// the trace table -- one row per recorded tick
	Table *etable.Table

	// if non-nil, each row is written as CSV as it is recorded
	File io.Writer `view:"-"`

	// delimiter for File output
	Delim etable.Delims

	// spike threshold on x, for counting spikes in Summary
	SpikeThr float64 `def:"1"`

	// headers have been written to File
	hdrs bool

	// File, recording the first write error
	out *errWriter
}

// NewTraceLog returns a new configured TraceLog with given name
func NewTraceLog(name string) *TraceLog {
	tl := &TraceLog{}
	tl.Config(name)
	return tl
}

// Config configures the table schema, clearing any rows
func (tl *TraceLog) Config(name string) {
	tl.SpikeThr = 1
	tl.Delim = etable.Comma
	tl.hdrs = false
	tl.out = nil
	if tl.Table == nil {
		tl.Table = &etable.Table{}
	}
	dt := tl.Table
	dt.SetMetaData("name", name)
	dt.SetMetaData("desc", "Hindmarsh-Rose neuron state per real-time tick")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{ColTick, etensor.INT64, nil, nil},
		{ColTime, etensor.FLOAT64, nil, nil},
		{ColVmMV, etensor.FLOAT64, nil, nil},
		{ColVmV, etensor.FLOAT64, nil, nil},
		{ColX, etensor.FLOAT64, nil, nil},
		{ColY, etensor.FLOAT64, nil, nil},
		{ColZ, etensor.FLOAT64, nil, nil},
		{ColIsyn, etensor.FLOAT64, nil, nil},
		{ColDt, etensor.FLOAT64, nil, nil},
	}
	dt.SetFromSchema(sch, 0)
}

// SetFile sets the CSV output writer -- headers are written with the next row
func (tl *TraceLog) SetFile(w io.Writer) {
	tl.File = w
	tl.hdrs = false
	tl.out = nil
}

// Err returns the first error writing to File, if any.
// Once an error occurs no further rows are written to File.
func (tl *TraceLog) Err() error {
	if tl.out == nil {
		return nil
	}
	return tl.out.err
}

// Rows returns the number of recorded rows
func (tl *TraceLog) Rows() int {
	return tl.Table.Rows
}

// Record adds a row for given tick at given real time (seconds) from the neuron state
func (tl *TraceLog) Record(tick int, tm float64, nrn *hr.Neuron) {
	dt := tl.Table
	row := dt.Rows
	dt.SetNumRows(row + 1)

	dt.SetCellFloat(ColTick, row, float64(tick))
	dt.SetCellFloat(ColTime, row, tm)
	dt.SetCellFloat(ColVmMV, row, nrn.Output(hr.OutputVmMV))
	dt.SetCellFloat(ColVmV, row, nrn.Output(hr.OutputVmV))
	dt.SetCellFloat(ColX, row, nrn.Vars.X)
	dt.SetCellFloat(ColY, row, nrn.Vars.Y)
	dt.SetCellFloat(ColZ, row, nrn.Vars.Z)
	dt.SetCellFloat(ColIsyn, row, nrn.InputSyn)
	dt.SetCellFloat(ColDt, row, nrn.Dt)

	if tl.File != nil {
		tl.writeRow(row)
	}
}

func (tl *TraceLog) writeRow(row int) {
	if tl.out == nil {
		tl.out = &errWriter{w: tl.File}
	}
	out := tl.out
	if out.err != nil {
		return
	}
	dt := tl.Table
	if !tl.hdrs {
		if _, err := dt.WriteCSVHeaders(out, tl.Delim); err != nil {
			out.setErr(err)
			return
		}
		tl.hdrs = true
	}
	if err := dt.WriteCSVRow(out, row, tl.Delim); err != nil {
		out.setErr(err)
	}
}

// errWriter keeps the first error from w
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	n, err := ew.w.Write(p)
	if err != nil {
		ew.setErr(err)
	}
	return n, err
}

func (ew *errWriter) setErr(err error) {
	if ew.err == nil {
		ew.err = fmt.Errorf("hrlog: write trace: %w", err)
	}
}

// Column returns a copy of the values of given column
func (tl *TraceLog) Column(colNm string) []float64 {
	dt := tl.Table
	vals := make([]float64, dt.Rows)
	for i := range vals {
		vals[i] = dt.CellFloat(colNm, i)
	}
	return vals
}

// Summary are statistics of a recorded trace
type Summary struct {
	Ticks  int     `desc:"number of recorded ticks"`
	MinVm  float64 `desc:"minimum Vm in mV"`
	MaxVm  float64 `desc:"maximum Vm in mV"`
	MeanVm float64 `desc:"mean Vm in mV"`
	StdVm  float64 `desc:"sample standard deviation of Vm in mV -- 0 for fewer than 2 ticks"`
	Spikes int     `desc:"number of upward crossings of SpikeThr by x"`
	Dur    float64 `desc:"real time spanned by the trace, in seconds"`
}

// Summary computes statistics of the recorded Vm trace
func (tl *TraceLog) Summary() Summary {
	sm := Summary{Ticks: tl.Rows()}
	if sm.Ticks == 0 {
		return sm
	}
	vm := tl.Column(ColVmMV)
	sm.MinVm = floats.Min(vm)
	sm.MaxVm = floats.Max(vm)
	if sm.Ticks < 2 {
		sm.MeanVm = vm[0] // sample std of one value is undefined
	} else {
		sm.MeanVm, sm.StdVm = stat.MeanStdDev(vm, nil)
	}
	sm.Spikes = CountSpikes(vm, tl.SpikeThr)
	tm := tl.Column(ColTime)
	sm.Dur = tm[len(tm)-1] - tm[0]
	return sm
}

// CountSpikes returns the number of upward crossings of thr in vals
func CountSpikes(vals []float64, thr float64) int {
	n := 0
	for i := 1; i < len(vals); i++ {
		if vals[i-1] < thr && vals[i] >= thr {
			n++
		}
	}
	return n
}
