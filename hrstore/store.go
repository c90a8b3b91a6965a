// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hrstore persists summaries of completed Hindmarsh-Rose runs.
Records are JSON encoded, versioned, and kept either in memory or in a sqlite
database (the latter only when built with -tags sqlite).
*/
package hrstore

import (
	"context"
	"sort"

	"github.com/emer/rthybrid/hr"
	"github.com/emer/rthybrid/hrlog"
)

// Store persists run records keyed by ID
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, rec RunRecord) error
	GetRun(ctx context.Context, id string) (RunRecord, bool, error)
	ListRuns(ctx context.Context) ([]string, error)
	DeleteRun(ctx context.Context, id string) error
}

// VersionedRecord carries the schema and codec version a record was written with
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// RunRecord is the stored result of one run of the tick loop
type RunRecord struct {
	VersionedRecord
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	PeriodSecs float64       `json:"period_seconds"`
	Ticks      int           `json:"ticks"`
	Stepper    string        `json:"stepper"`
	Params     hr.Params     `json:"params"`
	BurstDur   float64       `json:"burst_duration"`
	Dt         float64       `json:"dt"`
	Init       hr.State      `json:"init"`
	Final      hr.State      `json:"final"`
	Summary    hrlog.Summary `json:"summary"`
	Overruns   int           `json:"overruns"`
}

// NewRunRecord returns a record of the current neuron state, at current versions
func NewRunRecord(id, name string, ticks int, nrn *hr.Neuron, sm hrlog.Summary) RunRecord {
	return RunRecord{
		VersionedRecord: VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		ID:              id,
		Name:            name,
		PeriodSecs:      nrn.PeriodSecs,
		Ticks:           ticks,
		Stepper:         nrn.Stepper.String(),
		Params:          nrn.Params,
		BurstDur:        nrn.BurstDur,
		Dt:              nrn.Dt,
		Init:            nrn.Init,
		Final:           nrn.Vars,
		Summary:         sm,
	}
}

func sortedKeys[T any](m map[string]T) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
