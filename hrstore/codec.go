// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hrstore

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Versions written by EncodeRun and required by DecodeRun
const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

// ErrVersionMismatch is returned when decoding a record written at another version
var ErrVersionMismatch = errors.New("run record version mismatch")

// EncodeRun returns the JSON encoding of rec
func EncodeRun(rec RunRecord) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode run %s: %w", rec.ID, err)
	}
	return data, nil
}

// DecodeRun decodes a record from EncodeRun, checking its versions
func DecodeRun(data []byte) (RunRecord, error) {
	var rec RunRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return RunRecord{}, err
	}
	if err := checkVersion(rec.VersionedRecord); err != nil {
		return RunRecord{}, err
	}
	return rec, nil
}

func checkVersion(v VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
