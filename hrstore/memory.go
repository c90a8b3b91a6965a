// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hrstore

import (
	"context"
	"errors"
	"sync"
)

var errNotInitialized = errors.New("store is not initialized")

// MemoryStore keeps encoded run records in a map
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string][]byte
}

// NewMemoryStore returns an uninitialized MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init clears the store and makes it ready for use
func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string][]byte)
	return nil
}

// SaveRun stores an encoded copy, so later changes to rec are not seen
func (s *MemoryStore) SaveRun(_ context.Context, rec RunRecord) error {
	payload, err := EncodeRun(rec)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	s.runs[rec.ID] = payload
	return nil
}

// GetRun returns the run with given id, and false if there is none
func (s *MemoryStore) GetRun(_ context.Context, id string) (RunRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return RunRecord{}, false, errNotInitialized
	}
	payload, ok := s.runs[id]
	if !ok {
		return RunRecord{}, false, nil
	}
	rec, err := DecodeRun(payload)
	if err != nil {
		return RunRecord{}, false, err
	}
	return rec, true, nil
}

// ListRuns returns the ids of all stored runs, sorted
func (s *MemoryStore) ListRuns(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, errNotInitialized
	}
	return sortedKeys(s.runs), nil
}

// DeleteRun removes the run with given id, if present
func (s *MemoryStore) DeleteRun(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.runs, id)
	return nil
}
