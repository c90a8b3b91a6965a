// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hrstore

import "fmt"

// NewStore returns an uninitialized store of given kind: "memory" (default) or "sqlite"
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}

// CloseIfSupported closes the store if it holds resources
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
