package store

import (
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open returns the backend named kind. dir is used by the file backend and
// dbPath by SQLite. The returned close func is never nil.
func Open(kind, dir, dbPath string) (Store, func() error, error) {
	noop := func() error { return nil }
	switch kind {
	case BackendFile, "":
		fs, err := NewFileStore(dir)
		if err != nil {
			return nil, noop, err
		}
		return fs, noop, nil
	case BackendSQLite:
		db, err := OpenSQLite(dbPath)
		if err != nil {
			return nil, noop, err
		}
		return db, db.Close, nil
	case BackendMemory:
		return NewMemoryStore(), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown stats backend %q", kind)
	}
}
