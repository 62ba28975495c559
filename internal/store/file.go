package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps one stats_YYYYMMDD.json document per day in Dir.
type FileStore struct {
	Dir string
}

// NewFileStore creates dir if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FileStore{Dir: dir}, nil
}

// Path returns the file holding dateKey's record.
func (f *FileStore) Path(dateKey string) string {
	return filepath.Join(f.Dir, "stats_"+dateKey+".json")
}

// Load reads and decodes the record for dateKey.
func (f *FileStore) Load(ctx context.Context, dateKey string) (Record, error) {
	b, err := os.ReadFile(f.Path(dateKey))
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("read %s: %w", dateKey, err)
	}
	var r Record
	if err := json.Unmarshal(b, &r); err != nil {
		return Record{}, fmt.Errorf("decode %s: %w", dateKey, err)
	}
	return r, nil
}

// Save writes the record to a temp file in Dir and renames it over the old one,
// so readers never observe a partially written document.
func (f *FileStore) Save(ctx context.Context, dateKey string, r Record) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", dateKey, err)
	}
	tmp, err := os.CreateTemp(f.Dir, "stats_"+dateKey+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", dateKey, err)
	}
	name := tmp.Name()
	defer func() { _ = os.Remove(name) }()

	if _, err := tmp.Write(append(b, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", dateKey, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", dateKey, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dateKey, err)
	}
	if err := os.Rename(name, f.Path(dateKey)); err != nil {
		return fmt.Errorf("rename %s: %w", dateKey, err)
	}
	return nil
}
