package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/artisanhome/cartengine/internal/domain"
)

// File stores the cart as one JSON document on disk. Writes go through a
// temp file and rename so a crash mid-write never leaves a half document.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string { return f.path }

// Load reads the persisted cart. A missing file is an empty cart, not an
// error. Unreadable or unrecognized content returns a *domain.StorageError;
// callers fall back to an empty cart.
func (f *File) Load() ([]domain.LineItem, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &domain.StorageError{Op: "load", Err: err}
	}
	return decode(raw)
}

func (f *File) Save(items []domain.LineItem) error {
	raw, err := json.Marshal(envelope{Version: SchemaVersion, Items: items})
	if err != nil {
		return &domain.StorageError{Op: "save", Err: err}
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".cart-*.tmp")
	if err != nil {
		return &domain.StorageError{Op: "save", Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &domain.StorageError{Op: "save", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &domain.StorageError{Op: "save", Err: err}
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return &domain.StorageError{Op: "save", Err: err}
	}
	return nil
}

func decode(raw []byte) ([]domain.LineItem, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	// Legacy layout: the source persisted a bare array under the key.
	if trimmed[0] == '[' {
		var items []domain.LineItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, &domain.StorageError{Op: "load", Err: err}
		}
		return items, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, &domain.StorageError{Op: "load", Err: err}
	}
	if env.Version != SchemaVersion {
		return nil, &domain.StorageError{Op: "load", Err: fmt.Errorf("unknown schema version %d", env.Version)}
	}
	return env.Items, nil
}
