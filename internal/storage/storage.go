package storage

import "github.com/artisanhome/cartengine/internal/domain"

// Driver persists the cart as a single document, the way the browser kept it
// under one local-storage key.
type Driver interface {
	Load() ([]domain.LineItem, error)
	Save(items []domain.LineItem) error
}

// SchemaVersion tags the persisted envelope. Version 0 (a bare top-level
// array) is the legacy layout and is still accepted on load.
const SchemaVersion = 1

type envelope struct {
	Version int               `json:"version"`
	Items   []domain.LineItem `json:"items"`
}
