// Package storage implements the durable key/value slots of the bank client.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"
)

const filePrefix = "bank-"

// Dir stores each key in its own file inside a directory.
//
// The zero value stores in os.TempDir(), like a browser profile that lives
// as long as the machine session.
type Dir string

func (d Dir) path(key string) string {
	dir := string(d)
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, filePrefix+key+".json")
}

// Get returns the content of key, or an error wrapping fs.ErrNotExist.
func (d Dir) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(d.path(key))
	if err != nil {
		return nil, fmt.Errorf("cannot read slot %q: %w", key, err)
	}
	return data, nil
}

// Set replaces the content of key. The file is only readable by its owner.
func (d Dir) Set(key string, value []byte) error {
	if dir := string(d); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("cannot create storage folder: %w", err)
		}
	}
	if err := os.WriteFile(d.path(key), value, 0600); err != nil {
		return fmt.Errorf("cannot write slot %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (d Dir) Remove(key string) error {
	err := os.Remove(d.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot remove slot %q: %w", key, err)
	}
	return nil
}

// Memory is an in-process storage, safe for concurrent use.
type Memory struct {
	mu    sync.Mutex
	items map[string][]byte
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory { return &Memory{items: make(map[string][]byte)} }

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	if !ok {
		return nil, fmt.Errorf("cannot read slot %q: %w", key, fs.ErrNotExist)
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.items == nil {
		m.items = make(map[string][]byte)
	}
	m.items[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Items returns a copy of the stored items.
func (m *Memory) Items() map[string][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.items)
}
