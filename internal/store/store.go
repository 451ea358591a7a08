// Package store persists the bankroll between sessions as a small JSON
// record, the shape the save file has always had: {"money": <integer>}.
package store

import (
	"encoding/json"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/fileutil"
)

// DefaultBankroll is used when no usable save record exists.
const DefaultBankroll = 1000

// BankrollStore loads and saves the bankroll at session boundaries.
type BankrollStore interface {
	Load() int
	Save(money int) error
}

type saveRecord struct {
	Money int `json:"money"`
}

// FileStore persists the bankroll to a JSON file with atomic writes.
type FileStore struct {
	path     string
	fallback int
	logger   *log.Logger
}

// NewFileStore creates a store at path. fallback is returned by Load when the
// record is missing or unusable; pass DefaultBankroll unless configured
// otherwise.
func NewFileStore(path string, fallback int, logger *log.Logger) *FileStore {
	return &FileStore{path: path, fallback: fallback, logger: logger}
}

// Load reads the persisted bankroll. Missing, corrupt, or non-positive
// records are recovered by falling back to the default; these are logged, not
// propagated, so a damaged save file never blocks play.
func (f *FileStore) Load() int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warn("could not read save file, starting fresh", "path", f.path, "error", err)
		}
		return f.fallback
	}

	var rec saveRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		f.logger.Warn("corrupt save file, starting fresh", "path", f.path, "error", err)
		return f.fallback
	}
	if rec.Money <= 0 {
		return f.fallback
	}
	return rec.Money
}

// Save writes the bankroll atomically.
func (f *FileStore) Save(money int) error {
	data, err := json.Marshal(saveRecord{Money: money})
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(f.path, data, 0o644)
}

// MemoryStore is an in-memory BankrollStore for tests and simulations.
type MemoryStore struct {
	Money int
	Saves int
}

// NewMemoryStore creates a memory store with an initial bankroll.
func NewMemoryStore(money int) *MemoryStore {
	return &MemoryStore{Money: money}
}

// Load returns the stored bankroll.
func (m *MemoryStore) Load() int { return m.Money }

// Save records the bankroll and counts the write.
func (m *MemoryStore) Save(money int) error {
	m.Money = money
	m.Saves++
	return nil
}
