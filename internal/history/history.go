// Package history keeps a journal of apply runs under the config
// directory, newest first.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/codewright/retouch-cli/internal/utils"
	"github.com/google/uuid"
)

const fileName = "history.json"

// Entry records one apply run.
type Entry struct {
	ID           string    `json:"id"`
	Time         time.Time `json:"time"`
	File         string    `json:"file"`
	Ruleset      string    `json:"ruleset"`
	Replacements int       `json:"replacements"`
	Changed      bool      `json:"changed"`
}

// NewEntry builds a journal entry for a completed run.
func NewEntry(file, ruleset string, replacements int, changed bool) Entry {
	return Entry{
		ID:           uuid.NewString(),
		Time:         time.Now(),
		File:         file,
		Ruleset:      ruleset,
		Replacements: replacements,
		Changed:      changed,
	}
}

// Load reads the journal from dir. A missing journal is an empty one.
func Load(dir string) ([]Entry, error) {
	b, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}
	return entries, nil
}

// Append prepends e to the journal in dir, trimming it to limit entries
// when limit is positive, and writes it back atomically.
func Append(dir string, e Entry, limit int) error {
	entries, err := Load(dir)
	if err != nil {
		return err
	}
	entries = append([]Entry{e}, entries...)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return save(dir, entries)
}

// Clear truncates the journal in dir.
func Clear(dir string) error {
	return save(dir, []Entry{})
}

func save(dir string, entries []Entry) error {
	if err := utils.EnsureDir(dir); err != nil {
		return fmt.Errorf("ensure history dir: %w", err)
	}
	data, err := utils.PrettyJSON(entries)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(dir, fileName), data)
}
