// Package compilation implements the JSON compilation database: the record
// model, the two interchangeable on-disk shapes, and load/save over a
// single file.
//
// A compilation database records, for every compiled source file, the exact
// build command and working directory used, so analysis tools can
// reconstruct compiler behaviour without re-running the build. Two record
// shapes are in circulation: an explicit argument list ("arguments") and a
// single shell-quoted string ("command"). Both are accepted on load, mixed
// freely within one file; a Format decides which one Save writes.
package compilation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Database is a stateless handle over one compilation database file.
// Instances are cheap; no state outlives a single Load or Save call.
type Database struct {
	path string
}

// New returns a database bound to the given file path
func New(path string) *Database {
	return &Database{path: path}
}

// Path returns the file the database reads and writes
func (d *Database) Path() string {
	return d.path
}

// Load reads the database file and rebuilds the entry set.
//
// Records that fail conversion are reported together: the returned error
// lists every failing record, and no entries are returned even when some
// records were valid.
func (d *Database) Load() (*Entries, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read compilation database: %w", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse compilation database: %w", err)
	}

	entries := NewEntries()

	var failures []string
	for _, record := range records {
		wire, err := decodeWireEntry(record)
		if err != nil {
			return nil, fmt.Errorf("failed to parse compilation database: %w", err)
		}

		entry, err := wire.toEntry()
		if err != nil {
			failures = append(failures, err.Error())
			continue
		}

		entries.Add(entry)
	}

	if len(failures) > 0 {
		return nil, errors.New(strings.Join(failures, ", "))
	}

	return entries, nil
}

// Save writes the entry set to the database file in the shape the format
// selects, as a pretty-printed JSON array. Nothing is written unless every
// entry converts, so a conversion failure leaves the file untouched.
func (d *Database) Save(entries *Entries, format *Format) error {
	values := entries.Values()

	records := make([]wireEntry, 0, len(values))
	for _, entry := range values {
		record, err := fromEntry(entry, format)
		if err != nil {
			return err
		}

		records = append(records, record)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode compilation database: %w", err)
	}

	if err := os.WriteFile(d.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write compilation database: %w", err)
	}

	return nil
}
