// Package index provides fast per-source-file lookup over a compilation
// database.
//
// Tools that query repeatedly (editors, analyzers) should not reparse
// compile_commands.json for every question. The index stores each entry
// keyed by its source file in BoltDB, alongside a SHA256 hash of the
// database file taken at build time, so a rewritten database can be
// detected as making the index stale.
package index

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Norgate-AV/compdb/internal/compilation"
)

const (
	// DefaultIndexFile is the index file name used next to the database
	DefaultIndexFile = ".compdb-index"

	// entriesBucket maps source file path to its records
	entriesBucket = "entries"

	// metaBucket holds index bookkeeping
	metaBucket = "meta"

	// sourceHashKey stores the database file hash recorded at build time
	sourceHashKey = "source_hash"
)

// Index is a BoltDB-backed lookup table from source file to its entries
type Index struct {
	db *bbolt.DB
}

// record is the stored shape of one entry, keyed externally by source file
type record struct {
	Directory string   `json:"directory"`
	Arguments []string `json:"arguments"`
	Output    string   `json:"output,omitempty"`
}

// Open opens or creates an index file
func Open(path string) (*Index, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range []string{entriesBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index buckets: %w", err)
	}

	return &Index{db: db}, nil
}

// Close closes the index database
func (ix *Index) Close() error {
	if ix.db != nil {
		return ix.db.Close()
	}

	return nil
}

// Build replaces the index contents with the given entries and records the
// database file hash they were read from
func (ix *Index) Build(entries *compilation.Entries, sourceHash string) error {
	grouped := make(map[string][]record)
	for _, entry := range entries.Values() {
		grouped[entry.File] = append(grouped[entry.File], record{
			Directory: entry.Directory,
			Arguments: entry.Command,
			Output:    entry.Output,
		})
	}

	err := ix.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(entriesBucket)); err != nil {
			return err
		}

		b, err := tx.CreateBucket([]byte(entriesBucket))
		if err != nil {
			return err
		}

		for file, records := range grouped {
			data, err := json.Marshal(records)
			if err != nil {
				return err
			}

			if err := b.Put([]byte(file), data); err != nil {
				return err
			}
		}

		meta := tx.Bucket([]byte(metaBucket))
		return meta.Put([]byte(sourceHashKey), []byte(sourceHash))
	})
	if err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}

	return nil
}

// Lookup returns every entry compiling the given source file.
// Returns nil on a miss.
func (ix *Index) Lookup(file string) ([]compilation.Entry, error) {
	var entries []compilation.Entry

	err := ix.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(entriesBucket))

		data := b.Get([]byte(file))
		if data == nil {
			return nil // Index miss
		}

		var records []record
		if err := json.Unmarshal(data, &records); err != nil {
			return err
		}

		for _, r := range records {
			entries = append(entries, compilation.Entry{
				Directory: r.Directory,
				File:      file,
				Command:   r.Arguments,
				Output:    r.Output,
			})
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", file, err)
	}

	return entries, nil
}

// Stale reports whether the database file changed since the index was built
func (ix *Index) Stale(databasePath string) (bool, error) {
	current, err := HashDatabase(databasePath)
	if err != nil {
		return false, fmt.Errorf("failed to hash database: %w", err)
	}

	var recorded string
	err = ix.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(metaBucket)).Get([]byte(sourceHashKey))
		recorded = string(data)

		return nil
	})
	if err != nil {
		return false, err
	}

	return recorded != current, nil
}

// Stats returns the number of indexed source files
func (ix *Index) Stats() (int, error) {
	var count int

	err := ix.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(entriesBucket))

		count = b.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}
