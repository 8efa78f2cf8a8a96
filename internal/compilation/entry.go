package compilation

import (
	"sort"
	"strings"
)

// Entry represents one record of the compilation database
type Entry struct {
	// Directory is the absolute working directory of the build command
	Directory string

	// File is the path of the compiled source file
	File string

	// Command is the argument vector, program name first
	Command []string

	// Output is the path of the produced artifact. Empty when not recorded
	Output string
}

// Key returns the identity of the entry. Output is excluded: two records
// that compile the same file with the same command in the same directory
// describe the same compilation.
func (e Entry) Key() string {
	parts := make([]string, 0, len(e.Command)+2)
	parts = append(parts, e.Directory, e.File)
	parts = append(parts, e.Command...)

	return strings.Join(parts, "\x00")
}

// Equal reports whether two entries share the same identity
func (e Entry) Equal(other Entry) bool {
	return e.Key() == other.Key()
}

// Entries is a set of compilation database entries, unique by identity
type Entries struct {
	members map[string]Entry
}

// NewEntries creates a set containing the given entries
func NewEntries(entries ...Entry) *Entries {
	s := &Entries{members: make(map[string]Entry)}

	for _, entry := range entries {
		s.Add(entry)
	}

	return s
}

// Add inserts an entry, replacing any existing member with the same
// identity. Last write wins, so the most recently added Output survives.
func (s *Entries) Add(entry Entry) {
	s.members[entry.Key()] = entry
}

// Contains reports whether an entry with the same identity is a member
func (s *Entries) Contains(entry Entry) bool {
	_, ok := s.members[entry.Key()]
	return ok
}

// Len returns the number of members
func (s *Entries) Len() int {
	return len(s.members)
}

// Values returns the members sorted by identity, so iteration order and
// saved files are deterministic
func (s *Entries) Values() []Entry {
	values := make([]Entry, 0, len(s.members))
	for _, entry := range s.members {
		values = append(values, entry)
	}

	sort.Slice(values, func(i, j int) bool {
		return values[i].Key() < values[j].Key()
	})

	return values
}
