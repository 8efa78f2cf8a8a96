package compilation

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/Norgate-AV/compdb/internal/shellword"
)

// wireEntry is one on-disk record of the compilation database. Exactly two
// shapes exist, distinguished structurally rather than by a discriminant
// field, for compatibility with external tools emitting either.
type wireEntry interface {
	// toEntry reconstructs the domain entry from the wire record
	toEntry() (Entry, error)
}

// arrayEntry carries the command as an explicit argument list
type arrayEntry struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Arguments []string `json:"arguments"`
	Output    *string  `json:"output,omitempty"`
}

// stringEntry carries the command as one shell-quoted string
type stringEntry struct {
	Directory string  `json:"directory"`
	File      string  `json:"file"`
	Command   string  `json:"command"`
	Output    *string `json:"output,omitempty"`
}

func (a arrayEntry) toEntry() (Entry, error) {
	return Entry{
		Directory: a.Directory,
		File:      a.File,
		Command:   a.Arguments,
		Output:    textOrEmpty(a.Output),
	}, nil
}

func (s stringEntry) toEntry() (Entry, error) {
	command, err := shellword.Split(s.Command)
	if err != nil {
		return Entry{}, fmt.Errorf("entry for %q: %w", s.File, err)
	}

	return Entry{
		Directory: s.Directory,
		File:      s.File,
		Command:   command,
		Output:    textOrEmpty(s.Output),
	}, nil
}

// fromEntry converts a domain entry to the wire shape the format selects
func fromEntry(entry Entry, format *Format) (wireEntry, error) {
	directory, err := pathToText(entry.Directory)
	if err != nil {
		return nil, err
	}

	file, err := pathToText(entry.File)
	if err != nil {
		return nil, err
	}

	var output *string
	if entry.Output != "" {
		text, err := pathToText(entry.Output)
		if err != nil {
			return nil, err
		}

		output = &text
	}

	if format.IsCommandAsArray() {
		return arrayEntry{
			Directory: directory,
			File:      file,
			Arguments: entry.Command,
			Output:    output,
		}, nil
	}

	return stringEntry{
		Directory: directory,
		File:      file,
		Command:   shellword.Join(entry.Command),
		Output:    output,
	}, nil
}

// decodeWireEntry picks the record shape structurally: an "arguments" key
// means the array form, a "command" key the string form. The array form
// wins when a record carries both, since it needs no shell parsing.
func decodeWireEntry(data []byte) (wireEntry, error) {
	var probe struct {
		Arguments json.RawMessage `json:"arguments"`
		Command   json.RawMessage `json:"command"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch {
	case probe.Arguments != nil:
		var record arrayEntry
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, err
		}

		return record, nil

	case probe.Command != nil:
		var record stringEntry
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, err
		}

		return record, nil

	default:
		return nil, ErrUnknownShape
	}
}

// pathToText checks that a path survives the trip through a JSON string
func pathToText(path string) (string, error) {
	if !utf8.ValidString(path) {
		return "", &PathEncodingError{Path: path}
	}

	return path, nil
}

func textOrEmpty(text *string) string {
	if text == nil {
		return ""
	}

	return *text
}
