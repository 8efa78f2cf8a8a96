// Package shellword converts between an argument vector and a single
// POSIX-shell-quoted command string. Join and Split are inverses for any
// argument vector free of embedded NUL bytes.
package shellword

import (
	"fmt"

	"al.essio.dev/pkg/shellescape"
	shellwords "github.com/caarlos0/go-shellwords"
)

// Join renders an argument vector as one shell-quoted string. Tokens
// containing whitespace or shell metacharacters are quoted so that Split
// recovers them verbatim.
func Join(argv []string) string {
	return shellescape.QuoteCommand(argv)
}

// Split parses a shell-quoted command string back into an argument vector.
// The string is treated as data: environment variables and backticks are
// never expanded. Returns an error for malformed input such as an
// unbalanced quote.
func Split(command string) ([]string, error) {
	parser := shellwords.NewParser()

	argv, err := parser.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("malformed command %q: %w", command, err)
	}

	return argv, nil
}
