package index

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// HashDatabase creates a hash of the database file's content, used to
// detect a rewritten database after the index was built
func HashDatabase(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open database file: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash database file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
