package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/compdb/internal/compilation"
)

func TestHashDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compile_commands.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	hash1, err := HashDatabase(path)
	require.NoError(t, err)
	assert.NotEmpty(t, hash1)

	hash2, err := HashDatabase(path)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "hash should be consistent")

	require.NoError(t, os.WriteFile(path, []byte(`[{"directory":"/"}]`), 0o644))

	hash3, err := HashDatabase(path)
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash3, "different content should produce different hash")
}

func TestHashDatabase_MissingFile(t *testing.T) {
	_, err := HashDatabase(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestIndex_BuildAndLookup(t *testing.T) {
	indexPath := filepath.Join(t.TempDir(), DefaultIndexFile)

	ix, err := Open(indexPath)
	require.NoError(t, err)
	defer ix.Close()

	entries := compilation.NewEntries(
		compilation.Entry{
			Directory: "/build",
			File:      "/src/a.c",
			Command:   []string{"cc", "-c", "/src/a.c"},
			Output:    "/build/a.o",
		},
		compilation.Entry{
			Directory: "/build",
			File:      "/src/b.c",
			Command:   []string{"cc", "-c", "/src/b.c"},
		},
		// Same file compiled a second time with different flags
		compilation.Entry{
			Directory: "/build",
			File:      "/src/a.c",
			Command:   []string{"cc", "-O2", "-c", "/src/a.c"},
		},
	)

	err = ix.Build(entries, "somehash")
	require.NoError(t, err)

	found, err := ix.Lookup("/src/a.c")
	require.NoError(t, err)
	assert.Len(t, found, 2, "both compilations of a.c are indexed")

	for _, entry := range found {
		assert.Equal(t, "/src/a.c", entry.File)
		assert.Equal(t, "/build", entry.Directory)
	}

	found, err = ix.Lookup("/src/b.c")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, []string{"cc", "-c", "/src/b.c"}, found[0].Command)
	assert.Empty(t, found[0].Output)

	// Index miss
	found, err = ix.Lookup("/src/missing.c")
	require.NoError(t, err)
	assert.Nil(t, found)

	count, err := ix.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, count, "two distinct source files indexed")
}

func TestIndex_BuildReplacesContents(t *testing.T) {
	indexPath := filepath.Join(t.TempDir(), DefaultIndexFile)

	ix, err := Open(indexPath)
	require.NoError(t, err)
	defer ix.Close()

	first := compilation.NewEntries(compilation.Entry{
		Directory: "/build",
		File:      "/src/old.c",
		Command:   []string{"cc", "-c", "/src/old.c"},
	})
	require.NoError(t, ix.Build(first, "hash1"))

	second := compilation.NewEntries(compilation.Entry{
		Directory: "/build",
		File:      "/src/new.c",
		Command:   []string{"cc", "-c", "/src/new.c"},
	})
	require.NoError(t, ix.Build(second, "hash2"))

	found, err := ix.Lookup("/src/old.c")
	require.NoError(t, err)
	assert.Nil(t, found, "rebuild discards previous contents")

	found, err = ix.Lookup("/src/new.c")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestIndex_Stale(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "compile_commands.json")
	require.NoError(t, os.WriteFile(dbPath, []byte("[]"), 0o644))

	ix, err := Open(filepath.Join(tempDir, DefaultIndexFile))
	require.NoError(t, err)
	defer ix.Close()

	hash, err := HashDatabase(dbPath)
	require.NoError(t, err)
	require.NoError(t, ix.Build(compilation.NewEntries(), hash))

	stale, err := ix.Stale(dbPath)
	require.NoError(t, err)
	assert.False(t, stale)

	// Rewriting the database makes the index stale
	require.NoError(t, os.WriteFile(dbPath, []byte(`[{"directory":"/build","file":"/src/a.c","arguments":["cc"]}]`), 0o644))

	stale, err = ix.Stale(dbPath)
	require.NoError(t, err)
	assert.True(t, stale)
}

func TestOpen_ReopensExistingIndex(t *testing.T) {
	indexPath := filepath.Join(t.TempDir(), DefaultIndexFile)

	ix, err := Open(indexPath)
	require.NoError(t, err)

	entries := compilation.NewEntries(compilation.Entry{
		Directory: "/build",
		File:      "/src/a.c",
		Command:   []string{"cc", "-c", "/src/a.c"},
	})
	require.NoError(t, ix.Build(entries, "hash"))
	require.NoError(t, ix.Close())

	reopened, err := Open(indexPath)
	require.NoError(t, err)
	defer reopened.Close()

	found, err := reopened.Lookup("/src/a.c")
	require.NoError(t, err)
	assert.Len(t, found, 1, "contents survive reopening")
}
