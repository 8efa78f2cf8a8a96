package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/compdb/internal/compilation"
)

func writeDatabase(t *testing.T, dir string, entries *compilation.Entries) string {
	t.Helper()

	path := filepath.Join(dir, "compile_commands.json")
	err := compilation.New(path).Save(entries, compilation.NewFormat())
	require.NoError(t, err)

	return path
}

func TestRunConvert_ToStringForm(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := writeDatabase(t, t.TempDir(), compilation.NewEntries(
		compilation.Entry{
			Directory: "/build",
			File:      "/build/a.c",
			Command:   []string{"cc", "-c", "a.c"},
		},
	))

	viper.Set("database", path)
	viper.Set("command_style", "string")

	err := runConvert(convertCmd, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"command": "cc -c a.c"`)
	assert.NotContains(t, string(data), `"arguments"`)
}

func TestRunMerge_Deduplicates(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	shared := compilation.Entry{
		Directory: "/build",
		File:      "/build/a.c",
		Command:   []string{"cc", "-c", "a.c"},
	}

	dirOne := t.TempDir()
	one := writeDatabase(t, dirOne, compilation.NewEntries(
		shared,
		compilation.Entry{Directory: "/build", File: "/build/b.c", Command: []string{"cc", "-c", "b.c"}},
	))

	dirTwo := t.TempDir()
	two := writeDatabase(t, dirTwo, compilation.NewEntries(
		shared,
		compilation.Entry{Directory: "/build", File: "/build/c.c", Command: []string{"cc", "-c", "c.c"}},
	))

	output := filepath.Join(t.TempDir(), "compile_commands.json")
	viper.Set("database", output)

	err := runMerge(mergeCmd, []string{one, two})
	require.NoError(t, err)

	merged, err := compilation.New(output).Load()
	require.NoError(t, err)
	assert.Equal(t, 3, merged.Len(), "the shared entry collapses to one")
}

func TestRunCheck_MalformedDatabase(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), "compile_commands.json")
	content := `[{"directory": "/build", "file": "/build/a.c", "command": "cc -c 'a.c"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	viper.Set("database", path)

	err := runCheck(checkCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/build/a.c")
}

func TestRunIndexAndLookup(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := writeDatabase(t, t.TempDir(), compilation.NewEntries(
		compilation.Entry{
			Directory: "/build",
			File:      "/src/a.c",
			Command:   []string{"cc", "-c", "/src/a.c"},
			Output:    "/build/a.o",
		},
	))

	viper.Set("database", path)

	err := runIndex(indexCmd, nil)
	require.NoError(t, err)

	err = runLookup(lookupCmd, []string{"/src/a.c"})
	require.NoError(t, err)

	err = runLookup(lookupCmd, []string{"/src/missing.c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entry for")
}
