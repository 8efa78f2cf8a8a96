package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/compdb/internal/compilation"
	"github.com/Norgate-AV/compdb/internal/config"
	"github.com/Norgate-AV/compdb/internal/index"
	"github.com/Norgate-AV/compdb/internal/shellword"
)

var indexCmd = &cobra.Command{
	Use:          "index",
	Short:        "Build the per-file lookup index",
	Long:         `Index every entry of the compilation database by source file for fast lookup. The index records a hash of the database so staleness can be detected.`,
	RunE:         runIndex,
	SilenceUsage: true,
}

var lookupCmd = &cobra.Command{
	Use:          "lookup <file>",
	Short:        "Look up the compile commands for a source file",
	Args:         cobra.ExactArgs(1),
	RunE:         runLookup,
	SilenceUsage: true,
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().Load(cmd)
	if err != nil {
		return err
	}

	entries, err := compilation.New(cfg.DatabasePath).Load()
	if err != nil {
		return err
	}

	hash, err := index.HashDatabase(cfg.DatabasePath)
	if err != nil {
		return err
	}

	ix, err := index.Open(cfg.IndexPath)
	if err != nil {
		return err
	}
	defer ix.Close()

	if err := ix.Build(entries, hash); err != nil {
		return err
	}

	if cfg.Verbose {
		count, err := ix.Stats()
		if err != nil {
			return err
		}

		fmt.Printf("Indexed %d entries (%d source files) into %s\n", entries.Len(), count, cfg.IndexPath)
	}

	return nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().Load(cmd)
	if err != nil {
		return err
	}

	ix, err := index.Open(cfg.IndexPath)
	if err != nil {
		return err
	}
	defer ix.Close()

	stale, err := ix.Stale(cfg.DatabasePath)
	if err == nil && stale {
		fmt.Fprintln(os.Stderr, "Warning: index is stale, run \"compdb index\" to rebuild")
	}

	entries, err := lookupFile(ix, args[0])
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return fmt.Errorf("no entry for %s", args[0])
	}

	for _, entry := range entries {
		fmt.Printf("%s\n  directory: %s\n  command: %s\n", entry.File, entry.Directory, shellword.Join(entry.Command))

		if entry.Output != "" {
			fmt.Printf("  output: %s\n", entry.Output)
		}
	}

	return nil
}

// lookupFile queries the index with the path as given, then with the
// absolute path, since databases key entries either way
func lookupFile(ix *index.Index, file string) ([]compilation.Entry, error) {
	entries, err := ix.Lookup(file)
	if err != nil || len(entries) > 0 {
		return entries, err
	}

	abs, err := filepath.Abs(file)
	if err != nil || abs == file {
		return nil, nil
	}

	return ix.Lookup(abs)
}
