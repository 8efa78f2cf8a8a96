package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/compdb/internal/compilation"
	"github.com/Norgate-AV/compdb/internal/config"
)

var mergeCmd = &cobra.Command{
	Use:          "merge <database>...",
	Short:        "Merge compilation databases into one",
	Long:         `Union the entries of several compilation databases into the configured output database. Records describing the same compilation collapse to one.`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runMerge,
	SilenceUsage: true,
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().Load(cmd)
	if err != nil {
		return err
	}

	merged := compilation.NewEntries()

	for _, path := range args {
		entries, err := compilation.New(path).Load()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		for _, entry := range entries.Values() {
			merged.Add(entry)
		}

		if cfg.Verbose {
			fmt.Printf("%s: %d entries\n", path, entries.Len())
		}
	}

	db := compilation.New(cfg.DatabasePath)
	if err := db.Save(merged, cfg.Format()); err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Printf("Merged %d entries into %s\n", merged.Len(), cfg.DatabasePath)
	}

	return nil
}
