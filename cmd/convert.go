package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/compdb/internal/compilation"
	"github.com/Norgate-AV/compdb/internal/config"
)

var convertCmd = &cobra.Command{
	Use:          "convert",
	Short:        "Rewrite a compilation database in the configured command style",
	Long:         `Load a compilation database and write it back with every record in the configured command style, either an "arguments" array or a single shell-quoted "command" string.`,
	RunE:         runConvert,
	SilenceUsage: true,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().Load(cmd)
	if err != nil {
		return err
	}

	db := compilation.New(cfg.DatabasePath)

	entries, err := db.Load()
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Printf("Database: %s\nEntries: %d\nStyle: %s\n", cfg.DatabasePath, entries.Len(), cfg.CommandStyle)
	}

	return db.Save(entries, cfg.Format())
}
