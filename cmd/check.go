package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/compdb/internal/compilation"
	"github.com/Norgate-AV/compdb/internal/config"
)

var checkCmd = &cobra.Command{
	Use:          "check",
	Short:        "Validate a compilation database",
	Long:         `Load the compilation database and report how many entries it holds. Exits non-zero with every malformed record listed when the file does not parse.`,
	RunE:         runCheck,
	SilenceUsage: true,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().Load(cmd)
	if err != nil {
		return err
	}

	entries, err := compilation.New(cfg.DatabasePath).Load()
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d entries\n", cfg.DatabasePath, entries.Len())

	return nil
}
