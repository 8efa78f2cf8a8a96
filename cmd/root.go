package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Norgate-AV/compdb/internal/config"
	"github.com/Norgate-AV/compdb/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "compdb",
	Short:        "JSON compilation database toolkit",
	Long:         `Read, write, convert, merge and index JSON compilation databases (compile_commands.json)`,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s) %s", version.Version, version.Commit, version.BuildTime)
	rootCmd.PersistentFlags().StringP("database", "d", "", "Path to the compilation database (default compile_commands.json)")
	rootCmd.PersistentFlags().StringP("style", "s", "", `Command style written on save: "array" or "string"`)
	rootCmd.PersistentFlags().String("index", "", "Path to the lookup index file (default next to the database)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(lookupCmd)

	viper.SetDefault("database", config.DefaultDatabasePath)
	viper.SetDefault("command_style", config.DefaultCommandStyle)
	viper.SetDefault("verbose", config.DefaultVerbose)
}
