package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/myrjola/sustainscore/cmd/cli/score"
	"github.com/myrjola/sustainscore/cmd/cli/tables"
	"github.com/myrjola/sustainscore/internal/errors"
	"github.com/spf13/cobra"
)

func newRootCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sustainscore-cli",
		Long:          `Command line utilities for scoring the sustainability of marketing campaigns`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("tables", "", "YAML file with reference table overrides")
	rootCmd.AddGroup(score.Group, tables.Group)
	rootCmd.AddCommand(score.NewScoreCommand(lookupEnv), score.NewExampleCommand(), tables.NewCommand(lookupEnv))
	return rootCmd
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(os.LookupEnv).Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
