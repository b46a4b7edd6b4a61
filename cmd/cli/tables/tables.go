package tables

import (
	"encoding/json"

	"github.com/myrjola/sustainscore/internal/campaign"
	"github.com/myrjola/sustainscore/internal/config"
	"github.com/myrjola/sustainscore/internal/errors"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "tables",
	Title: "Reference tables",
}

// NewCommand creates the command that prints the effective reference tables.
func NewCommand(lookupEnv func(string) (string, bool)) *cobra.Command {
	return &cobra.Command{
		Use:     "tables",
		GroupID: Group.ID,
		Short:   "Print reference tables",
		Long:    `Prints the emission factors, material catalog and scoring policy after applying overrides`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tablesFile, err := cmd.Flags().GetString("tables")
			if err != nil {
				return errors.Wrap(err, "tables flag")
			}
			engine, err := config.LoadEngine(lookupEnv, tablesFile)
			if err != nil {
				return err
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err = encoder.Encode(campaign.NewReferenceDocument(engine)); err != nil {
				return errors.Wrap(err, "encode reference tables")
			}
			return nil
		},
	}
}
