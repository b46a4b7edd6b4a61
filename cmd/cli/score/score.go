package score

import (
	"encoding/json"

	"github.com/myrjola/sustainscore/internal/campaign"
	"github.com/myrjola/sustainscore/internal/config"
	"github.com/myrjola/sustainscore/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var Group = &cobra.Group{
	ID:    "score",
	Title: "Scoring",
}

// NewScoreCommand creates the command that scores a campaign file.
func NewScoreCommand(lookupEnv func(string) (string, bool)) *cobra.Command {
	return &cobra.Command{
		Use:     "score [file]",
		GroupID: Group.ID,
		Short:   "Score a campaign",
		Long:    `Scores the campaign in a YAML or JSON file and prints the report as JSON`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tablesFile, err := cmd.Flags().GetString("tables")
			if err != nil {
				return errors.Wrap(err, "tables flag")
			}
			engine, err := config.LoadEngine(lookupEnv, tablesFile)
			if err != nil {
				return err
			}

			doc, err := campaign.DecodeFile(args[0])
			if err != nil {
				return err
			}
			c, err := doc.Snapshot()
			if err != nil {
				return errors.Wrap(err, "validate campaign")
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err = encoder.Encode(campaign.NewReportDocument(c, engine.Score(c))); err != nil {
				return errors.Wrap(err, "encode report")
			}
			return nil
		},
	}
}

// NewExampleCommand creates the command that prints an example campaign file.
func NewExampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "example",
		GroupID: Group.ID,
		Short:   "Print an example campaign",
		Long:    `Prints a campaign in YAML that can be edited and passed to the score command`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2) //nolint:mnd // two spaces
			if err := encoder.Encode(campaign.Example()); err != nil {
				return errors.Wrap(err, "encode example")
			}
			return errors.Wrap(encoder.Close(), "close encoder")
		},
	}
}
