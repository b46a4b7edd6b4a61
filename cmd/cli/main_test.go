package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/myrjola/sustainscore/internal/campaign"
	"github.com/myrjola/sustainscore/internal/scoring"
	"github.com/stretchr/testify/require"
)

const launchFile = "../../internal/campaign/testdata/launch.yaml"

func emptyEnv(string) (string, bool) {
	return "", false
}

func execute(t *testing.T, lookupEnv func(string) (string, bool), args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(lookupEnv)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCommand(t *testing.T) {
	t.Parallel()
	out, err := execute(t, emptyEnv, "score", launchFile)
	require.NoError(t, err)

	var report campaign.ReportDocument
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, 44, report.Total)
	require.InDelta(t, 3262.5, report.Carbon.TotalKg, 1e-9)
}

func TestScoreCommand_halfEvenFromEnv(t *testing.T) {
	t.Parallel()
	env := func(key string) (string, bool) {
		if key == "SUSTAINSCORE_ROUNDING" {
			return "half-even", true
		}
		return "", false
	}
	out, err := execute(t, env, "score", launchFile)
	require.NoError(t, err)

	var report campaign.ReportDocument
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, 43, report.Total)
}

func TestScoreCommand_errors(t *testing.T) {
	t.Parallel()
	_, err := execute(t, emptyEnv, "score", "../../internal/campaign/testdata/invalid.yaml")
	require.ErrorIs(t, err, campaign.ErrInvalidCampaign)

	_, err = execute(t, emptyEnv, "score")
	require.Error(t, err)

	_, err = execute(t, emptyEnv, "score", "--tables", "missing.yaml", launchFile)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExampleCommand(t *testing.T) {
	t.Parallel()
	out, err := execute(t, emptyEnv, "example")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))
	doc, err := campaign.DecodeFile(path)
	require.NoError(t, err)
	require.Equal(t, campaign.Example(), doc)
}

func TestTablesCommand(t *testing.T) {
	t.Parallel()
	out, err := execute(t, emptyEnv, "tables")
	require.NoError(t, err)
	var reference campaign.ReferenceDocument
	require.NoError(t, json.Unmarshal([]byte(out), &reference))
	require.Contains(t, reference.EmissionFactors, string(scoring.ModeAirEconomy))

	tablesPath := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(tablesPath, []byte("preset: collapsed\n"), 0o600))
	out, err = execute(t, emptyEnv, "tables", "--tables", tablesPath)
	require.NoError(t, err)
	reference = campaign.ReferenceDocument{}
	require.NoError(t, json.Unmarshal([]byte(out), &reference))
	require.Contains(t, reference.EmissionFactors, string(scoring.ModeAir))
	require.NotContains(t, reference.EmissionFactors, string(scoring.ModeAirEconomy))
}
