package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/myrjola/sustainscore/internal/e2etest"
	"github.com/stretchr/testify/require"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "SUSTAINSCORE_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}

// startTestServer starts the server on a random port and stops it when the test finishes.
func startTestServer(t *testing.T, w io.Writer, lookupEnv func(string) (string, bool)) *e2etest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	server, err := e2etest.StartServer(ctx, w, lookupEnv, run)
	require.NoError(t, err)
	return server
}

// lookupEnvWith overrides testLookupEnv with env.
func lookupEnvWith(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := env[key]; ok {
			return v, true
		}
		return testLookupEnv(key)
	}
}

func writeTablesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
