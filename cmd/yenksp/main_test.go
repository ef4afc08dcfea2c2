package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const diamondFile = `4 5
header
0 1 1
1 2 1
0 2 4
2 3 1
1 3 5
`

func writeGraph(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diamond.txt")
	require.NoError(t, os.WriteFile(path, []byte(diamondFile), 0o600))

	return path
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "yenksp", SilenceUsage: true, SilenceErrors: true}
	cmd.PersistentFlags().String("log-level", "error", "")
	cmd.PersistentFlags().String("log-format", "json", "")
	cmd.PersistentFlags().StringSlice("log-output", []string{"stderr"}, "")
	cmd.PersistentFlags().String("config", "", "")
	cmd.AddCommand(runCmd(), versionCmd())

	return cmd
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestRun_FixedPairSequential(t *testing.T) {
	out, err := execute(t, "run", "--graph", writeGraph(t), "--k", "3", "--source", "0", "--sink", "3")
	require.NoError(t, err)
	require.Contains(t, out, "Source: 0, Sink: 3")
	require.Contains(t, out, "k = 1\n0 -> 1 -> 2 -> 3\nCOST: 3\n")
	require.Contains(t, out, "k = 2\n0 -> 2 -> 3\nCOST: 5\n")
	require.Contains(t, out, "k = 3\n0 -> 1 -> 3\nCOST: 6\n")
	require.NotContains(t, out, "WORKER")
}

func TestRun_Distributed(t *testing.T) {
	out, err := execute(t, "run", "--graph", writeGraph(t), "--k", "2",
		"--source", "0", "--sink", "3", "--workers", "2")
	require.NoError(t, err)
	require.Contains(t, out, "COST: 5\n")
	require.Contains(t, out, "WORKER 1 || WORK DONE: ")
}

func TestRun_RandomPairsYAML(t *testing.T) {
	out, err := execute(t, "run", "--graph", writeGraph(t), "--pairs", "3", "--seed", "42", "--format", "yaml")
	require.NoError(t, err)
	require.Contains(t, out, "source: ")
}

func TestRun_EnvOverridesDefault(t *testing.T) {
	t.Setenv("YENKSP_K", "1")
	out, err := execute(t, "run", "--graph", writeGraph(t), "--source", "0", "--sink", "3")
	require.NoError(t, err)
	require.Contains(t, out, "k = 1\n")
	require.NotContains(t, out, "k = 2\n")
}

func TestRun_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("k: 2\nformat: json\n"), 0o600))

	out, err := execute(t, "--config", cfgPath, "run", "--graph", writeGraph(t), "--source", "0", "--sink", "3")
	require.NoError(t, err)
	require.Contains(t, out, `"cost": 5`)
	require.NotContains(t, out, `"rank": 3`)
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run")
	require.ErrorContains(t, err, "--graph is required")

	_, err = execute(t, "run", "--graph", writeGraph(t), "--source", "0")
	require.ErrorContains(t, err, "set together")

	_, err = execute(t, "run", "--graph", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	_, err = execute(t, "run", "--graph", writeGraph(t), "--source", "0", "--sink", "3", "--format", "xml")
	require.Error(t, err)
}

func TestRun_LogOutputFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "yenksp.log")
	_, err := execute(t, "--log-level", "info", "--log-output", logPath,
		"run", "--graph", writeGraph(t), "--source", "0", "--sink", "3")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"graph loaded"`)
	require.Contains(t, string(data), `"msg":"query solved"`)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, version+"\n", out)
}
