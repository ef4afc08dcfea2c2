package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	cmd := &cobra.Command{
		Use:           "yenksp",
		Short:         "yenksp computes the K loopless shortest paths between node pairs of a weighted graph",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().String("log-format", "console", "Log format: console or json")
	cmd.PersistentFlags().StringSlice("log-output", []string{"stderr"}, "Log sinks: stderr, stdout or file paths")
	cmd.PersistentFlags().String("config", "", "Path to a yaml config file (default ./yenksp.yaml if present)")

	cmd.AddCommand(runCmd())
	cmd.AddCommand(versionCmd())

	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}
