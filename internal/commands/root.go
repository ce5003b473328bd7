package commands

import (
	"github.com/simonhull/promptly"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the promptly CLI
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promptly",
		Short: "Ask for typed values on the command line",
		Long: `Promptly asks a question, checks the answer against a type and asks
again until the answer is valid.

Use it from shell scripts to collect typed input:
  port=$(promptly ask uint16 "Port" --default 8080)
  name=$(promptly ask string "Project name")

Settings are read from promptly.yml and PROMPTLY_* environment variables.`,
		Version:       promptly.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to a promptly.yml file")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log prompt activity to stderr")
	cmd.PersistentFlags().Bool("no-color", false, "Disable coloured diagnostics")

	return cmd
}
