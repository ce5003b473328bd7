package commands

import (
	"fmt"

	"github.com/simonhull/promptly"
	"github.com/simonhull/promptly/config"
	"github.com/simonhull/promptly/input"
	"github.com/simonhull/promptly/prompt"
	"github.com/spf13/cobra"
)

// loadConfig reads promptly.yml and applies the persistent flags on top
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if verbose {
		cfg.LogLevel = "debug"
	}
	if noColor {
		cfg.NoColor = true
	}
	return cfg, nil
}

// newEngine builds the engine a command prompts with. Input comes from the
// command's stdin (the terminal editor when it is a terminal) and prompts go
// to its stderr, leaving stdout to the answers.
func newEngine(cmd *cobra.Command) (*prompt.Engine, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	plain, paths := input.Open(cfg.Mode(), cmd.InOrStdin(), cmd.ErrOrStderr())
	e := promptly.NewEngineWith(cfg, plain, paths, cmd.OutOrStdout(), cmd.ErrOrStderr())

	verbose, _ := cmd.Flags().GetBool("verbose")
	e.Printer().SetVerbose(verbose)
	return e, nil
}
