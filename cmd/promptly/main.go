package main

import (
	"fmt"
	"os"

	"github.com/simonhull/promptly/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.AskCmd())
	rootCmd.AddCommand(commands.DemoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
