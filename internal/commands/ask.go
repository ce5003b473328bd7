package commands

import (
	"fmt"
	"strings"

	"github.com/simonhull/promptly/coerce"
	"github.com/spf13/cobra"
)

// AskCmd creates the ask command, which prompts for one value of a
// registered kind and prints it on stdout.
func AskCmd() *cobra.Command {
	var (
		def      string
		optional bool
	)

	cmd := &cobra.Command{
		Use:   "ask <kind> <message>",
		Short: "Prompt for one typed value and print it",
		Long: `Asks <message> until the answer parses as <kind>, then prints the value.

With --optional an empty answer prints an empty line. With --default an
empty answer prints the default, which is shown in the question.

Examples:
  promptly ask int "Enter your age"
  promptly ask bool "Continue" --default yes     # Continue (Y/n):
  promptly ask path "Output directory" --optional`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := coerce.Default().ByName(args[0])
			if err != nil {
				return fmt.Errorf("%w (known kinds: %s)", err, strings.Join(coerce.Names(), ", "))
			}

			e, err := newEngine(cmd)
			if err != nil {
				return err
			}
			e.Printer().Verbose(fmt.Sprintf("asking for %s", kind.KindName()))

			msg := args[1]
			var v any
			switch {
			case cmd.Flags().Changed("default"):
				v, err = kind.AskDefault(e, msg, def)
			case optional:
				var ok bool
				v, ok, err = kind.AskOptional(e, msg)
				if err == nil && !ok {
					v = ""
				}
			default:
				v, err = kind.AskRequired(e, msg)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}

	cmd.Flags().StringVar(&def, "default", "", "Value used for an empty answer")
	cmd.Flags().BoolVar(&optional, "optional", false, "Accept an empty answer")
	cmd.MarkFlagsMutuallyExclusive("default", "optional")

	return cmd
}
