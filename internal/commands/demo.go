package commands

import (
	"fmt"

	"github.com/simonhull/promptly"
	"github.com/simonhull/promptly/coerce"
	"github.com/simonhull/promptly/output"
	"github.com/simonhull/promptly/prompt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// demoAnswer holds the three answers given for one kind
type demoAnswer struct {
	Kind     string `yaml:"kind"`
	Required any    `yaml:"required"`
	Optional any    `yaml:"optional"`
	Default  any    `yaml:"default"`
}

// DemoCmd creates the demo command, which walks through the required,
// optional and default form of each common kind.
func DemoCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Try every prompt form for a few common kinds",
		Long: `Asks for a string, a uint32, a bool and a path, each in its required,
optional and default form, then prints the answers.

Examples:
  promptly demo
  promptly demo --format yaml > answers.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}

			e, err := newEngine(cmd)
			if err != nil {
				return err
			}

			answers, err := runDemo(e)
			if err != nil {
				return err
			}

			if format == "yaml" {
				data, err := yaml.Marshal(answers)
				if err != nil {
					return fmt.Errorf("failed to encode answers: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			noColor, _ := cmd.Flags().GetBool("no-color")
			printAnswers(output.NewPrinter(cmd.OutOrStdout(), noColor), answers)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or yaml")

	return cmd
}

func runDemo(e *prompt.Engine) ([]demoAnswer, error) {
	var answers []demoAnswer

	steps := []func() (demoAnswer, error){
		func() (demoAnswer, error) { return demoKind(e, "String", "DefaultValue") },
		func() (demoAnswer, error) { return demoKind(e, "uint32", uint32(0)) },
		func() (demoAnswer, error) { return demoKind(e, "bool", false) },
		func() (demoAnswer, error) { return demoKind(e, "Path", coerce.Path("/home")) },
	}

	for _, step := range steps {
		a, err := step()
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}

func demoKind[T any](e *prompt.Engine, name string, def T) (demoAnswer, error) {
	req, err := promptly.Ask[T](e, name)
	if err != nil {
		return demoAnswer{}, err
	}

	opt, err := promptly.AskOpt[T](e, fmt.Sprintf("Optional %s", name))
	if err != nil {
		return demoAnswer{}, err
	}

	d, err := promptly.AskDefault(e, name, def)
	if err != nil {
		return demoAnswer{}, err
	}

	return demoAnswer{Kind: name, Required: req, Optional: opt, Default: d}, nil
}

func printAnswers(p *output.Printer, answers []demoAnswer) {
	p.Info("Answers")
	for _, a := range answers {
		p.Step(fmt.Sprintf("%s: required=%v optional=%v default=%v", a.Kind, a.Required, a.Optional, a.Default))
	}
	p.Success(fmt.Sprintf("Answered %d kinds", len(answers)))
}
