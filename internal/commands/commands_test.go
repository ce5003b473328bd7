package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the CLI with stdin as input. Input failures are returned
// rather than exiting the test binary.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("PROMPTLY_ON_FAILURE", "return")

	root := RootCmd()
	root.AddCommand(AskCmd())
	root.AddCommand(DemoCmd())

	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// cliCommand returns a command that runs the CLI against the real process
// stdin, stdout and stderr.
func cliCommand(args ...string) *exec.Cmd {
	cs := append([]string{"-test.run=^TestHelperProcess$", "--"}, args...)
	cmd := exec.Command(os.Args[0], cs...)
	cmd.Env = append(os.Environ(),
		"GO_WANT_HELPER_PROCESS=1",
		"PROMPTLY_INTERACTIVE=never",
		"PROMPTLY_ON_FAILURE=return",
		"NO_COLOR=1",
	)
	return cmd
}

// TestHelperProcess runs the CLI for cliCommand
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}

	root := RootCmd()
	root.AddCommand(AskCmd())
	root.AddCommand(DemoCmd())
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func TestAsk_ProcessStdoutHoldsOnlyTheAnswer(t *testing.T) {
	cmd := cliCommand("ask", "uint16", "Port", "--default", "8080")
	cmd.Stdin = strings.NewReader("\n")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	require.NoError(t, cmd.Run(), stderr.String())

	assert.Equal(t, "8080\n", stdout.String())
	assert.Contains(t, stderr.String(), "Port (default=8080): ")
}

func TestAsk_ProcessRetriesOnStderr(t *testing.T) {
	cmd := cliCommand("ask", "int", "Enter your age")
	cmd.Stdin = strings.NewReader("\nabc\n42\n")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	require.NoError(t, cmd.Run(), stderr.String())

	assert.Equal(t, "42\n", stdout.String())
	assert.Contains(t, stderr.String(), "Value is required.")
	assert.Contains(t, stderr.String(), "Could not parse abc as int: invalid syntax.")
}

func TestAsk_Required(t *testing.T) {
	stdout, stderr, err := execute(t, "\nabc\n42\n", "ask", "int", "Enter your age", "--no-color")
	require.NoError(t, err)

	assert.Equal(t, "42\n", stdout)
	assert.Contains(t, stderr, "Enter your age: ")
	assert.Contains(t, stderr, "Value is required.")
	assert.Contains(t, stderr, "Could not parse abc as int: invalid syntax.")
}

func TestAsk_Default(t *testing.T) {
	stdout, stderr, err := execute(t, "\n", "ask", "bool", "Continue", "--default", "yes")
	require.NoError(t, err)

	assert.Equal(t, "true\n", stdout)
	assert.Contains(t, stderr, "Continue (Y/n): ")
}

func TestAsk_Char(t *testing.T) {
	stdout, stderr, err := execute(t, "yes\ny\n", "ask", "char", "Continue? [y/n]", "--no-color")
	require.NoError(t, err)

	assert.Equal(t, "y\n", stdout)
	assert.Contains(t, stderr, "Could not parse yes as char: want a single character.")
}

func TestAsk_Optional(t *testing.T) {
	stdout, _, err := execute(t, "\n", "ask", "path", "Output directory", "--optional")
	require.NoError(t, err)
	assert.Equal(t, "\n", stdout)

	stdout, _, err = execute(t, "/tmp/out\n", "ask", "path", "Output directory", "--optional")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out\n", stdout)
}

func TestAsk_Errors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
	}{
		{"unknown kind", "", []string{"ask", "complex128", "Z"}, "known kinds:"},
		{"invalid default", "", []string{"ask", "int", "N", "--default", "many"}, "invalid default"},
		{"default with optional", "", []string{"ask", "int", "N", "--default", "1", "--optional"}, "none of the others can be"},
		{"missing message", "", []string{"ask", "int"}, "accepts 2 arg(s)"},
		{"input closed", "", []string{"ask", "int", "N"}, "EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestAsk_InputClosedIsEOF(t *testing.T) {
	_, _, err := execute(t, "", "ask", "string", "Name")
	assert.ErrorIs(t, err, io.EOF)
}

func TestAsk_Verbose(t *testing.T) {
	_, stderr, err := execute(t, "5\n", "ask", "int", "N", "--verbose", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stderr, "asking for int")
}

func TestAsk_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "promptly.yml")
	require.NoError(t, os.WriteFile(path, []byte("required_message: Please answer.\ndiagnostics: stdout\n"), 0644))

	stdout, _, err := execute(t, "\nok\n", "ask", "string", "Name", "--config", path, "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "Please answer.\nok\n", stdout)
}

func TestAsk_BadConfigFile(t *testing.T) {
	_, _, err := execute(t, "x\n", "ask", "string", "Name", "--config", filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "loading config")
}

// demoInput answers the required, optional and default question for each
// demo kind in order.
const demoInput = "Ada\n\n\n" +
	"7\n\n\n" +
	"y\nn\n\n" +
	"/tmp\n\n\n"

func TestDemo_YAML(t *testing.T) {
	stdout, _, err := execute(t, demoInput, "demo", "--format", "yaml")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 4)

	assert.Equal(t, map[string]any{"kind": "String", "required": "Ada", "optional": nil, "default": "DefaultValue"}, got[0])
	assert.Equal(t, map[string]any{"kind": "uint32", "required": 7, "optional": nil, "default": 0}, got[1])
	assert.Equal(t, map[string]any{"kind": "bool", "required": true, "optional": false, "default": false}, got[2])
	assert.Equal(t, map[string]any{"kind": "Path", "required": "/tmp", "optional": nil, "default": "/home"}, got[3])
}

func TestDemo_Text(t *testing.T) {
	stdout, stderr, err := execute(t, demoInput, "demo", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, stdout, "String: required=Ada optional=none default=DefaultValue")
	assert.Contains(t, stdout, "bool: required=true optional=false default=false")
	assert.Contains(t, stdout, "Answers")
	assert.Contains(t, stdout, "Answered 4 kinds")
	assert.Contains(t, stderr, "Optional uint32: ")
	assert.Contains(t, stderr, "bool (y/N): ")
	assert.Contains(t, stderr, "Path (default=/home): ")
}

func TestDemo_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, "", "demo", "--format", "json")
	assert.ErrorContains(t, err, "unknown format")
}

func TestRootCmd_Version(t *testing.T) {
	stdout, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "promptly version")
}
