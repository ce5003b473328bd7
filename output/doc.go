// Package output prints styled status lines and prompt diagnostics.
//
// # Overview
//
// Every prompt owned by promptly reports through a Printer: parse failures,
// the "Value is required." notice and fatal input errors. The CLI uses the
// same Printer for its status lines.
//
// # Usage
//
//	p := output.NewPrinter(os.Stderr, false)
//	p.Diagnostic("Could not parse maybe as bool.")
//	p.Notice("Value is required.")
//	p.Success("Saved answers")
//
// # Verbose Mode
//
//	p.SetVerbose(true)
//	p.Verbose("This only prints in verbose mode")
//
// # Styling
//
// Styles come from lipgloss and are bound to the Printer's writer, so a
// writer that is not a terminal (or a Printer built with noColor) produces
// plain text:
//
//   - Diagnostic: red
//   - Notice: yellow
//   - Success: 🔥 green bold
//   - Error: ❌ red bold
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
