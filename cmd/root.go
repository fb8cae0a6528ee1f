package cmd

import (
	"errors"
	"os"

	"github.com/alantheprice/goclack/pkg/prompt"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "goclack",
	Short: "Interactive terminal prompt demos",
	Long: `Goclack is a library of clack-style interactive terminal prompts:
text input, confirm, single- and multi-select and multi-line input.

This binary runs one demo scenario per prompt kind:
  input        - single-line text input
  confirm      - yes/no confirmation
  select       - pick one option
  multiselect  - pick any number of options
  multiinput   - collect several lines
  full         - a full session using every prompt

Run one with: goclack <scenario>`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(inputCmd)
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(multiSelectCmd)
	rootCmd.AddCommand(multiInputCmd)
	rootCmd.AddCommand(fullCmd)
}

// finish closes the session, swallowing a cancel that already printed its
// own outro.
func finish(err error) error {
	if errors.Is(err, prompt.ErrCancelled) {
		return nil
	}
	return err
}

func cancelDemo() {
	prompt.Cancel("demo cancelled")
	os.Exit(1)
}
