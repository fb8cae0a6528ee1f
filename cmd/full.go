package cmd

import (
	"fmt"

	"github.com/alantheprice/goclack/pkg/prompt"
	"github.com/spf13/cobra"
)

var fullCmd = &cobra.Command{
	Use:   "full",
	Short: "Run a full session with every prompt kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println()
		prompt.Intro("full")
		prompt.Info("arrow keys move, space toggles, enter submits")

		name, err := prompt.NewInput("input").
			Default("default").
			OnCancel(cancelDemo).
			Interact()
		if err != nil {
			return finish(err)
		}

		lines, err := prompt.NewMultiInput("multi input").
			Max(4).
			OnCancel(cancelDemo).
			Interact()
		if err != nil {
			return finish(err)
		}

		ok, err := prompt.NewConfirm("confirm").
			Prompts("true", "false").
			OnCancel(cancelDemo).
			Interact()
		if err != nil {
			return finish(err)
		}

		picks, err := prompt.NewMultiSelect[string]("multi select").
			Option("opt1", "option 1").
			Option("opt2", "option 2").
			OptionHint("opt3", "option 3", "hint").
			OnCancel(cancelDemo).
			Interact()
		if err != nil {
			return finish(err)
		}

		choice, err := prompt.NewSelect[string]("select").
			Option("val1", "value 1").
			Option("val2", "value 2").
			OptionHint("val3", "value 3", "hint").
			OnCancel(cancelDemo).
			Interact()
		if err != nil {
			return finish(err)
		}

		prompt.Outro("")

		fmt.Printf("input %q\n", name)
		fmt.Printf("multi input %q\n", lines)
		fmt.Printf("confirm %v\n", ok)
		fmt.Printf("multi select %q\n", picks)
		fmt.Printf("select %q\n", choice)
		return nil
	},
}
