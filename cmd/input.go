package cmd

import (
	"fmt"
	"strconv"

	"github.com/alantheprice/goclack/pkg/prompt"
	"github.com/spf13/cobra"
)

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Single-line text input demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt.Intro("input")

		name, err := prompt.NewInput("What's your name?").
			Placeholder("anonymous").
			OnCancel(cancelDemo).
			Interact()
		if err != nil {
			return finish(err)
		}

		count, err := prompt.Parse(prompt.NewInput("How many?").
			Default("1").
			OnCancel(cancelDemo), strconv.Atoi)
		if err != nil {
			return finish(err)
		}

		prompt.Outro("done")
		fmt.Printf("name %q\n", name)
		fmt.Printf("count %d\n", count)
		return nil
	},
}
