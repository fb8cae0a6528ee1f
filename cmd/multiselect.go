package cmd

import (
	"fmt"

	"github.com/alantheprice/goclack/pkg/prompt"
	"github.com/spf13/cobra"
)

var multiSelectCmd = &cobra.Command{
	Use:   "multiselect",
	Short: "Multi-select demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt.Intro("multiselect")

		toppings, err := prompt.NewMultiSelect[string]("Pick your toppings").
			Option("cheese", "Cheese").
			Option("olives", "Olives").
			OptionHint("anchovies", "Anchovies", "bold choice").
			Option("basil", "Basil").
			OnCancel(cancelDemo).
			Interact()
		if err != nil {
			return finish(err)
		}

		prompt.Outro("done")
		fmt.Printf("toppings %q\n", toppings)
		return nil
	},
}
