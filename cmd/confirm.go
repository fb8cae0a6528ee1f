package cmd

import (
	"fmt"

	"github.com/alantheprice/goclack/pkg/prompt"
	"github.com/spf13/cobra"
)

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Yes/no confirmation demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt.Intro("confirm")

		ok, err := prompt.NewConfirm("Continue?").
			Initial(true).
			OnCancel(cancelDemo).
			Interact()
		if err != nil {
			return finish(err)
		}

		overwrite, err := prompt.NewConfirm("File exists, overwrite?").
			Prompts("overwrite", "keep").
			OnCancel(cancelDemo).
			Interact()
		if err != nil {
			return finish(err)
		}

		prompt.Outro("done")
		fmt.Printf("continue %v\n", ok)
		fmt.Printf("overwrite %v\n", overwrite)
		return nil
	},
}
