package cmd

import (
	"fmt"

	"github.com/alantheprice/goclack/pkg/prompt"
	"github.com/spf13/cobra"
)

var selectPaged bool

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Single-select demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt.Intro("select")

		s := prompt.NewSelect[string]("Pick a fruit").
			Option("mango", "Mango").
			Option("lychee", "Lychee").
			OptionHint("peach", "Peach", "the best one").
			Option("kiwi", "Kiwi").
			Option("plum", "Plum").
			Option("fig", "Fig").
			OnCancel(cancelDemo)
		if selectPaged {
			s.LessAmount(3)
		}

		fruit, err := s.Interact()
		if err != nil {
			return finish(err)
		}

		prompt.Outro("done")
		fmt.Printf("fruit %q\n", fruit)
		return nil
	},
}

func init() {
	selectCmd.Flags().BoolVar(&selectPaged, "paged", false, "page the list three rows at a time")
}
