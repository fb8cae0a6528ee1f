package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alantheprice/goclack/pkg/prompt"
	"github.com/spf13/cobra"
)

var multiInputCmd = &cobra.Command{
	Use:   "multiinput",
	Short: "Multi-line input demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt.Intro("multiinput")

		aliases, err := prompt.NewMultiInput("Add aliases").
			Placeholder("empty line submits").
			Max(4).
			Validate(func(s string) error {
				if strings.ContainsRune(s, ' ') {
					return errors.New("no whitespace in aliases")
				}
				return nil
			}).
			OnCancel(cancelDemo).
			Interact()
		if err != nil {
			return finish(err)
		}

		prompt.Outro("done")
		fmt.Printf("aliases %q\n", aliases)
		return nil
	},
}
