package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordvault/internal/domain"
)

// add <collection> <word>: append a word unless a case-variant already exists.
func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <collection> <word>",
		Short: "Add a word to a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.CollectionName(args[0])
			word := domain.Word(args[1])

			added, err := appCtx.Collections.AddWord(cmd.Context(), name, word)
			if err != nil {
				return err
			}
			if !added {
				fmt.Printf("%q is already in %q.\n", word, name)
				return nil
			}
			fmt.Printf("Added %q to %q.\n", word, name)
			return nil
		},
	}
}
