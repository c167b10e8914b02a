package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordvault/internal/domain"
)

// remove <collection> <word>: delete the case-insensitive match of a word.
func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <collection> <word>",
		Short: "Remove a word from a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.CollectionName(args[0])
			word := domain.Word(args[1])

			removed, err := appCtx.Collections.RemoveWord(cmd.Context(), name, word)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Printf("%q is not in %q.\n", word, name)
				return nil
			}
			fmt.Printf("Removed %q from %q.\n", word, name)
			return nil
		},
	}
}
