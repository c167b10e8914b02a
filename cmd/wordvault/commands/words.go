package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordvault/internal/domain"
)

func wordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words <collection>",
		Short: "Print the words of a collection in insertion order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.CollectionName(args[0])
			words, err := appCtx.Collections.Words(name)
			if err != nil {
				return err
			}
			for _, w := range words {
				fmt.Println(w)
			}
			return nil
		},
	}
}
