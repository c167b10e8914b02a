package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordvault/internal/domain"
)

func countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <collection>",
		Short: "Print the word count of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.CollectionName(args[0])
			count, err := appCtx.Collections.WordCount(name)
			if err != nil {
				return err
			}
			fmt.Println(count)
			return nil
		},
	}
}
