package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List collections with their word counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := appCtx.Collections.ListCollections()
			if len(names) == 0 {
				fmt.Println("No collections yet. Create one with `wordvault create`.")
				return nil
			}
			for _, name := range names {
				count, err := appCtx.Collections.WordCount(name)
				if err != nil {
					return err
				}
				fmt.Printf("%s: %d\n", name, count)
			}
			return nil
		},
	}
}
