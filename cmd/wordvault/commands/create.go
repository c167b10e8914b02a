package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordvault/internal/domain"
)

func createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <collection>",
		Short: "Create a new, empty word collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.CollectionName(args[0])
			created, err := appCtx.Collections.CreateCollection(cmd.Context(), name)
			if err != nil {
				return err
			}
			if !created {
				fmt.Printf("Collection %q already exists.\n", name)
				return nil
			}
			fmt.Printf("Collection %q created.\n", name)
			return nil
		},
	}
}
