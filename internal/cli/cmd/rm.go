package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRmCmd creates the rm command
func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a snippet from the deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			id := args[0]
			if _, ok := sess.store.Get(id); !ok {
				fmt.Printf("No snippet with id %s\n", id)
				return nil
			}

			if err := sess.store.Delete(id); err != nil {
				return err
			}

			fmt.Printf("Removed %s\n", id)
			return nil
		},
	}
}
