package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCopyCmd creates the copy command
func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy a snippet's text to the system clipboard",
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

			if err := sess.tracker.MarkCopied(id); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}

			fmt.Printf("Copied %s\n", id)
			return nil
		},
	}
}
