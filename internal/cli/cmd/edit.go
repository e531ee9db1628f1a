package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newEditCmd creates the edit command
func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Replace the text of a snippet",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			id := args[0]
			text := strings.Join(args[1:], " ")

			if _, ok := sess.store.Get(id); !ok {
				fmt.Printf("No snippet with id %s\n", id)
				return nil
			}

			if err := sess.store.Update(id, text); err != nil {
				return err
			}

			fmt.Printf("Updated %s\n", id)
			return nil
		},
	}
}
