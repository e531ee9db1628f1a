package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// newMoveCmd creates the move command
func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a snippet to a new position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid from index %q: %w", args[0], err)
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid to index %q: %w", args[1], err)
			}

			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			if from < 0 || from >= sess.store.Len() || to < 0 || to >= sess.store.Len() {
				fmt.Printf("Indices must be between 0 and %d\n", sess.store.Len()-1)
				return nil
			}

			if err := sess.store.Reorder(from, to); err != nil {
				return err
			}

			fmt.Printf("Moved %d -> %d\n", from, to)
			return nil
		},
	}
}
