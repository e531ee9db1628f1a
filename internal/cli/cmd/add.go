package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [text]",
		Short: "Add a new snippet to the front of the deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) > 0 {
				text = strings.Join(args, " ")
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read from stdin: %w", err)
				}
				text = string(data)
			}

			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			item, err := sess.store.Create(text)
			if err != nil {
				return err
			}
			if item == nil {
				fmt.Println("Nothing to add: text is empty.")
				return nil
			}

			fmt.Printf("Added %s\n", item.ID)
			return nil
		},
	}
}
