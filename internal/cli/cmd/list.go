package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all snippets in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			items := sess.store.Items()

			if useJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			if len(items) == 0 {
				fmt.Println("No snippets.")
				return nil
			}

			for i, item := range items {
				preview := item.Text
				if idx := strings.IndexByte(preview, '\n'); idx >= 0 {
					preview = preview[:idx] + " ..."
				}
				fmt.Printf("%3d  %-20s  %s\n", i, item.ID, preview)
			}
			return nil
		},
	}
}
