package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash"
)

var removeCmd = &cobra.Command{
	Use:   "remove [path] [code]",
	Short: "Remove a message from a PNG file",
	Long:  "Detach the first chunk stored under the given type code and rewrite the file without it (in place unless --output is set).",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, code := args[0], args[1]

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		message, out, err := pngstash.RemoveMessage(data, code)
		if err != nil {
			return fmt.Errorf("remove failed: %w", err)
		}

		if err := os.WriteFile(outputPath(path), out, 0o644); err != nil {
			return err
		}

		fmt.Printf("Removed message encoded with code %s, it was %s\n", code, message)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
