package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash"
)

var printCmd = &cobra.Command{
	Use:   "print [path]",
	Short: "Print the PNG chunks that can be searched for messages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		listing, err := pngstash.ListChunks(data)
		if err != nil {
			return fmt.Errorf("print failed: %w", err)
		}

		fmt.Println("List of possible messages")
		fmt.Println(listing)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
