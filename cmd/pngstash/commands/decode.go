package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [path] [code]",
	Short: "Decode a message stored in a PNG file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, code := args[0], args[1]

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		message, err := pngstash.DecodeMessage(data, code)
		if err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}

		fmt.Printf("The encoded message with code %s is %s\n", code, message)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
