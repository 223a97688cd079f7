package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [path] [code] [message]",
	Short: "Encode a message into a PNG file",
	Long:  "Append a chunk carrying the message under the given 4-character type code. The file is rewritten in place unless --output is set.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, code, message := args[0], args[1], args[2]

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		out, err := pngstash.EncodeMessage(data, code, message)
		if err != nil {
			return fmt.Errorf("encode failed: %w", err)
		}

		if err := os.WriteFile(outputPath(path), out, 0o644); err != nil {
			return err
		}

		fmt.Printf("Encoded message with code %s\n", code)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
