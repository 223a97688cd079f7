// Package commands implements the pngstash CLI.
//
// The commands are thin glue around the core library: each one reads a PNG
// file into memory, calls the corresponding top-level operation, and writes
// the result back out or prints it. All validation and error taxonomy live
// in the core packages.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "pngstash",
	Short:         "Hide and recover messages inside PNG files",
	Long:          "pngstash embeds steganographic messages in PNG chunk records and retrieves or removes them without disturbing image data.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns its error for the caller to map to a
// non-zero exit.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Flag defaults can also come from PNGSTASH_* environment variables.
	viper.SetEnvPrefix("PNGSTASH")
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().StringP("output", "o", "", "write the modified file here instead of in place")
	if err := viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")); err != nil {
		fmt.Fprintln(os.Stderr, "failed to bind flag:", err)
		os.Exit(1)
	}
}

// outputPath resolves where mutating commands write their result: the
// --output flag (or PNGSTASH_OUTPUT) when set, otherwise the input path.
func outputPath(inputPath string) string {
	if out := viper.GetString("output"); out != "" {
		return out
	}

	return inputPath
}
