// Package cmd implements the village CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the current version.
const Version = "0.1.0"

var cfgFile string

// rootCmd is the root command.
var rootCmd = &cobra.Command{
	Use:     "village",
	Short:   "Social networking platform server",
	Long:    `village is a social networking / content management platform server.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yml", "config file path")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
