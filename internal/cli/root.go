// Package cli wires configuration, logging, the loader and the presentation
// surfaces into the stagewiki command line.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	baseFlag   string
	langFlag   string
	logFile    string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "stagewiki",
	Short: "Glossary of stage and event technology",
	Long:  "Browse, search and export categorized stage technology terms.",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,

	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default ./stagewiki.toml)")
	flags.StringVar(&baseFlag, "base", "", "directory or http(s) URL data sources are relative to")
	flags.StringVar(&langFlag, "lang", "", "language for sorting and messages (en, de)")
	flags.StringVar(&logFile, "log-file", "", "log file (\"-\" disables logging)")
	flags.BoolVar(&debug, "debug", false, "log at debug level")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(initCmd)
}
