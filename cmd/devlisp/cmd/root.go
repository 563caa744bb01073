// Package cmd implements the devlisp command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:   "devlisp",
	Short: "A Devanagari-lexeme Lisp interpreter",
	Long: `devlisp is an interpreter for देवलिस्प, a small homoiconic Lisp whose
reserved forms and numerals are written in Devanagari script.

Running devlisp with no subcommand starts an interactive REPL.`,
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.OutOrStdout())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a .devlisprc.yaml config file")
}
