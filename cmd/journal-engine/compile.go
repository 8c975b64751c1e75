// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile <id>",
	Short: "Re-render and recompile a generated article",
	Long: `Compile re-renders the HTML preview and LaTeX source for a stored
article and runs xelatex again, without touching the model. Useful after
template or font changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		return a.runner.Recompile(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
