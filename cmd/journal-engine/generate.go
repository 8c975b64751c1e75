// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <id>",
	Short: "Run the content pipeline for a stored submission",
	Long: `Generate runs the full pipeline for one submission: harvest ten
references, synthesize the body sections and title, assemble the output
record, render the HTML preview and LaTeX source, and compile the PDF. The
assembled record is printed and stored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		rec, err := a.runner.Generate(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(rec)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
