// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate <id> <lang>",
	Short: "Re-render a generated article in another language",
	Long: `Translate takes an already-generated article and a target language code
(for example hi, ta, ar, zh-CN), translates the long-form text best effort,
and renders and compiles the translated article into its own directory. The
stored English record is left untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		return a.runner.Translate(cmd.Context(), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
