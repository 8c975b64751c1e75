// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/journal-engine/pkg/types"
)

var submitCmd = &cobra.Command{
	Use:   "submit <file.json>",
	Short: "Validate and store a new submission",
	Long: `Submit reads a submission record from a JSON file (or stdin with "-"),
validates it, derives the brand's editorial milestone dates from the received
date, and stores it under its ID. The stored record is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if args[0] == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("reading submission: %w", err)
		}

		var sub types.SubmissionRecord
		if err := json.Unmarshal(data, &sub); err != nil {
			return fmt.Errorf("parsing submission: %w", err)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.runner.Submit(&sub); err != nil {
			return err
		}
		return printJSON(sub)
	},
}

// printJSON writes v to stdout, indented.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.AddCommand(submitCmd)
}
