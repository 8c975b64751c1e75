// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/journal-engine/internal/pipeline"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Inspect stored submissions, outputs, and run history",
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored submission IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		for _, id := range a.store.Submissions.IDs() {
			fmt.Println(id)
		}
		return nil
	},
}

var recordsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print a stored submission, or its output with --output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if output, _ := cmd.Flags().GetBool("output"); output {
			rec, ok := a.store.Outputs.Get(args[0])
			if !ok {
				return fmt.Errorf("output %s: %w", args[0], pipeline.ErrNotFound)
			}
			return printJSON(rec)
		}
		rec, ok := a.store.Submissions.Get(args[0])
		if !ok {
			return fmt.Errorf("submission %s: %w", args[0], pipeline.ErrNotFound)
		}
		return printJSON(rec)
	},
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a submission and its generated output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		found, err := a.store.Submissions.Delete(args[0])
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("submission %s: %w", args[0], pipeline.ErrNotFound)
		}
		_, err = a.store.Outputs.Delete(args[0])
		return err
	},
}

var recordsRunsCmd = &cobra.Command{
	Use:   "runs <id>",
	Short: "Print the run history for an article, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		runs, err := a.store.Ledger.History(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, r := range runs {
			line := fmt.Sprintf("%s %s %s", r.StartedAt.Format("2006-01-02 15:04:05"), r.Kind, r.Status)
			if r.Lang != "" {
				line += " lang=" + r.Lang
			}
			if r.Detail != "" {
				line += " detail=" + r.Detail
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	recordsGetCmd.Flags().Bool("output", false, "print the generated output record instead of the submission")

	recordsCmd.AddCommand(recordsListCmd, recordsGetCmd, recordsDeleteCmd, recordsRunsCmd)
	rootCmd.AddCommand(recordsCmd)
}
