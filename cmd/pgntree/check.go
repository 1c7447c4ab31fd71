package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lgbarn/pgn-tree-go/internal/pgn"
	"github.com/lgbarn/pgn-tree-go/internal/worker"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse every game of a PGN file and report failures",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		db, err := pgn.NewDatabase(string(data), pgn.WithLogger(logger))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		failures := 0
		for _, r := range worker.ParseAll(db, cfg.Workers) {
			if r.Err != nil {
				failures++
				fmt.Fprintf(out, "%s\n", r.Err)
			}
		}
		fmt.Fprintf(out, "%d games, %d unparsable\n", db.Count(), failures)
		if failures > 0 {
			return fmt.Errorf("%d of %d games failed to parse", failures, db.Count())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
