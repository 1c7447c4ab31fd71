package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lgbarn/pgn-tree-go/internal/pgn"
)

var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List the games in a PGN file",
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
		for i := 0; i < db.Count(); i++ {
			g, err := db.Game(i)
			if err != nil {
				logger.Warn("unparsable game", zap.Int("game", i), zap.Error(err))
				fmt.Fprintf(out, "%4d  <unparsable: %v>\n", i, err)
				continue
			}
			h := &g.Headers
			white, black := h.White, h.Black
			if white == "" {
				white = "?"
			}
			if black == "" {
				black = "?"
			}
			fmt.Fprintf(out, "%4d  %s - %s  %s  %s  %s\n",
				i, white, black, h.Result, h.Date, h.Event)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
