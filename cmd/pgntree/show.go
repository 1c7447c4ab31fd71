package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgbarn/pgn-tree-go/internal/engine"
	"github.com/lgbarn/pgn-tree-go/internal/errors"
	"github.com/lgbarn/pgn-tree-go/internal/pgn"
)

var (
	showGame int
	showID   string
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print one game in normalized form",
	Long: `Print one game of a PGN file in normalized form. With --id, print the
position reached at a node or variation of the game tree instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		db, err := pgn.NewDatabase(string(data), pgn.WithLogger(logger))
		if err != nil {
			return err
		}
		g, err := db.Game(showGame)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if showID == "" {
			wr := &pgn.Writer{LineWidth: cfg.LineWidth}
			return wr.Write(out, g)
		}
		if node, ok := g.FindNodeByID(showID); ok {
			board, err := node.BoardAfter()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s  %s\n", showID, node.Move().Text)
			if nags := node.NAGs(); len(nags) > 0 {
				glyphs := make([]string, len(nags))
				for i, nag := range nags {
					glyphs[i] = fmt.Sprintf("$%d", nag)
				}
				fmt.Fprintf(out, "nags: %s\n", strings.Join(glyphs, " "))
			}
			if comment := node.Comment(); comment != "" {
				fmt.Fprintf(out, "comment: %s\n", comment)
			}
			fmt.Fprintln(out, engine.FormatFEN(board))
			return nil
		}
		if v, ok := g.FindVariationByID(showID); ok {
			board, err := v.StartBoard()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s  (%d moves)\n", showID, v.Length())
			fmt.Fprintln(out, engine.FormatFEN(board))
			return nil
		}
		return errors.Wrapf(errors.ErrIllegalArgument, "no entity with ID %q", showID)
	},
}

func init() {
	showCmd.Flags().IntVar(&showGame, "game", 0, "game index in the file")
	showCmd.Flags().StringVar(&showID, "id", "", "node or variation ID to inspect")
	rootCmd.AddCommand(showCmd)
}
