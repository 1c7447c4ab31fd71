package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lgbarn/pgn-tree-go/internal/game"
	"github.com/lgbarn/pgn-tree-go/internal/pgn"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Rewrite a PGN file in normalized form",
	Long: `Rewrite every game of a PGN file in normalized form: fixed header order,
canonical SAN, numeric NAGs, and wrapped movetext. Games that fail to
parse are dropped with a warning. Output goes to stdout unless -w is
given.`,
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
		wr := &pgn.Writer{LineWidth: cfg.LineWidth}
		var sb strings.Builder
		first := true
		db.Each(func(i int, g *game.Game) bool {
			if !first {
				sb.WriteByte('\n')
			}
			first = false
			if err := wr.Write(&sb, g); err != nil {
				logger.Warn("rendering game", zap.Int("game", i), zap.Error(err))
			}
			return true
		})
		if fmtWrite {
			return os.WriteFile(args[0], []byte(sb.String()), 0o644)
		}
		_, err = cmd.OutOrStdout().Write([]byte(sb.String()))
		return err
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite the file in place")
	rootCmd.AddCommand(fmtCmd)
}
