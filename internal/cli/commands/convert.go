package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/internal/loader"
)

type convertResult struct {
	Input      string `json:"input"`
	Output     string `json:"output"`
	Entries    int    `json:"entries"`
	Irregulars int    `json:"irregulars"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output.db>",
		Short: "Store a lexicon in a SQLite database",
		Long: `Read a lexicon file (YAML or SQLite) and write it to a SQLite
database. Existing entries with the same base and category are replaced.

Examples:
  nlg convert words.yaml words.db`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			ctx := commandCtx(cmd)
			in, out := args[0], args[1]

			src, err := loader.Load(ctx, in, cmdCtx.Logger)
			if err != nil {
				return err
			}
			if err := loader.SaveSQLite(ctx, out, src); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			cmdCtx.Logger.Info("lexicon converted", "input", in, "output", out, "entries", len(src.Entries))

			r := cmdCtx.Renderer
			if r.IsJSON() {
				return r.JSON(convertResult{
					Input:      in,
					Output:     out,
					Entries:    len(src.Entries),
					Irregulars: len(src.Irregulars),
				})
			}
			r.Println(r.Styles().Success.Render(fmt.Sprintf("Converted %d entries and %d irregulars to %s", len(src.Entries), len(src.Irregulars), out)))
			return nil
		},
	}
}
