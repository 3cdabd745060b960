package commands

import (
	"github.com/spf13/cobra"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/lexicon"
)

type variantsResult struct {
	Language string   `json:"language"`
	Base     string   `json:"base"`
	Category string   `json:"category"`
	Forms    []string `json:"forms"`
}

// NewVariantsCommand creates the variants command.
func NewVariantsCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "variants <base>",
		Short: "List every surface form of a lexical entry",
		Long: `List the variant set of a lexical entry: the base form, its regular
inflections and any irregular forms.

When a lexicon is configured, irregular forms declared in it are included.
Otherwise only the built-in irregulars of the language are used.

Examples:
  nlg variants cry --category verb
  nlg variants be -c verb
  nlg variants -l pt cão`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			cat, err := parseCategoryFlag(category)
			if err != nil {
				return err
			}
			entry := core.NewWordEntry(args[0], cat)

			ctx := commandCtx(cmd)
			var lex *lexicon.Lexicon
			if cmdCtx.Cfg.Lexicon != "" {
				lex, err = cmdCtx.Lexicon(ctx)
			} else {
				lex, err = lexicon.NewBuilder(cmdCtx.Language).
					WithLogger(cmdCtx.Logger).
					Add(entry).
					Build(ctx)
			}
			if err != nil {
				return err
			}
			if known, ok := lex.Entry(entry.Base, entry.Category); ok {
				entry = known
			} else {
				cmdCtx.Renderer.Warnf("%s (%s) is not in %s, showing built-in forms only", entry.Base, entry.Category, cmdCtx.Cfg.Lexicon)
			}

			forms := lex.Variants(entry).Sorted()

			r := cmdCtx.Renderer
			if r.IsJSON() {
				return r.JSON(variantsResult{
					Language: cmdCtx.Language.Name(),
					Base:     entry.Base,
					Category: entry.Category.String(),
					Forms:    forms,
				})
			}
			r.Println(r.Styles().Header2.Render(entry.Base + " (" + entry.Category.String() + ")"))
			for _, f := range forms {
				r.Printf("  %s\n", f)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(core.CategoryNoun), "Grammatical category of the entry")
	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(core.Categories))
		for i, c := range core.Categories {
			names[i] = c.String()
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
