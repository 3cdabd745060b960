package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type lookupEntry struct {
	Base     string `json:"base"`
	Category string `json:"category"`
}

type lookupResult struct {
	Form    string        `json:"form"`
	Entries []lookupEntry `json:"entries"`
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <form>",
		Short: "Find the lexicon entries a surface form belongs to",
		Long: `Find every entry of the configured lexicon whose variant set contains
the given form. Requires --lexicon or a lexicon setting in nlg.yaml.

Examples:
  nlg lookup was --lexicon words.yaml
  nlg lookup cries`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			lex, err := cmdCtx.Lexicon(commandCtx(cmd))
			if err != nil {
				return err
			}

			form := args[0]
			entries := lex.Lookup(form)
			if len(entries) == 0 {
				return fmt.Errorf("no lexicon entry has the form %q", form)
			}

			r := cmdCtx.Renderer
			if r.IsJSON() {
				res := lookupResult{Form: form, Entries: make([]lookupEntry, len(entries))}
				for i, e := range entries {
					res.Entries[i] = lookupEntry{Base: e.Base, Category: e.Category.String()}
				}
				return r.JSON(res)
			}

			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{e.Base, e.Category.String()}
			}
			r.Table([]string{"BASE", "CATEGORY"}, rows)
			return nil
		},
	}
}
