package commands

import (
	"github.com/spf13/cobra"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"
)

type languageInfo struct {
	Name    string `json:"name"`
	Tag     string `json:"tag"`
	Default bool   `json:"default"`
}

// NewLanguagesCommand creates the languages command.
func NewLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the registered languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			var defaultName string
			if def := language.Default(); def != nil {
				defaultName = def.Name()
			}

			var infos []languageInfo
			for _, name := range language.List() {
				l, ok := language.Get(name)
				if !ok {
					continue
				}
				infos = append(infos, languageInfo{
					Name:    l.Name(),
					Tag:     l.Tag().String(),
					Default: l.Name() == defaultName,
				})
			}

			r := cmdCtx.Renderer
			if r.IsJSON() {
				return r.JSON(infos)
			}

			rows := make([][]string, len(infos))
			for i, info := range infos {
				def := ""
				if info.Default {
					def = "*"
				}
				rows[i] = []string{info.Name, r.Styles().Muted.Render(info.Tag), def}
			}
			r.Table([]string{"NAME", "TAG", "DEFAULT"}, rows)
			return nil
		},
	}
}
