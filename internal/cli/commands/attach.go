package commands

import (
	"github.com/spf13/cobra"
)

type attachResult struct {
	Language string `json:"language"`
	Base     string `json:"base"`
	Suffix   string `json:"suffix"`
	Form     string `json:"form"`
}

// NewAttachCommand creates the attach command.
func NewAttachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attach <base> <suffix>",
		Short: "Attach a suffix to a base form",
		Long: `Attach a suffix to a base form using the orthographic rules of the
selected language.

Examples:
  nlg attach cry ed           # cried
  nlg attach -l pt falar ado  # falado
  nlg attach watch s          # watches`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			base, suffix := args[0], args[1]
			form := cmdCtx.Language.Attach(base, suffix)
			cmdCtx.Logger.Debug("attached suffix", "language", cmdCtx.Language.Name(), "base", base, "suffix", suffix, "form", form)

			r := cmdCtx.Renderer
			if r.IsJSON() {
				return r.JSON(attachResult{
					Language: cmdCtx.Language.Name(),
					Base:     base,
					Suffix:   suffix,
					Form:     form,
				})
			}
			r.Println(form)
			return nil
		},
	}
}
