package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
)

// Modifier positions accepted by --position.
const (
	positionPre  = "pre"
	positionPost = "post"
)

type formatResult struct {
	Language string `json:"language"`
	Position string `json:"position"`
	Text     string `json:"text"`
}

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	var (
		position   string
		appositive []int
		lists      []int
	)

	cmd := &cobra.Command{
		Use:   "format <child>...",
		Short: "Punctuate a run of realised modifiers",
		Long: `Punctuate already-realised phrase children the way the selected
language formats premodifiers or postmodifiers.

Children are numbered from 1. Mark appositive children with --appositive
and children that are themselves lists with --list.

Examples:
  nlg format big old red --position post      # big, old and red
  nlg format John "my friend" --appositive 2 --position post
  nlg format -l pt grande velho bonito        # grande, velho e bonito`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			children, err := buildChildren(args, appositive, lists)
			if err != nil {
				return err
			}

			var text string
			switch position {
			case positionPre:
				text = cmdCtx.Language.FormatPremodifiers(children)
			case positionPost:
				text = cmdCtx.Language.FormatPostmodifiers(children)
			default:
				return fmt.Errorf("unknown position %q, must be %q or %q", position, positionPre, positionPost)
			}

			r := cmdCtx.Renderer
			if r.IsJSON() {
				return r.JSON(formatResult{Language: cmdCtx.Language.Name(), Position: position, Text: text})
			}
			r.Println(text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&position, "position", "p", positionPre, "Modifier position (pre|post)")
	cmd.Flags().IntSliceVar(&appositive, "appositive", nil, "Numbers of the appositive children")
	cmd.Flags().IntSliceVar(&lists, "list", nil, "Numbers of the children that are lists")
	_ = cmd.RegisterFlagCompletionFunc("position", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{positionPre, positionPost}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// buildChildren turns arguments into elements, marking the 1-based
// positions given in appositive and lists.
func buildChildren(args []string, appositive, lists []int) ([]core.Element, error) {
	for _, n := range slices.Concat(appositive, lists) {
		if n < 1 || n > len(args) {
			return nil, fmt.Errorf("child number %d out of range 1..%d", n, len(args))
		}
	}

	children := make([]core.Element, len(args))
	for i, text := range args {
		children[i] = core.Realised{
			Text:    text,
			Apposed: slices.Contains(appositive, i+1),
			List:    slices.Contains(lists, i+1),
		}
	}
	return children, nil
}
