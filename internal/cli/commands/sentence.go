package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"
)

type sentenceResult struct {
	Language      string `json:"language"`
	Interrogative string `json:"interrogative,omitempty"`
	Text          string `json:"text"`
}

// NewSentenceCommand creates the sentence command.
func NewSentenceCommand() *cobra.Command {
	var question string

	cmd := &cobra.Command{
		Use:   "sentence <text>...",
		Short: "Finish a realised clause as a sentence",
		Long: `Capitalise a realised clause and add its terminal punctuation.

Pass --question with an interrogative type name (WHAT_OBJECT) or a question
word (what) to end the sentence with a question mark.

Examples:
  nlg sentence the dog barked           # The dog barked.
  nlg sentence who saw the dog --question who
  nlg sentence -l pt ônibus chegou      # Ônibus chegou.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			var it *core.InterrogativeType
			if question != "" {
				it, err = resolveInterrogative(cmdCtx.Language, question)
				if err != nil {
					return err
				}
			}

			text := cmdCtx.Language.Sentence(strings.Join(args, " "), it)

			r := cmdCtx.Renderer
			if r.IsJSON() {
				res := sentenceResult{Language: cmdCtx.Language.Name(), Text: text}
				if it != nil {
					res.Interrogative = it.Name
				}
				return r.JSON(res)
			}
			r.Println(text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&question, "question", "q", "", "Interrogative type name or question word")

	return cmd
}

// resolveInterrogative accepts a member name or a question word.
func resolveInterrogative(lang *language.Language, s string) (*core.InterrogativeType, error) {
	if it, ok := lang.Interrogative(strings.ToUpper(s)); ok {
		return it, nil
	}
	if it := lang.Classify(s); it != nil {
		return it, nil
	}
	return nil, fmt.Errorf("unknown %s interrogative %q\nHint: run 'nlg classify --all' to list them", lang.Name(), s)
}
