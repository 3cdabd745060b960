package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
)

type interrogativeJSON struct {
	Name                  string `json:"name"`
	Word                  string `json:"word"`
	Role                  string `json:"role"`
	YesNo                 bool   `json:"yes_no"`
	TargetsObject         bool   `json:"targets_object"`
	TargetsIndirectObject bool   `json:"targets_indirect_object"`
}

type classifyResult struct {
	Word string             `json:"word"`
	Type *interrogativeJSON `json:"type"`
}

func toInterrogativeJSON(it *core.InterrogativeType) *interrogativeJSON {
	if it == nil {
		return nil
	}
	return &interrogativeJSON{
		Name:                  it.Name,
		Word:                  it.Word,
		Role:                  it.Role.String(),
		YesNo:                 it.IsYesNo(),
		TargetsObject:         it.TargetsObjectRole(),
		TargetsIndirectObject: it.TargetsIndirectObjectRole(),
	}
}

// NewClassifyCommand creates the classify command.
func NewClassifyCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "classify [word]",
		Short: "Classify a question word",
		Long: `Classify a question word against the interrogative types of the
selected language. When several types share a word, the first declared
one wins.

Use --all to list the whole interrogative table instead.

Examples:
  nlg classify what
  nlg classify -l pt quem
  nlg classify --all`,
		Args: func(cmd *cobra.Command, args []string) error {
			if all {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			r := cmdCtx.Renderer

			if all {
				types := cmdCtx.Language.Interrogatives()
				if r.IsJSON() {
					out := make([]*interrogativeJSON, len(types))
					for i, it := range types {
						out[i] = toInterrogativeJSON(it)
					}
					return r.JSON(out)
				}
				rows := make([][]string, len(types))
				for i, it := range types {
					rows[i] = []string{it.Name, it.Word, it.Role.String(), strconv.FormatBool(it.IsYesNo())}
				}
				r.Table([]string{"NAME", "WORD", "ROLE", "YES/NO"}, rows)
				return nil
			}

			word := args[0]
			it := cmdCtx.Language.Classify(word)
			cmdCtx.Logger.Debug("classified question word", "language", cmdCtx.Language.Name(), "word", word, "type", it.String())

			if r.IsJSON() {
				return r.JSON(classifyResult{Word: word, Type: toInterrogativeJSON(it)})
			}
			if it == nil {
				return fmt.Errorf("%q is not a %s question word", word, cmdCtx.Language.Name())
			}
			r.Println(r.Styles().Bold.Render(it.Name))
			r.Printf("  role:            %s\n", it.Role)
			r.Printf("  object:          %t\n", it.TargetsObjectRole())
			r.Printf("  indirect object: %t\n", it.TargetsIndirectObjectRole())
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every interrogative type of the language")

	return cmd
}
