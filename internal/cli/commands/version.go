package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"
)

// NewVersionCommand creates the version command. Besides the release it
// reports which realisation languages are compiled into the binary.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the release and installed languages",
		Long: `Print the nlg release followed by the realisation languages built
into this binary. The default language is marked with "*".`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "nlg v%s\n", version)
			_, _ = fmt.Fprintf(out, "languages: %s\n", installedLanguages())
		},
	}
}

// installedLanguages lists the registered languages, marking the default.
func installedLanguages() string {
	names := language.List()
	if len(names) == 0 {
		return "none"
	}
	def := ""
	if l := language.Default(); l != nil {
		def = l.Name()
	}
	for i, name := range names {
		if strings.EqualFold(name, def) {
			names[i] = name + "*"
		}
	}
	return strings.Join(names, ", ")
}
