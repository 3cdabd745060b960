package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/internal/cli/config"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/internal/cli/testutil"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/internal/loader"
	logtest "github.com/hsteffens/SimpleNLG-EnPt-sub001/internal/testutil"

	_ "github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/languages/english"
	_ "github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/languages/portuguese"
)

func testConfig(lang string) *config.Config {
	return &config.Config{
		Language: lang,
		LogLevel: config.DefaultLogLevel,
		Output:   config.OutputText,
	}
}

// execute runs cmd with cfg in its context and returns stdout.
func execute(t *testing.T, cfg *config.Config, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	ctx := config.WithLogger(config.WithConfig(context.Background(), cfg), logtest.NewTestLogger(t))
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewAttachCommand(), "attach <base> <suffix>", nil},
		{NewVariantsCommand(), "variants <base>", []string{"category"}},
		{NewLookupCommand(), "lookup <form>", nil},
		{NewClassifyCommand(), "classify [word]", []string{"all"}},
		{NewFormatCommand(), "format <child>...", []string{"position", "appositive", "list"}},
		{NewSentenceCommand(), "sentence <text>...", []string{"question"}},
		{NewLanguagesCommand(), "languages", nil},
		{NewConvertCommand(), "convert <input> <output.db>", nil},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short)
			for _, name := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(name), "flag %s should exist", name)
			}
		})
	}
}

func TestVariantsCommand_DefaultCategory(t *testing.T) {
	cmd := NewVariantsCommand()
	flag := cmd.Flags().Lookup("category")
	require.NotNil(t, flag)
	assert.Equal(t, "noun", flag.DefValue)
	assert.Equal(t, "c", flag.Shorthand)
}

func TestAttachCommand(t *testing.T) {
	tests := []struct {
		lang   string
		base   string
		suffix string
		want   string
	}{
		{"english", "cry", "ed", "cried\n"},
		{"english", "watch", "s", "watches\n"},
		{"en-GB", "like", "ing", "liking\n"},
		{"pt", "falar", "ado", "falado\n"},
		{"portuguese", "limão", "s", "limões\n"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.base, func(t *testing.T) {
			out, err := execute(t, testConfig(tt.lang), NewAttachCommand(), tt.base, tt.suffix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestAttachCommand_JSON(t *testing.T) {
	cfg := testConfig("english")
	cfg.Output = config.OutputJSON

	out, err := execute(t, cfg, NewAttachCommand(), "happy", "er")
	require.NoError(t, err)

	var res attachResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, attachResult{Language: "english", Base: "happy", Suffix: "er", Form: "happier"}, res)
}

func TestAttachCommand_RequiresTwoArgs(t *testing.T) {
	_, err := execute(t, testConfig("english"), NewAttachCommand(), "cry")
	assert.Error(t, err)
}

func TestVariantsCommand(t *testing.T) {
	out, err := execute(t, testConfig("english"), NewVariantsCommand(), "cry", "--category", "verb")
	require.NoError(t, err)
	assert.Equal(t, "cry (verb)\n  cried\n  cries\n  cry\n  crying\n", out)
}

func TestVariantsCommand_BuiltinIrregular(t *testing.T) {
	cfg := testConfig("english")
	cfg.Output = config.OutputJSON

	out, err := execute(t, cfg, NewVariantsCommand(), "be", "-c", "verb")
	require.NoError(t, err)

	var res variantsResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "verb", res.Category)
	assert.Subset(t, res.Forms, []string{"be", "am", "is", "are", "was", "were", "been", "being"})
	assert.Subset(t, res.Forms, []string{"bed", "bes", "bing"}, "regular forms stay next to the irregular ones")
}

func TestVariantsCommand_WithLexicon(t *testing.T) {
	cfg := testConfig("english")
	cfg.Lexicon = testutil.SetupTestLexicon(t)
	cfg.Output = config.OutputJSON

	out, err := execute(t, cfg, NewVariantsCommand(), "run", "-c", "verb")
	require.NoError(t, err)

	var res variantsResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Contains(t, res.Forms, "ran")
	assert.Contains(t, res.Forms, "runs")
}

func TestVariantsCommand_UnknownCategory(t *testing.T) {
	_, err := execute(t, testConfig("english"), NewVariantsCommand(), "cry", "-c", "gerundive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestLookupCommand(t *testing.T) {
	cfg := testConfig("english")
	cfg.Lexicon = testutil.SetupTestLexicon(t)

	out, err := execute(t, cfg, NewLookupCommand(), "ran")
	require.NoError(t, err)
	testutil.AssertNoANSI(t, out)
	assert.Contains(t, out, "BASE")
	assert.Contains(t, out, "run")
	assert.Contains(t, out, "verb")
}

func TestLookupCommand_SharedForm(t *testing.T) {
	cfg := testConfig("english")
	cfg.Lexicon = testutil.SetupTestLexicon(t)
	cfg.Output = config.OutputJSON

	out, err := execute(t, cfg, NewLookupCommand(), "cries")
	require.NoError(t, err)

	var res lookupResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []lookupEntry{
		{Base: "cry", Category: "verb"},
		{Base: "cry", Category: "noun"},
	}, res.Entries)
}

func TestLookupCommand_Errors(t *testing.T) {
	t.Run("no lexicon", func(t *testing.T) {
		_, err := execute(t, testConfig("english"), NewLookupCommand(), "was")
		assert.ErrorIs(t, err, ErrNoLexicon)
	})

	t.Run("unknown form", func(t *testing.T) {
		cfg := testConfig("english")
		cfg.Lexicon = testutil.SetupTestLexicon(t)
		_, err := execute(t, cfg, NewLookupCommand(), "xyzzy")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no lexicon entry")
	})

	t.Run("language mismatch", func(t *testing.T) {
		cfg := testConfig("portuguese")
		cfg.Lexicon = testutil.SetupTestLexicon(t)
		_, err := execute(t, cfg, NewLookupCommand(), "ran")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load lexicon")
	})
}

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		lang string
		word string
		want string
	}{
		{"english", "what", "WHAT_OBJECT"},
		{"english", "Who", "WHO_INDIRECT_OBJECT"},
		{"english", "how", "HOW"},
		{"pt", "quem", "QUEM_OBJETO"},
		{"portuguese", "a quem", "QUEM_OBJETO_INDIRETO"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.word, func(t *testing.T) {
			cfg := testConfig(tt.lang)
			cfg.Output = config.OutputJSON

			out, err := execute(t, cfg, NewClassifyCommand(), tt.word)
			require.NoError(t, err)

			var res classifyResult
			require.NoError(t, json.Unmarshal([]byte(out), &res))
			require.NotNil(t, res.Type)
			assert.Equal(t, tt.want, res.Type.Name)
		})
	}
}

func TestClassifyCommand_Text(t *testing.T) {
	out, err := execute(t, testConfig("english"), NewClassifyCommand(), "who")
	require.NoError(t, err)
	assert.Contains(t, out, "WHO_INDIRECT_OBJECT")
	assert.Contains(t, out, "indirect object: true")
	assert.Contains(t, out, "object:          false")
}

func TestClassifyCommand_NoMatch(t *testing.T) {
	_, err := execute(t, testConfig("english"), NewClassifyCommand(), "banana")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a english question word")

	cfg := testConfig("english")
	cfg.Output = config.OutputJSON
	out, err := execute(t, cfg, NewClassifyCommand(), "banana")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": null`)
}

func TestClassifyCommand_All(t *testing.T) {
	out, err := execute(t, testConfig("english"), NewClassifyCommand(), "--all")
	require.NoError(t, err)
	for _, name := range []string{"HOW", "WHAT_OBJECT", "YES_NO", "HOW_PREDICATE"} {
		assert.Contains(t, out, name)
	}

	_, err = execute(t, testConfig("english"), NewClassifyCommand(), "--all", "what")
	assert.Error(t, err, "--all takes no word")
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		lang string
		args []string
		want string
	}{
		{"english postmodifier list", "english", []string{"big", "old", "red", "--position", "post"}, "big, old and red\n"},
		{"english two items", "english", []string{"A", "B", "-p", "post"}, "A, B\n"},
		{"english premodifier run", "english", []string{"big", "old"}, "big old\n"},
		{"english appositive premodifiers", "english", []string{"my", "friend", "--appositive", "1,2"}, ", my friend, \n"},
		{"appositive inside a list", "english", []string{"A", "B", "C", "-p", "post", "--appositive", "2"}, "A, B, C\n"},
		{"portuguese premodifier list", "pt", []string{"grande", "velho", "bonito"}, "grande, velho e bonito\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, testConfig(tt.lang), NewFormatCommand(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFormatCommand_Errors(t *testing.T) {
	_, err := execute(t, testConfig("english"), NewFormatCommand(), "A", "--position", "mid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown position")

	_, err = execute(t, testConfig("english"), NewFormatCommand(), "A", "B", "--appositive", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestBuildChildren(t *testing.T) {
	children, err := buildChildren([]string{"a", "b", "c"}, []int{2}, []int{3})
	require.NoError(t, err)
	require.Len(t, children, 3)

	assert.False(t, children[0].Appositive())
	assert.True(t, children[1].Appositive())
	assert.True(t, children[2].IsList())
	assert.Equal(t, "c", children[2].Realisation())
}

func TestSentenceCommand(t *testing.T) {
	tests := []struct {
		name string
		lang string
		args []string
		want string
	}{
		{"statement", "english", []string{"the", "dog", "barked"}, "The dog barked.\n"},
		{"question by word", "english", []string{"who saw the dog", "--question", "who"}, "Who saw the dog?\n"},
		{"question by name", "english", []string{"is it raining", "-q", "YES_NO"}, "Is it raining?\n"},
		{"lower-case name", "english", []string{"what happened", "-q", "what_subject"}, "What happened?\n"},
		{"portuguese", "pt", []string{"ônibus", "chegou"}, "Ônibus chegou.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, testConfig(tt.lang), NewSentenceCommand(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSentenceCommand_UnknownQuestion(t *testing.T) {
	_, err := execute(t, testConfig("english"), NewSentenceCommand(), "hello", "-q", "WHENCE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown english interrogative")
}

func TestLanguagesCommand(t *testing.T) {
	cfg := testConfig("english")
	cfg.Output = config.OutputJSON

	out, err := execute(t, cfg, NewLanguagesCommand())
	require.NoError(t, err)

	var infos []languageInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))

	byName := make(map[string]languageInfo)
	defaults := 0
	for _, info := range infos {
		byName[info.Name] = info
		if info.Default {
			defaults++
		}
	}
	assert.Equal(t, "en", byName["english"].Tag)
	assert.Equal(t, "pt", byName["portuguese"].Tag)
	assert.Equal(t, 1, defaults)
}

func TestLanguagesCommand_Table(t *testing.T) {
	out, err := execute(t, testConfig("english"), NewLanguagesCommand())
	require.NoError(t, err)
	testutil.AssertNoANSI(t, out)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "portuguese")
}

func TestConvertCommand(t *testing.T) {
	in := testutil.SetupTestLexicon(t)
	outPath := filepath.Join(t.TempDir(), "lexicon.db")

	out, err := execute(t, testConfig("english"), NewConvertCommand(), in, outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Converted 6 entries and 1 irregulars")

	src, err := loader.LoadSQLite(context.Background(), outPath)
	require.NoError(t, err)
	assert.Equal(t, "english", src.Language)
	assert.Len(t, src.Entries, 6)
	require.Len(t, src.Irregulars, 1)
	assert.Equal(t, []string{"ran"}, src.Irregulars[0].Forms)
}

func TestConvertCommand_UnsupportedInput(t *testing.T) {
	_, err := execute(t, testConfig("english"), NewConvertCommand(), "lexicon.txt", filepath.Join(t.TempDir(), "out.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported lexicon format")
}

func TestNewCommandContext_UnknownLanguage(t *testing.T) {
	_, err := execute(t, testConfig("klingon"), NewAttachCommand(), "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available languages")
}

func TestVariantsCommand_WarnsOutsideLexicon(t *testing.T) {
	cfg := testConfig("english")
	cfg.Lexicon = testutil.SetupTestLexicon(t)

	cmd := NewVariantsCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"cat"})
	require.NoError(t, cmd.ExecuteContext(config.WithConfig(context.Background(), cfg)))

	assert.Contains(t, out.String(), "cats")
	assert.Contains(t, errOut.String(), "cat (noun) is not in")
}
