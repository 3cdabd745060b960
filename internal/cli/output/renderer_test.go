package output_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/internal/cli/output"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/internal/cli/testutil"
)

func TestRenderer_PlainWhenNotTTY(t *testing.T) {
	r := testutil.NewTestRenderer(output.ModeText, false)

	r.Println(r.Styles().Header1.Render("Variants"))
	r.Table([]string{"form"}, [][]string{{"cried"}})
	r.Warnf("no entry for %q", "xyzzy")

	testutil.AssertNoANSI(t, r.Output())
	testutil.AssertNoANSI(t, r.ErrorOutput())
	assert.Contains(t, r.Output(), "Variants")
	assert.Contains(t, r.Output(), "cried")
	assert.Contains(t, r.ErrorOutput(), `no entry for "xyzzy"`)
}

func TestRenderer_JSONMode(t *testing.T) {
	r := testutil.NewTestRenderer(output.ModeJSON, true)
	require.True(t, r.IsJSON())

	require.NoError(t, r.JSON(map[string][]string{"forms": {"a", "b"}}))
	assert.Equal(t, "{\n  \"forms\": [\n    \"a\",\n    \"b\"\n  ]\n}\n", r.Output())
	assert.Empty(t, r.ErrorOutput())
}
