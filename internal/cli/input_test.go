package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/wordspell/pkg/dictionary"
	"github.com/bastiangx/wordspell/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDict = `[Try]
esianrtolcdugmphbyfvkwz
[Prefix]
U Y 1
U 0 un .
[Suffix]
D Y 1
D 0 d e
[Phonetic]
A A
B B
K K
E$ _
[Words]
bake/DU
`

func run(t *testing.T, input string, showBases bool) string {
	t.Helper()
	d, err := dictionary.Load(strings.NewReader(testDict))
	require.NoError(t, err)

	var out bytes.Buffer
	h := NewInputHandlerWithIO(suggest.Static(suggest.New(d, suggest.DefaultOptions())), 5, showBases, strings.NewReader(input), &out)
	require.NoError(t, h.Start())
	return out.String()
}

func TestCheckKnownAndUnknown(t *testing.T) {
	out := run(t, "unbaked\nbakr\n", true)

	assert.Contains(t, out, "known")
	assert.Contains(t, out, "stems tried:")
	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, "1. ")
	assert.Contains(t, out, "bake")
	assert.Contains(t, out, "edit")
}

func TestCheckHidesBases(t *testing.T) {
	out := run(t, "unbaked\n", false)
	assert.NotContains(t, out, "stems tried:")
}

func TestCommands(t *testing.T) {
	out := run(t, ":expand bake\n:phon bake\n:complete un\n:stats\n", true)

	assert.Contains(t, out, "4 forms of 'bake'")
	assert.Contains(t, out, "unbaked")
	assert.Contains(t, out, `"BAK"`)
	assert.Contains(t, out, "completions for 'un'")
	assert.Contains(t, out, "words=1")
	assert.Contains(t, out, "completionKeys")
}

func TestCommandErrors(t *testing.T) {
	out := run(t, ":expand\n:frobnicate\n:expand nothing\n:complete 123\n", true)

	assert.Contains(t, out, ":expand needs a word")
	assert.Contains(t, out, "Unknown command :frobnicate")
	assert.Contains(t, out, "'nothing' is not a base word")
	assert.Contains(t, out, "No completions for prefix: '123'")
}

func TestQuitStopsReading(t *testing.T) {
	out := run(t, ":quit\nbake\n", true)
	assert.NotContains(t, out, "known")
}

func TestLastLineWithoutNewline(t *testing.T) {
	out := run(t, "bake", true)
	assert.Contains(t, out, "known")
}
