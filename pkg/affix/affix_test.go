package affix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suffixRule() *Rule {
	r := NewRule('S', Suffix, false)
	r.Add(NewEntry("y", "ies", "[^aeiou]y"))
	r.Add(NewEntry("", "s", "[aeiou]y"))
	r.Add(NewEntry("", "es", "[sxz]"))
	r.Add(NewEntry("", "s", "[^sxzy]"))
	return r
}

func prefixRule() *Rule {
	r := NewRule('U', Prefix, true)
	r.Add(NewEntry("", "un", "."))
	return r
}

func TestApplySuffix(t *testing.T) {
	r := suffixRule()

	tests := []struct {
		word string
		want string
	}{
		{"fly", "flies"},
		{"day", "days"},
		{"box", "boxes"},
		{"cat", "cats"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplySuffix(tt.word, r))
		})
	}
}

func TestApplySuffixFirstMatchWins(t *testing.T) {
	r := NewRule('X', Suffix, false)
	r.Add(NewEntry("", "a", "t"))
	r.Add(NewEntry("", "b", "t"))
	assert.Equal(t, "cata", ApplySuffix("cat", r))
}

func TestApplyPrefix(t *testing.T) {
	r := prefixRule()
	assert.Equal(t, "undo", ApplyPrefix("do", r))
	assert.Equal(t, "un", ApplyPrefix("", r))

	guarded := NewRule('R', Prefix, false)
	guarded.Add(NewEntry("", "re", "[bcd]"))
	assert.Equal(t, "redo", ApplyPrefix("do", guarded))
	assert.Equal(t, "go", ApplyPrefix("go", guarded), "no entry matches")
	assert.Equal(t, "", ApplyPrefix("", guarded))
}

func TestApplyPrefixStrip(t *testing.T) {
	r := NewRule('I', Prefix, false)
	r.Add(NewEntry("e", "i", "e"))
	assert.Equal(t, "inable", ApplyPrefix("enable", r))
}

func TestReverseSuffix(t *testing.T) {
	r := suffixRule()

	assert.Equal(t, "fly", ReverseSuffix("flies", &r.Entries[0]))
	assert.Equal(t, "day", ReverseSuffix("days", &r.Entries[1]))
	assert.Equal(t, "box", ReverseSuffix("boxes", &r.Entries[2]))
	assert.Equal(t, "cat", ReverseSuffix("cats", &r.Entries[3]))
}

func TestReverseSuffixRevalidatesBase(t *testing.T) {
	r := suffixRule()
	// "plays" stripped by the -ies entry is impossible, and "pla" + "y" fails [^aeiou]y.
	assert.Equal(t, "plays", ReverseSuffix("plays", &r.Entries[0]))
	// "bus" ends in s, so the plain -s entry must not strip it back to "bu" unless "bu" ends legally.
	assert.Equal(t, "bu", ReverseSuffix("bus", &r.Entries[3]), "u passes [^sxzy]")
	assert.Equal(t, "kiss", ReverseSuffix("kiss", &r.Entries[3]), "kis ends in s and fails [^sxzy]")
}

func TestReverseEdgeCases(t *testing.T) {
	e := NewEntry("", "s", ".")
	assert.Equal(t, "s", ReverseSuffix("s", &e), "nothing left after removing the affix")
	assert.Equal(t, "", ReverseSuffix("", &e))

	p := NewEntry("", "un", ".")
	assert.Equal(t, "un", ReversePrefix("un", &p))
	assert.Equal(t, "do", ReversePrefix("undo", &p))
	assert.Equal(t, "redo", ReversePrefix("redo", &p))
	assert.Equal(t, "", ReversePrefix("", &p))
}

func TestReversePrefixCondition(t *testing.T) {
	e := NewEntry("", "re", "[bcd]")
	assert.Equal(t, "do", ReversePrefix("redo", &e))
	assert.Equal(t, "rego", ReversePrefix("rego", &e), "g is not a legal base start")

	strip := NewEntry("e", "i", "e")
	assert.Equal(t, "enable", ReversePrefix("inable", &strip))
}

func TestSuffixRoundTrip(t *testing.T) {
	r := suffixRule()
	words := []string{"fly", "day", "box", "cat", "buzz", "toy", "sky", "a", ""}

	for _, w := range words {
		for i := range r.Entries {
			single := NewRule('T', Suffix, false)
			single.Add(r.Entries[i])
			out := ApplySuffix(w, single)
			if out == w {
				continue
			}
			require.Equal(t, w, ReverseSuffix(out, &r.Entries[i]), "entry %d on %q", i, w)
		}
	}
}

func TestPrefixRoundTrip(t *testing.T) {
	entries := []Entry{
		NewEntry("", "un", "."),
		NewEntry("", "re", "[bcd]"),
		NewEntry("e", "i", "e"),
	}
	words := []string{"do", "bake", "enable", "go"}

	for _, w := range words {
		for i := range entries {
			single := NewRule('P', Prefix, false)
			single.Add(entries[i])
			out := ApplyPrefix(w, single)
			if out == w {
				continue
			}
			require.Equal(t, w, ReversePrefix(out, &entries[i]), "entry %d on %q", i, w)
		}
	}
}

func TestNilRule(t *testing.T) {
	assert.Equal(t, "word", ApplySuffix("word", nil))
	assert.Equal(t, "word", ApplyPrefix("word", nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "prefix", Prefix.String())
	assert.Equal(t, "suffix", Suffix.String())
}
