/*
Package dictionary loads sectioned affix dictionaries and answers word queries against them.

A dictionary text stream is split into bracket-tagged sections:

	[Copyright]   ignored
	[Try]         characters suggestion generators should try first
	[Replace]     common misspelling pairs, "from to"
	[Prefix]      "name Y/N x" opens a rule, "name strip add condition" adds an entry
	[Suffix]      same layout as [Prefix]
	[Phonetic]    "rule replacement"
	[Words]       "text/affix_keys/phonetic_code"

Loading is lenient: blank lines, unknown sections and malformed rule lines are skipped.
Only a read failure of the stream itself is returned as an error.

A loaded Dictionary is never modified, so any number of goroutines may query it at once.
Queries that produce diagnostic output, such as the possible base words of Check, return it
instead of storing it on the Dictionary.
*/
package dictionary

import (
	"sort"
	"strings"

	"github.com/bastiangx/wordspell/pkg/affix"
	"github.com/bastiangx/wordspell/pkg/phonetic"
	"golang.org/x/exp/maps"
)

// Word is a base word entry from the [Words] section.
type Word struct {
	Text string
	// AffixKeys names the prefix and suffix rules that apply to Text.
	AffixKeys string
	// PhoneticCode is an optional precomputed code.
	PhoneticCode string
}

// HasKey reports whether rule name k applies to the word.
func (w Word) HasKey(k rune) bool {
	return strings.ContainsRune(w.AffixKeys, k)
}

// Dictionary holds base words, affix rules and phonetic rules.
type Dictionary struct {
	words map[string]Word

	prefixes    map[rune]*affix.Rule
	suffixes    map[rune]*affix.Rule
	prefixOrder []rune
	suffixOrder []rune

	phonetic *phonetic.Transliterator

	tryChars     string
	replaceChars []string

	stats Stats
}

// Stats describes what a load produced.
type Stats struct {
	Words          int `msgpack:"words" json:"words"`
	PrefixRules    int `msgpack:"prefix_rules" json:"prefix_rules"`
	SuffixRules    int `msgpack:"suffix_rules" json:"suffix_rules"`
	PrefixEntries  int `msgpack:"prefix_entries" json:"prefix_entries"`
	SuffixEntries  int `msgpack:"suffix_entries" json:"suffix_entries"`
	PhoneticRules  int `msgpack:"phonetic_rules" json:"phonetic_rules"`
	ReplacePairs   int `msgpack:"replace_pairs" json:"replace_pairs"`
	SkippedLines   int `msgpack:"skipped_lines" json:"skipped_lines"`
	DuplicateWords int `msgpack:"duplicate_words" json:"duplicate_words"`
}

func newDictionary() *Dictionary {
	return &Dictionary{
		words:    make(map[string]Word),
		prefixes: make(map[rune]*affix.Rule),
		suffixes: make(map[rune]*affix.Rule),
		phonetic: phonetic.New(nil),
	}
}

// Word returns the base word stored under text, matched case-sensitively.
func (d *Dictionary) Word(text string) (Word, bool) {
	w, ok := d.words[text]
	return w, ok
}

// Words returns every base word text, sorted.
func (d *Dictionary) Words() []string {
	keys := maps.Keys(d.words)
	sort.Strings(keys)
	return keys
}

// Len returns the number of base words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// TryChars returns the [Try] hint characters.
func (d *Dictionary) TryChars() string {
	return d.tryChars
}

// ReplaceChars returns the [Replace] hint lines in load order.
func (d *Dictionary) ReplaceChars() []string {
	return append([]string(nil), d.replaceChars...)
}

// PrefixRules returns prefix rules in load order.
func (d *Dictionary) PrefixRules() []*affix.Rule {
	return d.rules(d.prefixOrder, d.prefixes)
}

// SuffixRules returns suffix rules in load order.
func (d *Dictionary) SuffixRules() []*affix.Rule {
	return d.rules(d.suffixOrder, d.suffixes)
}

func (d *Dictionary) rules(order []rune, table map[rune]*affix.Rule) []*affix.Rule {
	out := make([]*affix.Rule, 0, len(order))
	for _, name := range order {
		out = append(out, table[name])
	}
	return out
}

// PhoneticRules returns the phonetic rules in the order they apply.
func (d *Dictionary) PhoneticRules() []phonetic.Rule {
	return append([]phonetic.Rule(nil), d.phonetic.Rules...)
}

// Stats returns load statistics.
func (d *Dictionary) Stats() Stats {
	return d.stats
}

// setRule stores r, keeping the position of an earlier rule with the same name.
func (d *Dictionary) setRule(r *affix.Rule) {
	table, order := d.suffixes, &d.suffixOrder
	if r.Kind == affix.Prefix {
		table, order = d.prefixes, &d.prefixOrder
	}
	if _, exists := table[r.Name]; !exists {
		*order = append(*order, r.Name)
	}
	table[r.Name] = r
}
