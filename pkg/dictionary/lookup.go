package dictionary

import (
	"strings"

	"github.com/bastiangx/wordspell/pkg/affix"
)

// CheckResult is the outcome of a containment query.
type CheckResult struct {
	Known bool `msgpack:"known" json:"known"`
	// PossibleBases lists every candidate stem considered while decomposing the word.
	// It is empty when the word is a base word itself.
	PossibleBases []string `msgpack:"bases,omitempty" json:"bases,omitempty"`
}

// Contains reports whether word, or its lower-cased form, is a base word or
// a legal inflection of one.
func (d *Dictionary) Contains(word string) bool {
	return d.Check(word).Known
}

// Check is Contains plus the candidate stems examined along the way.
func (d *Dictionary) Check(word string) CheckResult {
	lower := strings.ToLower(word)
	if _, ok := d.words[word]; ok {
		return CheckResult{Known: true}
	}
	if _, ok := d.words[lower]; ok {
		return CheckResult{Known: true}
	}

	known, bases := d.Decompose(word)
	if known || lower == word {
		return CheckResult{Known: known, PossibleBases: bases}
	}
	known, more := d.Decompose(lower)
	return CheckResult{Known: known, PossibleBases: append(bases, more...)}
}

// Decompose tries to reach a base word by stripping one suffix, then a prefix
// from the original word or from any stem produced by a combinable suffix rule.
// The returned slice lists the stems considered, in the order they were tried.
func (d *Dictionary) Decompose(word string) (bool, []string) {
	var bases []string
	candidates := []string{word}

	for _, name := range d.suffixOrder {
		rule := d.suffixes[name]
		for i := range rule.Entries {
			stem := affix.ReverseSuffix(word, &rule.Entries[i])
			if stem == word {
				continue
			}
			if d.accepts(stem, rule.Name) {
				return true, append(bases, stem)
			}
			if rule.AllowCombine {
				candidates = append(candidates, stem)
			} else {
				bases = append(bases, stem)
			}
		}
	}
	bases = append(bases, candidates...)

	for _, name := range d.prefixOrder {
		rule := d.prefixes[name]
		for i := range rule.Entries {
			for _, c := range candidates {
				stem := affix.ReversePrefix(c, &rule.Entries[i])
				if stem == c {
					continue
				}
				if d.accepts(stem, rule.Name) {
					return true, append(bases, stem)
				}
				bases = append(bases, stem)
			}
		}
	}
	return false, bases
}

// accepts reports whether stem is a base word carrying rule key k.
func (d *Dictionary) accepts(stem string, k rune) bool {
	w, ok := d.words[stem]
	return ok && w.HasKey(k)
}

// Expand returns the inflected forms of w followed by w itself.
//
// Each suffix key is applied to the base word once. Results of combinable suffix rules join
// the base word as inputs to every prefix key; prefixes never see the output of two suffixes.
// The result may contain duplicates and is not sorted.
func (d *Dictionary) Expand(w Word) []string {
	var out []string
	seeds := []string{w.Text}
	var prefixes []*affix.Rule

	for _, k := range w.AffixKeys {
		if rule, ok := d.suffixes[k]; ok {
			form := affix.ApplySuffix(w.Text, rule)
			if form != w.Text {
				if rule.AllowCombine {
					seeds = append(seeds, form)
				} else {
					out = append(out, form)
				}
			}
		}
		if rule, ok := d.prefixes[k]; ok {
			prefixes = append(prefixes, rule)
		}
	}

	for _, rule := range prefixes {
		for _, seed := range seeds {
			if form := affix.ApplyPrefix(seed, rule); form != seed {
				out = append(out, form)
			}
		}
	}
	return append(out, seeds...)
}

// ExpandText expands the base word stored under text. Unknown words expand to nothing.
func (d *Dictionary) ExpandText(text string) []string {
	w, ok := d.words[text]
	if !ok {
		return nil
	}
	return d.Expand(w)
}

// PhoneticCode transliterates word with the dictionary's phonetic rules.
// It returns "" when the dictionary has none.
func (d *Dictionary) PhoneticCode(word string) string {
	return d.phonetic.Encode(word)
}

// WordCode returns the precomputed code of a base word when present,
// otherwise its computed one.
func (d *Dictionary) WordCode(w Word) string {
	if w.PhoneticCode != "" {
		return w.PhoneticCode
	}
	return d.PhoneticCode(w.Text)
}
