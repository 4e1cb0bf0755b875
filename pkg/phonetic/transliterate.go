package phonetic

import (
	"strings"
	"unicode"
)

// Transliterator turns words into phonetic codes using an ordered rule list.
// It holds no mutable state and is safe for concurrent use.
type Transliterator struct {
	Rules []Rule
}

// New returns a Transliterator over rules, which are applied in order.
func New(rules []Rule) *Transliterator {
	return &Transliterator{Rules: rules}
}

// Len returns the number of rules.
func (t *Transliterator) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rules)
}

// Encode returns the phonetic code of word. Matching is case-insensitive.
//
// Every outer step leaves the unprocessed remainder strictly shorter than it was,
// so Encode terminates for any input, including words no rule matches.
func (t *Transliterator) Encode(word string) string {
	rest := upper(word)
	if t == nil || len(t.Rules) == 0 {
		return ""
	}
	total := len(rest)

	var out strings.Builder
	for len(rest) > 0 {
		start := len(rest)
		beginning := start == total
		rewrites := 0

		for i := 0; i < len(t.Rules); i++ {
			rule := &t.Rules[i]
			if !rule.matches(rest, beginning) {
				continue
			}
			if rule.ReplaceMode {
				if rewrites >= len(t.Rules) {
					break
				}
				rewrites++
				rest = append([]rune(rule.output()), rest[rule.advance():]...)
				i = -1
				continue
			}
			out.WriteString(rule.output())
			rest = rest[rule.advance():]
			break
		}

		if len(rest) >= start {
			rest = rest[len(rest)-start+1:]
		}
	}
	return out.String()
}

func (r *Rule) matches(rest []rune, beginning bool) bool {
	if r.BeginningOnly && !beginning {
		return false
	}
	if r.EndOnly && r.ConditionCount != len(rest) {
		return false
	}
	return r.Condition.Match(rest, r.ConditionCount)
}

func (r *Rule) output() string {
	if r.Replace == NoOutput {
		return ""
	}
	return r.Replace
}

// upper folds to upper case, keeping characters whose upper form leaves the
// single-byte range as they are.
func upper(word string) []rune {
	out := make([]rune, 0, len(word))
	for _, r := range word {
		u := unicode.ToUpper(r)
		if r <= 0xFF && u > 0xFF {
			u = r
		}
		out = append(out, u)
	}
	return out
}
