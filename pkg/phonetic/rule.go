// Package phonetic compiles ordered sound-alike rewrite rules and transliterates words into
// approximate phonetic codes used to rank spelling suggestions.
package phonetic

import "github.com/bastiangx/wordspell/pkg/affix"

// NoOutput is the replacement text meaning "emit nothing".
const NoOutput = "_"

// Rule is one compiled phonetic rewrite rule.
type Rule struct {
	Condition      affix.Condition
	ConditionCount int
	// ConsumeCount is how many matched characters are left in place after a match.
	ConsumeCount int
	// Priority is kept for display; rules apply in list order.
	Priority      int
	BeginningOnly bool
	EndOnly       bool
	ReplaceMode   bool
	Replace       string

	// Source is the rule text as written in the dictionary.
	Source string
}

// Compile parses rule text such as "AH(AEIOUY)-^" into a Rule.
// Replace is left empty; the loader fills it from the second field of the line.
//
//	(   opens a character class, ) closes it
//	^   match only at the beginning of the word
//	$   match only at the end of the word
//	-   one more character stays unconsumed
//	<   rewrite the word and rescan instead of emitting
//	0-9 priority, last digit wins
func Compile(text string) Rule {
	rule := Rule{Source: text}
	inClass := false

	for _, r := range text {
		switch {
		case r == '(':
			inClass = true
		case r == ')':
			if inClass {
				inClass = false
				rule.ConditionCount++
			}
		case r == '^':
			rule.BeginningOnly = true
		case r == '$':
			rule.EndOnly = true
		case r == '-':
			rule.ConsumeCount++
		case r == '<':
			rule.ReplaceMode = true
		case r >= '0' && r <= '9':
			rule.Priority = int(r - '0')
		default:
			rule.allow(r, rule.ConditionCount)
			if !inClass {
				rule.ConditionCount++
			}
		}
	}
	return rule
}

func (r *Rule) allow(c rune, pos int) {
	if c < 0 || int(c) >= len(r.Condition) || pos >= affix.MaxPositions {
		return
	}
	r.Condition[c] |= 1 << uint(pos)
}

// advance is how many characters a match moves past.
func (r *Rule) advance() int {
	n := r.ConditionCount - r.ConsumeCount
	if n < 0 {
		return 0
	}
	return n
}
