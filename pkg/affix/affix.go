package affix

import (
	"strings"
	"unicode/utf8"
)

// Kind tells whether a rule attaches at the start or the end of a word.
type Kind int

const (
	Prefix Kind = iota
	Suffix
)

func (k Kind) String() string {
	if k == Prefix {
		return "prefix"
	}
	return "suffix"
}

// Entry is one concrete transformation: remove Strip, then add Add, provided the
// base word passes Condition over its first (prefix) or last (suffix) ConditionCount characters.
type Entry struct {
	Add            string
	Strip          string
	Condition      Condition
	ConditionCount int

	// Source keeps the condition expression for diagnostics.
	Source string
}

// NewEntry compiles cond and returns the entry.
func NewEntry(strip, add, cond string) Entry {
	c, n := CompileCondition(cond)
	return Entry{
		Add:            add,
		Strip:          strip,
		Condition:      c,
		ConditionCount: n,
		Source:         cond,
	}
}

// Rule is a named, ordered set of entries.
type Rule struct {
	Name         rune
	Kind         Kind
	AllowCombine bool
	Entries      []Entry
}

// NewRule returns an empty rule.
func NewRule(name rune, kind Kind, combine bool) *Rule {
	return &Rule{Name: name, Kind: kind, AllowCombine: combine}
}

// Add appends an entry, keeping load order.
func (r *Rule) Add(e Entry) {
	r.Entries = append(r.Entries, e)
}

// ApplyPrefix returns word transformed by the first matching entry of r.
// The word comes back unchanged when no entry matches.
func ApplyPrefix(word string, r *Rule) string {
	if r == nil {
		return word
	}
	runes := []rune(word)
	for i := range r.Entries {
		e := &r.Entries[i]
		strip := utf8.RuneCountInString(e.Strip)
		if strip > len(runes) {
			continue
		}
		if !e.Condition.Match(runes, e.ConditionCount) {
			continue
		}
		return e.Add + string(runes[strip:])
	}
	return word
}

// ApplySuffix is the suffix counterpart of ApplyPrefix; the condition is tested
// against the trailing ConditionCount characters.
func ApplySuffix(word string, r *Rule) string {
	if r == nil {
		return word
	}
	runes := []rune(word)
	for i := range r.Entries {
		e := &r.Entries[i]
		strip := utf8.RuneCountInString(e.Strip)
		if strip > len(runes) || e.ConditionCount > len(runes) {
			continue
		}
		if !e.Condition.Match(runes[len(runes)-e.ConditionCount:], e.ConditionCount) {
			continue
		}
		return string(runes[:len(runes)-strip]) + e.Add
	}
	return word
}

// ReversePrefix undoes e on word. The reconstructed base must itself satisfy
// the entry's condition; otherwise word is returned unchanged.
func ReversePrefix(word string, e *Entry) string {
	runes := []rune(word)
	add := utf8.RuneCountInString(e.Add)
	tail := len(runes) - add
	if tail <= 0 || tail+utf8.RuneCountInString(e.Strip) < e.ConditionCount {
		return word
	}
	if !strings.HasPrefix(word, e.Add) {
		return word
	}
	candidate := e.Strip + string(runes[add:])
	if !e.Condition.Match([]rune(candidate), e.ConditionCount) {
		return word
	}
	return candidate
}

// ReverseSuffix undoes e on word, validating the trailing window of the
// reconstructed base.
func ReverseSuffix(word string, e *Entry) string {
	runes := []rune(word)
	add := utf8.RuneCountInString(e.Add)
	tail := len(runes) - add
	if tail <= 0 || tail+utf8.RuneCountInString(e.Strip) < e.ConditionCount {
		return word
	}
	if !strings.HasSuffix(word, e.Add) {
		return word
	}
	cand := append(runes[:tail:tail], []rune(e.Strip)...)
	if !e.Condition.Match(cand[len(cand)-e.ConditionCount:], e.ConditionCount) {
		return word
	}
	return string(cand)
}
