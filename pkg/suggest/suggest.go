package suggest

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/adrg/strutil/metrics"
	"github.com/bastiangx/wordspell/internal/utils"
	"github.com/bastiangx/wordspell/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// fallbackTryChars is used when a dictionary carries no [Try] section.
const fallbackTryChars = "etaoinshrdlcumwfgypbvkjxqz"

// Source tells which generator produced a candidate. Lower values rank first
// among candidates at the same distance.
type Source int

const (
	SourceReplace Source = iota
	SourceEdit
	SourcePhonetic
)

func (s Source) String() string {
	switch s {
	case SourceReplace:
		return "replace"
	case SourceEdit:
		return "edit"
	case SourcePhonetic:
		return "phonetic"
	}
	return "unknown"
}

// Candidate is a ranked correction.
type Candidate struct {
	Word         string `msgpack:"w" json:"word"`
	EditDistance int    `msgpack:"d" json:"distance"`
	Source       Source `msgpack:"s" json:"source"`
}

// Options tune candidate generation.
type Options struct {
	// MaxDistance drops candidates further than this many edits from the input.
	MaxDistance int
	// MaxCandidates bounds the generated candidates checked against the dictionary per query.
	MaxCandidates int
	// Phonetic enables sound-alike candidates.
	Phonetic bool
	// CacheSize is the number of queries kept; zero disables caching.
	CacheSize int
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		MaxDistance:   3,
		MaxCandidates: 5000,
		Phonetic:      true,
		CacheSize:     1024,
	}
}

// Suggester produces corrections for words a Dictionary does not contain.
// It is safe for concurrent use.
type Suggester struct {
	dict      *dictionary.Dictionary
	opts      Options
	tryChars  []rune
	replace   [][2]string
	byCode    map[string][]string
	lev       *metrics.Levenshtein
	completer *Completer
	cache     *Cache
}

// New indexes d for suggestions and completion.
func New(d *dictionary.Dictionary, opts Options) *Suggester {
	s := &Suggester{
		dict:      d,
		opts:      opts,
		tryChars:  uniqueRunes(d.TryChars()),
		lev:       metrics.NewLevenshtein(),
		completer: NewCompleter(d),
	}
	if len(s.tryChars) == 0 {
		s.tryChars = []rune(fallbackTryChars)
	}
	for _, line := range d.ReplaceChars() {
		f := strings.Fields(line)
		if len(f) != 2 {
			log.Debugf("Ignoring replace pair %q", line)
			continue
		}
		s.replace = append(s.replace, [2]string{f[0], f[1]})
	}
	if opts.Phonetic && len(d.PhoneticRules()) > 0 {
		s.byCode = make(map[string][]string)
		for _, text := range d.Words() {
			w, _ := d.Word(text)
			if code := d.WordCode(w); code != "" {
				s.byCode[code] = append(s.byCode[code], text)
			}
		}
	}
	if opts.CacheSize > 0 {
		s.cache = NewCache(opts.CacheSize)
	}
	return s
}

// Dictionary returns the dictionary the suggester was built from.
func (s *Suggester) Dictionary() *dictionary.Dictionary {
	return s.dict
}

// Check reports whether word is known, with the stems examined.
func (s *Suggester) Check(word string) dictionary.CheckResult {
	return s.dict.Check(word)
}

// Suggest returns up to limit known words close to word, best first.
// A limit of zero or less returns every candidate.
func (s *Suggester) Suggest(word string, limit int) []Candidate {
	if word == "" {
		return nil
	}
	var all []Candidate
	if cached, ok := s.cache.Get(word); ok {
		all = cached
	} else {
		all = s.rank(word, s.generate(word))
		s.cache.Put(word, all)
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return append([]Candidate(nil), all...)
}

// Complete returns up to limit known forms starting with prefix.
func (s *Suggester) Complete(prefix string, limit int) []string {
	return s.completer.Complete(prefix, limit)
}

// Stats reports index and cache sizes.
func (s *Suggester) Stats() map[string]int {
	stats := map[string]int{
		"tryChars":       len(s.tryChars),
		"replacePairs":   len(s.replace),
		"phoneticCodes":  len(s.byCode),
		"completionKeys": s.completer.Len(),
	}
	for k, v := range s.cache.Stats() {
		stats[k] = v
	}
	return stats
}

// generate collects candidate spellings keyed by word, keeping the best source for each.
func (s *Suggester) generate(word string) map[string]Source {
	found := make(map[string]Source)
	checked := make(map[string]bool)
	budget := s.opts.MaxCandidates
	if budget <= 0 {
		budget = DefaultOptions().MaxCandidates
	}
	add := func(cand string, src Source) {
		if cand == word || cand == "" {
			return
		}
		if prev, ok := found[cand]; ok {
			if src < prev {
				found[cand] = src
			}
			return
		}
		if checked[cand] || budget <= 0 {
			return
		}
		checked[cand] = true
		budget--
		if s.dict.Contains(cand) {
			found[cand] = src
		}
	}

	for _, pair := range s.replace {
		from, to := pair[0], pair[1]
		for i := 0; ; {
			j := strings.Index(word[i:], from)
			if j < 0 {
				break
			}
			at := i + j
			add(word[:at]+to+word[at+len(from):], SourceReplace)
			i = at + len(from)
		}
	}

	for _, cand := range edits(word, s.tryChars) {
		add(cand, SourceEdit)
	}

	if s.byCode != nil {
		for _, w := range s.byCode[s.dict.PhoneticCode(word)] {
			add(w, SourcePhonetic)
		}
	}
	return found
}

// rank orders candidates by edit distance, then source, then spelling.
func (s *Suggester) rank(word string, found map[string]Source) []Candidate {
	filter := utils.NewSuggestionFilter()
	lower := strings.ToLower(word)

	out := make([]Candidate, 0, len(found))
	for cand, src := range found {
		dist := s.lev.Distance(lower, strings.ToLower(cand))
		if s.opts.MaxDistance > 0 && dist > s.opts.MaxDistance {
			continue
		}
		out = append(out, Candidate{Word: cand, EditDistance: dist, Source: src})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.EditDistance != b.EditDistance {
			return a.EditDistance < b.EditDistance
		}
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		return a.Word < b.Word
	})

	// drop case variants of an earlier candidate
	kept := out[:0]
	for _, c := range out {
		if filter.ShouldInclude(c.Word) {
			kept = append(kept, c)
		}
	}
	return kept
}

// edits returns every string one delete, transpose, replace or insert away from word.
// Replacements and insertions draw from chars.
func edits(word string, chars []rune) []string {
	runes := []rune(word)
	n := len(runes)
	out := make([]string, 0, n*(2*len(chars)+2)+len(chars))

	for i := 0; i < n; i++ {
		out = append(out, string(runes[:i])+string(runes[i+1:]))
	}
	for i := 0; i+1 < n; i++ {
		if runes[i] == runes[i+1] {
			continue
		}
		t := append([]rune(nil), runes...)
		t[i], t[i+1] = t[i+1], t[i]
		out = append(out, string(t))
	}
	for i := 0; i < n; i++ {
		for _, c := range chars {
			if c == runes[i] {
				continue
			}
			out = append(out, string(runes[:i])+string(c)+string(runes[i+1:]))
		}
	}
	for i := 0; i <= n; i++ {
		for _, c := range chars {
			out = append(out, string(runes[:i])+string(c)+string(runes[i:]))
		}
	}
	return out
}

func uniqueRunes(s string) []rune {
	seen := make(map[rune]bool, utf8.RuneCountInString(s))
	var out []rune
	for _, r := range s {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}
