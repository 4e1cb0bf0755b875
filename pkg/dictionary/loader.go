package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordspell/pkg/affix"
	"github.com/bastiangx/wordspell/pkg/phonetic"
	"github.com/charmbracelet/log"
)

type section int

const (
	sectionNone section = iota
	sectionCopyright
	sectionTry
	sectionReplace
	sectionPrefix
	sectionSuffix
	sectionPhonetic
	sectionWords
	sectionUnknown
)

var sectionNames = map[string]section{
	"copyright": sectionCopyright,
	"try":       sectionTry,
	"replace":   sectionReplace,
	"prefix":    sectionPrefix,
	"suffix":    sectionSuffix,
	"phonetic":  sectionPhonetic,
	"words":     sectionWords,
}

// loader carries parse state across lines.
type loader struct {
	dict    *Dictionary
	section section
	lineNo  int

	// open affix rule and the header name it was declared with
	rule    *affix.Rule
	ruleKey string

	phonetic []phonetic.Rule
}

// Load parses a dictionary from r. Malformed content is skipped; the only
// error returned is a failure to read r.
func Load(r io.Reader) (*Dictionary, error) {
	l := &loader{dict: newDictionary()}

	// Lines have no length limit; only the reader itself can fail the load.
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			l.lineNo++
			l.handle(line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dictionary after line %d: %w", l.lineNo, err)
		}
	}

	l.finish()
	s := l.dict.stats
	log.Debugf("Dictionary loaded: %d words, %d prefix rules, %d suffix rules, %d phonetic rules, %d lines skipped",
		s.Words, s.PrefixRules, s.SuffixRules, s.PhoneticRules, s.SkippedLines)
	return l.dict, nil
}

func (l *loader) handle(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return
	}
	if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
		l.enter(line[1 : len(line)-1])
		return
	}

	switch l.section {
	case sectionTry:
		l.dict.tryChars += line
	case sectionReplace:
		l.dict.replaceChars = append(l.dict.replaceChars, line)
	case sectionPrefix:
		l.affixLine(line, affix.Prefix)
	case sectionSuffix:
		l.affixLine(line, affix.Suffix)
	case sectionPhonetic:
		l.phoneticLine(line)
	case sectionWords:
		l.wordLine(line)
	case sectionCopyright:
	default:
		l.skip("content outside a known section")
	}
}

func (l *loader) enter(name string) {
	s, ok := sectionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		log.Debugf("Line %d: unknown section [%s]", l.lineNo, name)
		s = sectionUnknown
	}
	l.section = s
	l.rule = nil
	l.ruleKey = ""
}

// affixLine handles "name flag placeholder" headers and "name strip add condition" entries.
func (l *loader) affixLine(line string, kind affix.Kind) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 3:
		name, _ := utf8.DecodeRuneInString(fields[0])
		l.rule = affix.NewRule(name, kind, fields[1] == "Y")
		l.ruleKey = fields[0]
		l.dict.setRule(l.rule)
	case 4:
		if l.rule == nil || fields[0] != l.ruleKey {
			l.skip("affix entry without a matching open rule")
			return
		}
		l.rule.Add(affix.NewEntry(emptyIfZero(fields[1]), emptyIfZero(fields[2]), fields[3]))
	default:
		l.skip("affix line with wrong field count")
	}
}

func (l *loader) phoneticLine(line string) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		l.skip("phonetic rule without a replacement")
		return
	}
	rule := phonetic.Compile(fields[0])
	rule.Replace = fields[1]
	l.phonetic = append(l.phonetic, rule)
}

func (l *loader) wordLine(line string) {
	parts := strings.SplitN(line, "/", 3)
	text := strings.TrimSpace(parts[0])
	if text == "" {
		l.skip("word entry without text")
		return
	}
	w := Word{Text: text}
	if len(parts) > 1 {
		w.AffixKeys = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		w.PhoneticCode = strings.TrimSpace(parts[2])
	}
	if _, dup := l.dict.words[text]; dup {
		l.dict.stats.DuplicateWords++
		log.Debugf("Line %d redefines word %q", l.lineNo, text)
	}
	// later entries replace earlier ones
	l.dict.words[text] = w
}

func (l *loader) skip(reason string) {
	l.dict.stats.SkippedLines++
	log.Debugf("Line %d skipped: %s", l.lineNo, reason)
}

func (l *loader) finish() {
	d := l.dict
	d.phonetic = phonetic.New(l.phonetic)

	d.stats.Words = len(d.words)
	d.stats.PrefixRules = len(d.prefixOrder)
	d.stats.SuffixRules = len(d.suffixOrder)
	for _, r := range d.prefixes {
		d.stats.PrefixEntries += len(r.Entries)
	}
	for _, r := range d.suffixes {
		d.stats.SuffixEntries += len(r.Entries)
	}
	d.stats.PhoneticRules = len(l.phonetic)
	d.stats.ReplacePairs = len(d.replaceChars)
}

// emptyIfZero maps the "0" placeholder of strip and add fields to the empty string.
func emptyIfZero(s string) string {
	if s == "0" {
		return ""
	}
	return s
}
