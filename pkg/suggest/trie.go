package suggest

import (
	"sort"
	"strings"
	"unicode"

	"github.com/bastiangx/wordspell/internal/utils"
	"github.com/bastiangx/wordspell/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Completer answers prefix queries over every base word of a dictionary and
// every form its affix rules generate. Keys are lower-cased; items hold the stored spelling.
type Completer struct {
	trie *patricia.Trie
	keys int
}

// NewCompleter indexes d. The first spelling seen for a lower-cased key wins.
func NewCompleter(d *dictionary.Dictionary) *Completer {
	c := &Completer{trie: patricia.NewTrie()}
	for _, text := range d.Words() {
		for _, form := range d.ExpandText(text) {
			if c.trie.Insert(patricia.Prefix(strings.ToLower(form)), form) {
				c.keys++
			}
		}
	}
	log.Debugf("Completion trie built with %d keys", c.keys)
	return c
}

// Len returns the number of distinct keys.
func (c *Completer) Len() int {
	return c.keys
}

// Complete returns up to limit words extending prefix, shortest first.
// The prefix itself is not returned, and capital letters typed in the prefix
// carry over to the matching positions of each result.
func (c *Completer) Complete(prefix string, limit int) []string {
	if c == nil || prefix == "" {
		return nil
	}
	lowerPrefix := strings.ToLower(prefix)
	capitalPositions := utils.CapitalPositions(prefix)

	var words []string
	err := c.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		if string(p) == lowerPrefix {
			return nil
		}
		word, ok := item.(string)
		if !ok {
			log.Errorf("Unknown item type: %T for key %s", item, p)
			return nil
		}
		words = append(words, ApplyCapitalization(word, capitalPositions))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) < len(words[j])
		}
		return words[i] < words[j]
	})
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}

// ApplyCapitalization upper-cases the runes of word at the positions marked in capitalPositions.
func ApplyCapitalization(word string, capitalPositions []bool) string {
	if len(capitalPositions) == 0 {
		return word
	}

	wordRunes := []rune(word)
	for i := 0; i < len(wordRunes) && i < len(capitalPositions); i++ {
		if capitalPositions[i] {
			wordRunes[i] = unicode.ToUpper(wordRunes[i])
		}
	}
	return string(wordRunes)
}
