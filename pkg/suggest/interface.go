// Package suggest ranks corrections for misspelled words and completes prefixes against a loaded dictionary.
package suggest

import "github.com/bastiangx/wordspell/pkg/dictionary"

// ISuggester is what the server and the CLI need from a suggestion engine.
type ISuggester interface {
	// Check reports whether word is known, with the stems examined
	Check(word string) dictionary.CheckResult

	// Suggest returns ranked corrections for word with a limit
	Suggest(word string, limit int) []Candidate

	// Complete returns known forms extending prefix with a limit
	Complete(prefix string, limit int) []string

	// Dictionary returns the dictionary behind the engine
	Dictionary() *dictionary.Dictionary

	// Stats returns index and cache statistics
	Stats() map[string]int
}

var _ ISuggester = (*Suggester)(nil)
