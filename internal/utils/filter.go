package utils

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrEmptyWord is returned for a missing or blank word.
	ErrEmptyWord = errors.New("word is empty")
	// ErrWordTooLong is returned when a word exceeds the configured length.
	ErrWordTooLong = errors.New("word too long")
	// ErrInvalidWord is returned for words containing spaces or control characters.
	ErrInvalidWord = errors.New("word contains invalid characters")
)

// IsSeparator checks if a rune may join the parts of a compound word
func IsSeparator(r rune) bool {
	return r == '-' || r == '\'' || r == '.' || r == '’'
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars checks if a string contains characters that cannot appear in a word
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r) && !IsSeparator(r) {
			return true
		}
	}
	return false
}

// IsRepetitive checks if a string is a single character repeated 3+ times (e.g. "aaa")
func IsRepetitive(s string) bool {
	if utf8.RuneCountInString(s) <= 2 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	for _, r := range s {
		if r != first {
			return false
		}
	}
	return true
}

// ValidateWord checks a single query word. maxLen counts characters; zero disables the check.
func ValidateWord(word string, maxLen int) error {
	if word == "" {
		return ErrEmptyWord
	}
	if !utf8.ValidString(word) {
		return ErrInvalidWord
	}
	if n := utf8.RuneCountInString(word); maxLen > 0 && n > maxLen {
		return fmt.Errorf("%w: %d characters, max %d", ErrWordTooLong, n, maxLen)
	}
	for _, r := range word {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return ErrInvalidWord
		}
	}
	return nil
}

// IsValidPrefix checks if a prefix is worth completing.
// Returns false for strings that are only numbers, contain special characters, or are repetitive
func IsValidPrefix(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	if ContainsSpecialChars(s) {
		return false
	}
	if IsRepetitive(s) {
		return false
	}
	return true
}
