package utils

import (
	"unicode"
)

// CapitalPositions marks which characters of s are upper case, by character index.
// It returns nil when s has no capitals.
func CapitalPositions(s string) []bool {
	var positions []bool
	i := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			if positions == nil {
				positions = make([]bool, 0, len(s))
			}
			for len(positions) < i {
				positions = append(positions, false)
			}
			positions = append(positions, true)
		}
		i++
	}
	return positions
}

// IsCapitalized reports whether the first character of s is upper case and no other is.
func IsCapitalized(s string) bool {
	p := CapitalPositions(s)
	return len(p) == 1 && p[0]
}
