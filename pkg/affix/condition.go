/*
Package affix compiles positional conditions and applies or reverses prefix and suffix rules
from Hunspell/MySpell-style affix dictionaries.

A condition is a short expression such as "[^aeiou]y" describing which characters are legal at
each position of the tested region of a base word. It is compiled once into a Condition: a
table indexed by character code where bit i of an entry means "this character is allowed at
relative position i". Testing a position is then a single array lookup.

Rules are ordered lists of entries. Both application and reversal scan entries in load order and
stop at the first one that matches, so the source order of a dictionary is significant.
*/
package affix

// MaxPositions is the number of positions a Condition can describe.
const MaxPositions = 64

// Condition maps a character code (0-255) to the set of positions it may occupy.
type Condition [256]uint64

const allPositions = ^uint64(0)

// CompileCondition turns a condition expression into a Condition and the number of
// positions it covers. A lone "." matches every word and covers zero positions.
//
// Unbalanced brackets are not reported; an unterminated class simply never completes
// its position.
func CompileCondition(expr string) (Condition, int) {
	var cond Condition
	if expr == "." {
		return cond, 0
	}

	pos := 0
	inClass := false
	negated := false
	var members []rune

	for _, r := range expr {
		switch {
		case r == '[' && !inClass:
			inClass = true
			negated = false
			members = members[:0]
		case r == '^' && inClass && len(members) == 0 && !negated:
			negated = true
		case r == ']' && inClass:
			if negated {
				cond.setAll(pos)
				for _, m := range members {
					cond.clear(m, pos)
				}
			} else {
				for _, m := range members {
					cond.set(m, pos)
				}
			}
			inClass = false
			pos++
		case inClass:
			members = append(members, r)
		case r == '.':
			cond.setAll(pos)
			pos++
		default:
			cond.set(r, pos)
			pos++
		}
	}
	return cond, pos
}

func (c *Condition) set(r rune, pos int) {
	if r < 0 || int(r) >= len(c) || pos >= MaxPositions {
		return
	}
	c[r] |= 1 << uint(pos)
}

func (c *Condition) clear(r rune, pos int) {
	if r < 0 || int(r) >= len(c) || pos >= MaxPositions {
		return
	}
	c[r] &^= 1 << uint(pos)
}

func (c *Condition) setAll(pos int) {
	if pos >= MaxPositions {
		return
	}
	for i := range c {
		c[i] |= 1 << uint(pos)
	}
}

// Allows reports whether r may appear at position pos.
// Character codes outside the table never match.
func (c *Condition) Allows(r rune, pos int) bool {
	if r < 0 || int(r) >= len(c) || pos < 0 || pos >= MaxPositions {
		return false
	}
	return c[r]&(1<<uint(pos)) != 0
}

// Match reports whether the first count runes each pass their position.
// A window shorter than count never matches.
func (c *Condition) Match(window []rune, count int) bool {
	if len(window) < count {
		return false
	}
	for i := 0; i < count; i++ {
		if !c.Allows(window[i], i) {
			return false
		}
	}
	return true
}

// positions lists the positions r is allowed at, lowest first.
func (c *Condition) positions(r rune) []int {
	if r < 0 || int(r) >= len(c) {
		return nil
	}
	var out []int
	for i := 0; i < MaxPositions; i++ {
		if c[r]&(1<<uint(i)) != 0 {
			out = append(out, i)
		}
	}
	return out
}
