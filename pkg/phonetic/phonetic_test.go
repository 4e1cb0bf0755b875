package phonetic

import (
	"strings"
	"testing"
)

func rule(text, replace string) Rule {
	r := Compile(text)
	r.Replace = replace
	return r
}

// letters returns one identity rule per upper-case ASCII letter.
func letters() []Rule {
	var out []Rule
	for c := 'A'; c <= 'Z'; c++ {
		out = append(out, rule(string(c), string(c)))
	}
	return out
}

func TestCompile(t *testing.T) {
	r := Compile("AH(AEIOUY)-^5")

	if r.ConditionCount != 3 {
		t.Errorf("ConditionCount = %d, want 3", r.ConditionCount)
	}
	if r.ConsumeCount != 1 {
		t.Errorf("ConsumeCount = %d, want 1", r.ConsumeCount)
	}
	if !r.BeginningOnly || r.EndOnly || r.ReplaceMode {
		t.Errorf("flags = begin:%v end:%v replace:%v", r.BeginningOnly, r.EndOnly, r.ReplaceMode)
	}
	if r.Priority != 5 {
		t.Errorf("Priority = %d, want 5", r.Priority)
	}
	if !r.Condition.Allows('A', 0) || !r.Condition.Allows('H', 1) {
		t.Error("literal positions not set")
	}
	for _, c := range "AEIOUY" {
		if !r.Condition.Allows(c, 2) {
			t.Errorf("class member %q missing at position 2", c)
		}
	}
	if r.Condition.Allows('B', 2) {
		t.Error("non-member allowed at position 2")
	}
}

func TestCompileFlags(t *testing.T) {
	tests := []struct {
		text     string
		count    int
		consume  int
		begin    bool
		end      bool
		replace  bool
		priority int
	}{
		{"AA", 2, 0, false, false, false, 0},
		{"E$", 1, 0, false, true, false, 0},
		{"PH<", 2, 0, false, false, true, 0},
		{"C(EIY)--", 2, 2, false, false, false, 0},
		{"GH12", 2, 0, false, false, false, 2},
		{"", 0, 0, false, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r := Compile(tt.text)
			if r.ConditionCount != tt.count || r.ConsumeCount != tt.consume ||
				r.BeginningOnly != tt.begin || r.EndOnly != tt.end ||
				r.ReplaceMode != tt.replace || r.Priority != tt.priority {
				t.Errorf("Compile(%q) = %+v", tt.text, r)
			}
		})
	}
}

func TestEncodeCollapse(t *testing.T) {
	tr := New([]Rule{
		rule("AA", "A"),
		rule("(ABCDEFGHIJKLMNOPQRSTUVWXYZ)", NoOutput),
	})
	if got := tr.Encode("AARDVARK"); got != "A" {
		t.Errorf("Encode(AARDVARK) = %q, want %q", got, "A")
	}

	full := New(append([]Rule{
		rule("AA", "A"),
		rule("A", NoOutput),
		rule("D", "T"),
		rule("V", "F"),
	}, letters()...))
	if got := full.Encode("AARDVARK"); got != "ARTFRK" {
		t.Errorf("Encode(AARDVARK) = %q, want %q", got, "ARTFRK")
	}
}

func TestEncodePositions(t *testing.T) {
	tr := New(append([]Rule{
		rule("KN^", "N"),
		rule("GH", NoOutput),
		rule("E$", NoOutput),
		rule("TH-", "0"),
		rule("PH<", "F"),
	}, letters()...))

	tests := []struct {
		name string
		word string
		want string
	}{
		{"beginning only at start", "KNIGHT", "NIT"},
		{"beginning only skipped later", "AKNA", "AKNA"},
		{"end only at end", "MAKE", "MAK"},
		{"end only skipped earlier", "EAT", "EAT"},
		{"unconsumed character", "THE", "0H"},
		{"rewrite then rescan", "PHONE", "FON"},
		{"lower case input", "knight", "NIT"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.Encode(tt.word); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestEncodeUnmatchedDropsCharacters(t *testing.T) {
	tr := New([]Rule{rule("B", "B")})
	if got := tr.Encode("ABCAB"); got != "BB" {
		t.Errorf("Encode = %q, want %q", got, "BB")
	}
	if got := tr.Encode("ÿé1"); got != "" {
		t.Errorf("Encode = %q, want empty", got)
	}
}

func TestEncodeRewriteTerminates(t *testing.T) {
	loop := New([]Rule{rule("A<", "A"), rule("B", "B")})
	if got := loop.Encode("AAB"); got != "B" {
		t.Errorf("Encode = %q, want %q", got, "B")
	}

	grow := New([]Rule{rule("B<", "BB")})
	if got := grow.Encode("BBBB"); got != "" {
		t.Errorf("Encode = %q, want empty", got)
	}
}

func TestEncodeNoRules(t *testing.T) {
	var nilTr *Transliterator
	if got := nilTr.Encode("word"); got != "" {
		t.Errorf("nil transliterator gave %q", got)
	}
	if got := New(nil).Encode("word"); got != "" {
		t.Errorf("empty transliterator gave %q", got)
	}
	if nilTr.Len() != 0 {
		t.Error("nil Len should be 0")
	}
}

func FuzzEncode(f *testing.F) {
	tr := New(append([]Rule{
		rule("AA", "A"),
		rule("PH<", "F"),
		rule("A<", "AA"),
		rule("E$", NoOutput),
		rule("", "X"),
	}, letters()...))

	f.Add("AARDVARK")
	f.Add("")
	f.Add("phone")
	f.Add("\xff\xfe")
	f.Add(strings.Repeat("A", 64))

	f.Fuzz(func(t *testing.T, word string) {
		// Must terminate without panicking on any input.
		_ = tr.Encode(word)
	})
}
