// Package cli is an interactive shell over the spell checker, for debugging dictionaries in real time.
package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bastiangx/wordspell/internal/logger"
	"github.com/bastiangx/wordspell/internal/utils"
	"github.com/bastiangx/wordspell/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	wordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	knownStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	unknownStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

const help = `commands:
  <word>            check a word, list the stems tried and suggestions
  :expand <word>    list every form of a base word
  :phon <word>      show the phonetic code
  :complete <pfx>   complete a prefix
  :stats            dictionary statistics
  :help             this text
  :quit             exit`

// EngineSource hands out the engine to query.
type EngineSource interface {
	Engine() suggest.ISuggester
}

// InputHandler reads one command per line and prints the answer.
type InputHandler struct {
	source       EngineSource
	suggestLimit int
	showBases    bool
	reader       io.Reader
	out          *log.Logger
	requestCount int
}

// NewInputHandler reads from stdin and prints to stdout.
func NewInputHandler(source EngineSource, limit int, showBases bool) *InputHandler {
	return NewInputHandlerWithIO(source, limit, showBases, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO is NewInputHandler with custom streams.
func NewInputHandlerWithIO(source EngineSource, limit int, showBases bool, r io.Reader, w io.Writer) *InputHandler {
	return &InputHandler{
		source:       source,
		suggestLimit: limit,
		showBases:    showBases,
		reader:       r,
		out:          logger.NewWithWriter(w, ""),
	}
}

// Start runs the loop until :quit or the end of input.
func (h *InputHandler) Start() error {
	h.out.Print("WordSpell CLI")
	h.out.Print("type a word and press Enter (:help for commands, Ctrl+C to exit):")

	reader := bufio.NewReader(h.reader)
	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			if quit := h.handleInput(line); quit {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// handleInput runs one line and reports whether the user asked to quit.
func (h *InputHandler) handleInput(line string) bool {
	h.requestCount++
	engine := h.source.Engine()

	if !strings.HasPrefix(line, ":") {
		h.check(engine, line)
		return false
	}

	cmd, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "q", "quit", "exit":
		return true
	case "help", "h":
		h.out.Print(help)
	case "stats":
		h.stats(engine)
	case "expand", "phon", "complete":
		if err := utils.ValidateWord(arg, 0); err != nil {
			h.out.Errorf(":%s needs a word: %v", cmd, err)
			return false
		}
		switch cmd {
		case "expand":
			h.expand(engine, arg)
		case "phon":
			h.out.Printf("%s -> %q", wordStyle.Render(arg), engine.Dictionary().PhoneticCode(arg))
		case "complete":
			h.complete(engine, arg)
		}
	default:
		h.out.Errorf("Unknown command :%s (try :help)", cmd)
	}
	return false
}

func (h *InputHandler) check(engine suggest.ISuggester, word string) {
	if err := utils.ValidateWord(word, 0); err != nil {
		h.out.Errorf("Invalid word %q: %v", word, err)
		return
	}

	start := time.Now()
	res := engine.Check(word)
	log.Debugf("Took [ %v ] to check '%s'", time.Since(start), word)

	if res.Known {
		h.out.Printf("%s %s", knownStyle.Render("known"), wordStyle.Render(word))
	} else {
		h.out.Printf("%s %s", unknownStyle.Render("unknown"), wordStyle.Render(word))
	}
	if h.showBases && len(res.PossibleBases) > 0 {
		h.out.Printf("  stems tried: %s", strings.Join(res.PossibleBases, ", "))
	}
	if res.Known {
		return
	}

	cands := engine.Suggest(word, h.suggestLimit)
	if len(cands) == 0 {
		h.out.Warnf("No suggestions for '%s'", word)
		return
	}
	h.out.Printf("Found %d suggestions for '%s':", len(cands), word)
	for i, c := range cands {
		h.out.Printf("%2d. %-30s (distance: %d, %s)", i+1, wordStyle.Render(c.Word), c.EditDistance, c.Source)
	}
}

func (h *InputHandler) expand(engine suggest.ISuggester, word string) {
	forms := utils.Dedupe(engine.Dictionary().ExpandText(word))
	if len(forms) == 0 {
		h.out.Warnf("'%s' is not a base word", word)
		return
	}
	h.out.Printf("%d forms of '%s':", len(forms), word)
	for _, f := range forms {
		h.out.Printf("  %s", wordStyle.Render(f))
	}
}

func (h *InputHandler) complete(engine suggest.ISuggester, prefix string) {
	if !utils.IsValidPrefix(prefix) {
		h.out.Warnf("No completions for prefix: '%s'", prefix)
		return
	}
	words := engine.Complete(prefix, h.suggestLimit)
	if len(words) == 0 {
		h.out.Warnf("No completions for prefix: '%s'", prefix)
		return
	}
	h.out.Printf("Found %d completions for '%s':", len(words), prefix)
	for i, w := range words {
		h.out.Printf("%2d. %s", i+1, wordStyle.Render(w))
	}
}

func (h *InputHandler) stats(engine suggest.ISuggester) {
	s := engine.Dictionary().Stats()
	h.out.Print("dictionary:",
		"words", s.Words,
		"prefixRules", s.PrefixRules,
		"suffixRules", s.SuffixRules,
		"phoneticRules", s.PhoneticRules,
		"skippedLines", s.SkippedLines,
		"duplicateWords", s.DuplicateWords)

	engineStats := engine.Stats()
	keys := make([]string, 0, len(engineStats))
	for k := range engineStats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		h.out.Printf("  %-16s %d", k, engineStats[k])
	}
	h.out.Printf("  %-16s %d", "requests", h.requestCount)
}
