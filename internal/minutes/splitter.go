package minutes

import (
	"regexp"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// SentenceSplitter splits raw text into an ordered sequence of sentences.
// Implementations must be safe for concurrent use.
type SentenceSplitter interface {
	Split(text string) []string
	Name() string
}

// LinguisticSplitter segments text with a pretrained punkt sentence-boundary
// model. Building the tokenizer loads the packaged English training data.
type LinguisticSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewLinguisticSplitter loads the English sentence-boundary model.
func NewLinguisticSplitter() (*LinguisticSplitter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &LinguisticSplitter{tokenizer: tokenizer}, nil
}

// Split returns the model's sentence segmentation of text.
func (s *LinguisticSplitter) Split(text string) []string {
	raw := s.tokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sentence := range raw {
		out = append(out, sentence.Text)
	}
	return out
}

// Name identifies the splitter strategy.
func (s *LinguisticSplitter) Name() string { return "linguistic" }

// RegexSplitter is the fallback strategy: it cuts after each run of characters
// ending in '.', '!' or '?' followed by whitespace, and keeps the trailing
// remainder as the final sentence.
type RegexSplitter struct{}

var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// Split segments text on terminator-plus-whitespace boundaries.
func (RegexSplitter) Split(text string) []string {
	var out []string
	prev := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		// The match starts at the terminator; keep it with the sentence and
		// skip the whitespace run.
		out = append(out, text[prev:loc[0]+1])
		prev = loc[1]
	}
	out = append(out, text[prev:])
	return out
}

// Name identifies the splitter strategy.
func (RegexSplitter) Name() string { return "regex" }

var (
	splitterOnce    sync.Once
	defaultSplitter SentenceSplitter
)

// DefaultSplitter selects the process-wide splitter exactly once: the
// linguistic model when its training data loads, the regex fallback otherwise.
// The surrounding system is responsible for logging which one won.
func DefaultSplitter() SentenceSplitter {
	splitterOnce.Do(func() {
		if ls, err := NewLinguisticSplitter(); err == nil {
			defaultSplitter = ls
			return
		}
		defaultSplitter = RegexSplitter{}
	})
	return defaultSplitter
}
