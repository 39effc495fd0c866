// Package normalize turns raw post text into the linguistic substrate the
// detector and the classifier share.
// Pipeline order
// 1 Trim and bounds-check the input
// 2 Strip URLs
// 3 Sanitize control bytes and invalid UTF-8
// 4 Drop special characters, keeping the punctuation pattern analysis needs
// 5 Collapse whitespace
// 6 Tokenize (original case retained), count words and sentences
// 7 Fold (NFKC, case fold, strip marks, width fold) and derive the stemmed
// view from the folded text: stopword-filtered, suffix-stemmed
package normalize

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Input length bounds in runes, applied after trimming
const (
	MinLen = 10
	MaxLen = 5000
)

// Bounds violations; callers translate these into their own error taxonomy
var (
	ErrEmpty    = errors.New("text is empty after trimming")
	ErrTooShort = errors.New("text shorter than minimum length")
	ErrTooLong  = errors.New("text longer than maximum length")
)

// Text is the normalized view of one input, valid for one request only
type Text struct {
	// Clean keeps original casing and the punctuation the detector reads
	Clean string
	// Folded is the NFKC, case-folded, width-folded form of Clean with
	// combining and format marks stripped; Stems derive from it so
	// fullwidth or decorated lookalikes reach the classifier vocabulary
	Folded string

	// Tokens are word tokens from Clean, original case preserved
	Tokens []string
	// Stems are alphabetic tokens from Folded with stopwords removed and
	// common suffixes stripped; the classifier's only view of the text
	Stems []string

	SentenceCount int
	WordCount     int
	RawLength     int

	AvgSentenceLen float64
	AvgWordLen     float64
	UniqueRatio    float64
}

// Readability is the deterministic inverse-complexity score in [0,100]
func (t Text) Readability() int {
	r := 100 - int(t.AvgSentenceLen)
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

// urlRe matches http/https URLs so links never feed the pattern rules
var urlRe = regexp.MustCompile(`https?://[^\s]+`)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize runs the full pipeline over s and returns the shared Text view.
// Returns ErrEmpty, ErrTooShort or ErrTooLong when the trimmed input is out
// of bounds; callers are expected to have validated already, this is defense
// in depth
func (n *Normalizer) Normalize(s string) (Text, error) {
	trimmed := strings.TrimSpace(s)
	rawLen := utf8.RuneCountInString(trimmed)
	switch {
	case rawLen == 0:
		return Text{}, ErrEmpty
	case rawLen < MinLen:
		return Text{}, ErrTooShort
	case rawLen > MaxLen:
		return Text{}, ErrTooLong
	}

	clean := urlRe.ReplaceAllString(trimmed, "")
	clean = Sanitize(clean)
	clean = strings.ToValidUTF8(clean, "")
	clean = filterSpecial(clean)
	clean = collapseSpaces(clean)

	tr := chainPool.Get().(transform.Transformer)
	folded, _, _ := transform.String(tr, clean)
	tr.Reset()
	chainPool.Put(tr)

	tokens := tokenize(clean)
	stems := stemView(tokenize(folded))
	fields := strings.Fields(clean)

	t := Text{
		Clean:         clean,
		Folded:        folded,
		Tokens:        tokens,
		Stems:         stems,
		SentenceCount: sentenceCount(clean),
		WordCount:     len(fields),
		RawLength:     rawLen,
	}
	t.AvgSentenceLen = float64(len(tokens)) / float64(t.SentenceCount)
	t.AvgWordLen = avgLen(fields)
	t.UniqueRatio = uniqueRatio(stems)
	return t, nil
}

// filterSpecial drops everything except word characters, whitespace and the
// punctuation the pattern detector inspects
func filterSpecial(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		case strings.ContainsRune(`.,!?;:'"()-`, r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// tokenize splits on anything outside letters, digits and in-word apostrophes
func tokenize(s string) []string {
	var out []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
		}
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return out
}

// sentenceCount counts terminators, never reporting fewer than one sentence
func sentenceCount(s string) int {
	c := strings.Count(s, ".") + strings.Count(s, "!") + strings.Count(s, "?")
	if c < 1 {
		return 1
	}
	return c
}

func avgLen(fields []string) float64 {
	if len(fields) == 0 {
		return 0
	}
	total := 0
	for _, f := range fields {
		total += utf8.RuneCountInString(f)
	}
	return float64(total) / float64(len(fields))
}

func uniqueRatio(stems []string) float64 {
	if len(stems) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(stems))
	for _, s := range stems {
		seen[s] = struct{}{}
	}
	return float64(len(seen)) / float64(len(stems))
}

// stemView keeps only alphabetic tokens that are not stopwords and strips
// one common suffix from each. Input is the folded token stream, already
// lowercased by the fold; ToLower stays as a guard for direct callers
func stemView(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		w := strings.ToLower(tok)
		if !isAlpha(w) {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		out = append(out, Stem(w))
	}
	return out
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// suffixes tried longest first; a strip applies only when the remaining stem
// keeps at least three runes
var suffixes = []string{"ation", "ingly", "ment", "ness", "ful", "ing", "est", "ed", "es", "ly"}

// Stem strips one suffix from an already-lowercased word.
// Deliberately light: the classifier vocabulary is built with the same rules,
// so the two must never drift apart
func Stem(w string) string {
	// plural "ies" folds back to "y" so study/studies share one stem
	if strings.HasSuffix(w, "ies") && len(w) > 4 {
		return w[:len(w)-3] + "y"
	}
	for _, suf := range suffixes {
		if strings.HasSuffix(w, suf) && len(w)-len(suf) >= 3 {
			return w[:len(w)-len(suf)]
		}
	}
	if strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && len(w) > 3 {
		return w[:len(w)-1]
	}
	return w
}

// stopwords is a fixed English function-word set; kept small on purpose
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "than", "that",
		"this", "these", "those", "is", "are", "was", "were", "be", "been",
		"being", "am", "do", "does", "did", "have", "has", "had", "will",
		"would", "can", "could", "shall", "should", "may", "might", "must",
		"i", "me", "my", "we", "us", "our", "you", "your", "he", "him", "his",
		"she", "her", "it", "its", "they", "them", "their", "what", "which",
		"who", "whom", "whose", "when", "where", "why", "how", "not", "no",
		"nor", "so", "too", "very", "just", "only", "own", "same", "such",
		"at", "by", "for", "from", "in", "into", "of", "off", "on", "onto",
		"out", "over", "to", "under", "up", "with", "about", "after",
		"before", "between", "during", "as", "again", "further", "here",
		"there", "all", "any", "both", "each", "few", "more", "most",
		"other", "some",
	} {
		stopwords[w] = struct{}{}
	}
}
