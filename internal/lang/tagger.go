// Package lang provides the linguistic analysis capability the checkers
// consume: tokenization with best-effort lemma and dependency-role labels.
//
// The core never builds on these labels for pass/fail decisions. They feed
// the advisory fields of the structure checker and the tokenization of the
// ambiguity detector. Callers must degrade gracefully when Tag returns an
// error rather than aborting a batch.
package lang

import (
	"fmt"
	"strings"
	"unicode"
)

// Dependency-role labels produced by the tagger. The names follow the
// Universal Dependencies convention so consumers can swap in a real parser.
const (
	DepSubject = "nsubj"
	DepRoot    = "ROOT"
	DepAdvcl   = "advcl"
	DepOther   = "dep"
)

// Token is one surface token with its lemma and dependency-role label.
type Token struct {
	Text  string
	Lemma string
	Dep   string
}

// Tagger turns a text into a token sequence. Implementations must be safe
// for concurrent use.
type Tagger interface {
	Tag(text string) ([]Token, error)
}

// RuleTagger is a deterministic, dictionary-free Tagger tuned for agile
// requirement artifacts. It recognizes the "As a <role> ... I want <action>
// ... so that <benefit>" shape and labels the role noun, the action verb, and
// the benefit marker; every other token gets DepOther.
type RuleTagger struct{}

// NewRuleTagger constructs a RuleTagger.
func NewRuleTagger() *RuleTagger {
	return &RuleTagger{}
}

// Tag implements Tagger. It returns an error only for empty or blank input,
// matching the contract that a missing artifact is a detectable condition
// rather than a zero-token success.
func (t *RuleTagger) Tag(text string) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("lang: empty input")
	}

	words := Tokenize(text)
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{Text: w, Lemma: Lemma(w), Dep: DepOther}
	}

	// Role noun: the token after "as a" / "as an".
	for i := 0; i+2 < len(tokens); i++ {
		if tokens[i].Lemma == "as" && (tokens[i+1].Lemma == "a" || tokens[i+1].Lemma == "an") {
			tokens[i+2].Dep = DepSubject
			break
		}
	}

	// Action verb: the token after "want" (skipping an infinitive "to").
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Lemma != "want" {
			continue
		}
		j := i + 1
		if tokens[j].Lemma == "to" && j+1 < len(tokens) {
			j++
		}
		tokens[j].Dep = DepRoot
		break
	}

	// Benefit clause marker: "so" opening "so that".
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Lemma == "so" && tokens[i+1].Lemma == "that" {
			tokens[i].Dep = DepAdvcl
			break
		}
	}

	return tokens, nil
}

// Tokenize splits text into surface tokens. Tokens keep interior slashes so
// compounds like "and/or" survive as one token; all other punctuation
// separates.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		if r == '/' {
			return false
		}
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// irregularLemmas covers the verb forms that suffix stripping gets wrong and
// that actually occur in requirement prose.
var irregularLemmas = map[string]string{
	"has":    "have",
	"had":    "have",
	"is":     "be",
	"are":    "be",
	"was":    "be",
	"were":   "be",
	"been":   "be",
	"does":   "do",
	"did":    "do",
	"wants":  "want",
	"wanted": "want",
	"saves":  "save",
	"saved":  "save",
}

// Lemma returns a best-effort lemma: lower-case, irregular map first, then
// simple suffix stripping. Good enough for advisory extraction; never used
// for verdicts.
func Lemma(word string) string {
	w := strings.ToLower(word)
	if base, ok := irregularLemmas[w]; ok {
		return base
	}
	switch {
	case len(w) > 4 && strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "y"
	case len(w) > 3 && strings.HasSuffix(w, "es"):
		return w[:len(w)-2]
	case len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss"):
		return w[:len(w)-1]
	}
	return w
}
