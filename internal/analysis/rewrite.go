package analysis

import (
	"regexp"
	"strings"
	"unicode"
)

// RewriteResult is either a normalized artifact or an explicit refusal.
// Refused results carry the reason; callers can thus distinguish "rewrite
// attempted" from "rewrite refused".
type RewriteResult struct {
	Text    string `json:"text,omitempty"`
	Refused bool   `json:"refused"`
	Reason  string `json:"reason,omitempty"`
}

// rewritten and refused are shorthand constructors.
func rewritten(text string) RewriteResult {
	return RewriteResult{Text: text}
}

func refused(reason string) RewriteResult {
	return RewriteResult{Refused: true, Reason: reason}
}

// Rewriter produces best-effort corrected versions of malformed artifacts.
//
// The engine is advisory: its output is never re-validated in the same pass.
// Both rewrite targets share the refusal rule: an artifact containing an
// incompleteness marker cannot be corrected, only sent back for completion.
type Rewriter struct {
	vocab Vocabulary
}

// NewRewriter constructs a Rewriter.
func NewRewriter(vocab Vocabulary) *Rewriter {
	return &Rewriter{vocab: vocab}
}

// wantClause and benefitClause canonicalize the punctuation and casing around
// the story's two pivot phrases. Matching any existing comma keeps the
// replacement idempotent: a story already in canonical form maps to itself.
var (
	wantClause    = regexp.MustCompile(`(?i)\s*,?\s+i want\b`)
	benefitClause = regexp.MustCompile(`(?i)\s*,?\s+so that\b`)
)

// Story normalizes a user story toward the canonical
// "As a ..., I want ..., so that ..." shape.
func (r *Rewriter) Story(story string) RewriteResult {
	story = strings.TrimSpace(story)
	if story == "" {
		return refused("cannot rewrite: no story provided")
	}
	if r.vocab.ContainsIncompleteness(story) {
		return refused("cannot rewrite: incomplete information")
	}

	if !strings.HasPrefix(strings.ToLower(story), "as a") {
		story = "As a user, " + lowerFirst(story)
	}

	story = wantClause.ReplaceAllString(story, ", I want")
	story = benefitClause.ReplaceAllString(story, ", so that")

	return rewritten(upperFirst(story))
}

// Synthesized clauses used when a Gherkin section is missing entirely.
const (
	placeholderGiven = "Given the system is in a valid state"
	placeholderWhen  = "When the user performs the primary action"
	placeholderThen  = "Then the expected outcome is observed"
)

// Gherkin normalizes an acceptance-criteria block toward a well-formed
// Given/When/Then structure. It never reorders the author's clauses, only
// re-labels them or supplies missing ones.
func (r *Rewriter) Gherkin(ac string) RewriteResult {
	ac = strings.TrimSpace(ac)
	if ac == "" {
		return refused("cannot rewrite: no acceptance criteria provided")
	}
	if r.vocab.ContainsIncompleteness(ac) {
		return refused("cannot rewrite: incomplete information")
	}

	lower := strings.ToLower(ac)
	hasGiven := strings.Contains(lower, "given")
	hasWhen := strings.Contains(lower, "when")
	hasThen := strings.Contains(lower, "then")

	// No structure at all: wrap the original text as the expected outcome.
	if !hasGiven && !hasWhen && !hasThen {
		return rewritten(strings.Join([]string{
			placeholderGiven,
			placeholderWhen,
			"Then " + lowerFirst(ac),
		}, "\n"))
	}

	if hasGiven && hasWhen && hasThen {
		if gherkinWellFormed(lower) {
			return rewritten(ac)
		}
		// Out of order or duplicated: re-label line by line, preserving
		// the author's line order.
		return rewritten(normalizeGherkinLines(ac))
	}

	// Partial structure: supply the missing clauses in canonical positions.
	lines := normalizeGherkinLines(ac)
	if !hasGiven {
		lines = placeholderGiven + "\n" + lines
	}
	if !hasWhen {
		lines += "\n" + placeholderWhen
	}
	if !hasThen {
		lines += "\n" + placeholderThen
	}
	return rewritten(lines)
}

// gherkinWellFormed reports whether the three keywords each occur exactly
// once and in canonical order.
func gherkinWellFormed(lower string) bool {
	given := strings.Index(lower, "given")
	when := strings.Index(lower, "when")
	then := strings.Index(lower, "then")
	if !(given < when && when < then) {
		return false
	}
	for _, kw := range gherkinKeywords {
		if strings.Count(lower, kw) != 1 {
			return false
		}
	}
	return true
}

// normalizeGherkinLines canonicalizes the keyword prefix of each line
// (casing only); lines without a keyword prefix pass through unchanged.
func normalizeGherkinLines(ac string) string {
	lines := strings.Split(ac, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		lowerLine := strings.ToLower(trimmed)
		for _, kw := range gherkinKeywords {
			if strings.HasPrefix(lowerLine, kw) {
				rest := trimmed[len(kw):]
				lines[i] = upperFirst(kw) + rest
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
