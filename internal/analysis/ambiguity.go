package analysis

import (
	"fmt"
	"strings"

	"storylint/internal/lang"
)

// AmbiguityDetector flags hedge words and incompleteness markers.
//
// Policy: any incompleteness marker makes the artifact Critical regardless of
// other findings; hedge words alone are Medium; a clean artifact is None.
// Missing or blank input counts as incomplete: an empty artifact cannot be
// less broken than one that says "tbd".
type AmbiguityDetector struct {
	vocab  Vocabulary
	tagger lang.Tagger
}

// NewAmbiguityDetector constructs an AmbiguityDetector.
func NewAmbiguityDetector(vocab Vocabulary, tagger lang.Tagger) *AmbiguityDetector {
	return &AmbiguityDetector{vocab: vocab, tagger: tagger}
}

// Check returns the plain verdict without the severity channel.
func (d *AmbiguityDetector) Check(text string) Verdict {
	v, _ := d.CheckWithSeverity(text)
	return v
}

// CheckWithSeverity returns the verdict together with its severity for the
// merger. The message lists each distinct matched term once, in vocabulary
// order.
func (d *AmbiguityDetector) CheckWithSeverity(text string) (Verdict, Severity) {
	if strings.TrimSpace(text) == "" {
		return fail("No text provided."), SeverityCritical
	}

	lower := strings.ToLower(text)

	// Incompleteness markers dominate everything else.
	if markers := d.matchMarkers(lower); len(markers) > 0 {
		msg := fmt.Sprintf("Contains incomplete information: %s.", strings.Join(markers, ", "))
		return fail(msg), SeverityCritical
	}

	terms := d.matchAmbiguous(lower)
	if len(terms) > 0 {
		msg := fmt.Sprintf("Ambiguous terms detected: %s.", strings.Join(terms, ", "))
		return fail(msg), SeverityMedium
	}

	return pass("No ambiguity detected."), SeverityNone
}

// matchMarkers returns the distinct incompleteness markers present in lower.
func (d *AmbiguityDetector) matchMarkers(lower string) []string {
	var found []string
	for _, marker := range d.vocab.IncompletenessMarkers {
		if containsPhrase(lower, strings.ToLower(marker)) {
			found = append(found, marker)
		}
	}
	return found
}

// matchAmbiguous returns the distinct hedge terms present in lower.
// Single words are matched token-by-token through the tagger so "may" never
// fires inside "maybe"; multi-word phrases fall back to boundary matching.
// A tagger failure is treated as an unanalyzable (hence incomplete) artifact
// upstream; here it degrades to boundary matching so the batch continues.
func (d *AmbiguityDetector) matchAmbiguous(lower string) []string {
	tokenSet := d.tokenSet(lower)

	var found []string
	for _, term := range d.vocab.AmbiguousTerms {
		t := strings.ToLower(term)
		matched := false
		switch {
		case tokenSet != nil && !strings.Contains(t, " "):
			matched = tokenSet[t]
		default:
			matched = containsPhrase(lower, t)
		}
		if matched {
			found = append(found, term)
		}
	}
	return found
}

// tokenSet tokenizes through the tagger; nil means tokenization failed.
func (d *AmbiguityDetector) tokenSet(lower string) map[string]bool {
	if d.tagger == nil {
		return nil
	}
	tokens, err := d.tagger.Tag(lower)
	if err != nil {
		return nil
	}
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[strings.ToLower(tok.Text)] = true
	}
	return set
}
