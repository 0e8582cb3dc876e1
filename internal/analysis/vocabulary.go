package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// Vocabulary holds the fixed term sets the detectors match against.
// Both sets are read-only for the lifetime of a run: they are built once at
// process start and shared by every checker without synchronization.
type Vocabulary struct {
	// AmbiguousTerms are hedge words and phrases that make a requirement
	// open to interpretation ("may", "approximately", "and/or").
	AmbiguousTerms []string
	// IncompletenessMarkers are placeholders signalling the artifact is
	// intentionally unfinished ("tbd", "to be decided"). Disjoint from
	// AmbiguousTerms; an incompleteness marker is never merely ambiguous.
	IncompletenessMarkers []string
}

// DefaultVocabulary returns the standard term sets.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		AmbiguousTerms: []string{
			"may", "might", "should", "could", "possibly", "approximately",
			"etc", "and/or", "various", "usually", "commonly",
		},
		IncompletenessMarkers: []string{
			"tbd", "to be decided", "to be determined",
		},
	}
}

// Validate checks the vocabulary invariants. A violation is a configuration
// error and aborts the run before any artifact is analyzed.
func (v Vocabulary) Validate() error {
	if len(v.AmbiguousTerms) == 0 {
		return fmt.Errorf("vocabulary: ambiguous term set is empty")
	}
	if len(v.IncompletenessMarkers) == 0 {
		return fmt.Errorf("vocabulary: incompleteness marker set is empty")
	}
	markers := make(map[string]bool, len(v.IncompletenessMarkers))
	for _, m := range v.IncompletenessMarkers {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("vocabulary: blank incompleteness marker")
		}
		markers[strings.ToLower(m)] = true
	}
	for _, term := range v.AmbiguousTerms {
		if strings.TrimSpace(term) == "" {
			return fmt.Errorf("vocabulary: blank ambiguous term")
		}
		if markers[strings.ToLower(term)] {
			return fmt.Errorf("vocabulary: term %q appears in both sets", term)
		}
	}
	return nil
}

// ContainsIncompleteness reports whether any incompleteness marker occurs in
// the text. Markers are matched case-insensitively on word boundaries so that
// "tbd" does not match inside "outbound".
func (v Vocabulary) ContainsIncompleteness(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range v.IncompletenessMarkers {
		if containsPhrase(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// containsPhrase reports whether phrase occurs in lower on word boundaries.
// Both arguments must already be lower-cased.
func containsPhrase(lower, phrase string) bool {
	for start := 0; ; {
		idx := strings.Index(lower[start:], phrase)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(phrase)
		beforeOK := idx == 0 || !isWordByte(lower[idx-1])
		afterOK := end == len(lower) || !isWordByte(lower[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}

// NFRCategories maps each non-functional-requirement category name to its
// trigger keyword set. Static for the run, like the vocabularies.
type NFRCategories map[string][]string

// DefaultNFRCategories returns the standard category map.
func DefaultNFRCategories() NFRCategories {
	return NFRCategories{
		"performance": {
			"performance", "response time", "latency", "throughput",
			"load", "seconds", "fast",
		},
		"security": {
			"security", "secure", "encrypt", "authentication",
			"authorization", "password", "access control",
		},
		"compatibility": {
			"compatible", "compatibility", "browser", "platform",
			"device", "mobile", "operating system",
		},
		"error_handling": {
			"error", "invalid", "exception", "failure", "retry", "fallback",
		},
		"availability": {
			"availability", "uptime", "downtime", "failover", "24/7", "recover",
		},
	}
}

// Validate checks the category map invariants: no empty category, no empty or
// blank keyword set.
func (c NFRCategories) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("nfr categories: map is empty")
	}
	for name, keywords := range c {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("nfr categories: blank category name")
		}
		if len(keywords) == 0 {
			return fmt.Errorf("nfr categories: category %q has no trigger keywords", name)
		}
		for _, kw := range keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("nfr categories: category %q has a blank keyword", name)
			}
		}
	}
	return nil
}

// Names returns the category names in stable sorted order.
func (c NFRCategories) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
