package analysis

import (
	"sort"
	"testing"
)

// --- Vocabulary.Validate ---

func TestVocabularyValidate_DefaultIsValid(t *testing.T) {
	if err := DefaultVocabulary().Validate(); err != nil {
		t.Fatalf("DefaultVocabulary().Validate() = %v, want nil", err)
	}
}

func TestVocabularyValidate_EmptyAmbiguousTerms(t *testing.T) {
	v := Vocabulary{IncompletenessMarkers: []string{"tbd"}}
	if err := v.Validate(); err == nil {
		t.Error("Validate() should fail with empty ambiguous term set")
	}
}

func TestVocabularyValidate_EmptyMarkers(t *testing.T) {
	v := Vocabulary{AmbiguousTerms: []string{"may"}}
	if err := v.Validate(); err == nil {
		t.Error("Validate() should fail with empty marker set")
	}
}

func TestVocabularyValidate_BlankTerm(t *testing.T) {
	v := Vocabulary{
		AmbiguousTerms:        []string{"may", "  "},
		IncompletenessMarkers: []string{"tbd"},
	}
	if err := v.Validate(); err == nil {
		t.Error("Validate() should fail with a blank ambiguous term")
	}
}

func TestVocabularyValidate_OverlappingSets(t *testing.T) {
	v := Vocabulary{
		AmbiguousTerms:        []string{"may", "TBD"},
		IncompletenessMarkers: []string{"tbd"},
	}
	if err := v.Validate(); err == nil {
		t.Error("Validate() should fail when a term appears in both sets")
	}
}

// --- ContainsIncompleteness ---

func TestContainsIncompleteness_MatchesMarker(t *testing.T) {
	v := DefaultVocabulary()
	cases := []string{
		"The limit is tbd",
		"The limit is TBD",
		"Threshold to be decided later",
		"Rate to be determined",
		"tbd",
	}
	for _, text := range cases {
		if !v.ContainsIncompleteness(text) {
			t.Errorf("ContainsIncompleteness(%q) = false, want true", text)
		}
	}
}

func TestContainsIncompleteness_WordBoundary(t *testing.T) {
	v := DefaultVocabulary()
	cases := []string{
		"Handle outbound traffic",        // "tbd" inside a word
		"The system is complete",
		"",
	}
	for _, text := range cases {
		if v.ContainsIncompleteness(text) {
			t.Errorf("ContainsIncompleteness(%q) = true, want false", text)
		}
	}
}

// --- containsPhrase ---

func TestContainsPhrase(t *testing.T) {
	cases := []struct {
		text, phrase string
		want         bool
	}{
		{"the user may log in", "may", true},
		{"maybe the user logs in", "may", false},
		{"it may", "may", true},
		{"may it work", "may", true},
		{"to be decided later", "to be decided", true},
		{"undecided so far", "to be decided", false},
		{"login and/or signup", "and/or", true},
	}
	for _, tc := range cases {
		if got := containsPhrase(tc.text, tc.phrase); got != tc.want {
			t.Errorf("containsPhrase(%q, %q) = %v, want %v", tc.text, tc.phrase, got, tc.want)
		}
	}
}

// --- NFRCategories ---

func TestNFRCategoriesValidate_DefaultIsValid(t *testing.T) {
	if err := DefaultNFRCategories().Validate(); err != nil {
		t.Fatalf("DefaultNFRCategories().Validate() = %v, want nil", err)
	}
}

func TestNFRCategoriesValidate_EmptyMap(t *testing.T) {
	if err := (NFRCategories{}).Validate(); err == nil {
		t.Error("Validate() should fail on an empty category map")
	}
}

func TestNFRCategoriesValidate_EmptyKeywordSet(t *testing.T) {
	c := NFRCategories{"performance": nil}
	if err := c.Validate(); err == nil {
		t.Error("Validate() should fail on a category with no keywords")
	}
}

func TestNFRCategoriesValidate_BlankKeyword(t *testing.T) {
	c := NFRCategories{"performance": {"latency", ""}}
	if err := c.Validate(); err == nil {
		t.Error("Validate() should fail on a blank keyword")
	}
}

func TestNFRCategoriesNames_Sorted(t *testing.T) {
	names := DefaultNFRCategories().Names()
	if len(names) != 5 {
		t.Fatalf("Names() returned %d categories, want 5", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() = %v, want sorted order", names)
	}
}
