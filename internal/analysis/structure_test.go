package analysis

import (
	"strings"
	"testing"

	"storylint/internal/lang"
)

// --- StructureChecker.Check ---

func TestStructureCheck_CanonicalStoryPasses(t *testing.T) {
	checker := NewStructureChecker(lang.NewRuleTagger())
	v, _ := checker.Check("As a user, I want to export my data so that I can archive it")
	if !v.Passed() {
		t.Errorf("Check() = %s (%s), want Pass", v.Outcome, v.Message)
	}
}

func TestStructureCheck_AnArticlePasses(t *testing.T) {
	checker := NewStructureChecker(nil)
	v, _ := checker.Check("As an admin I want audit logs so that I can trace access")
	if !v.Passed() {
		t.Errorf("Check() = %s, want Pass for 'As an'", v.Outcome)
	}
}

func TestStructureCheck_CaseInsensitive(t *testing.T) {
	checker := NewStructureChecker(nil)
	v, _ := checker.Check("as A USER, i WANT reports SO THAT i can plan")
	if !v.Passed() {
		t.Errorf("Check() = %s, want Pass regardless of casing", v.Outcome)
	}
}

func TestStructureCheck_MultilineStoryPasses(t *testing.T) {
	checker := NewStructureChecker(nil)
	story := "As a user,\nI want to export my data\nso that I can archive it"
	v, _ := checker.Check(story)
	if !v.Passed() {
		t.Errorf("Check() = %s, want Pass for a multiline story", v.Outcome)
	}
}

func TestStructureCheck_MissingPrefixFails(t *testing.T) {
	checker := NewStructureChecker(lang.NewRuleTagger())
	v, _ := checker.Check("I want the system to save data")
	if v.Passed() {
		t.Error("Check() should fail without the 'As a/an' prefix")
	}
	if !strings.Contains(v.Message, "Does not follow") {
		t.Errorf("failure message = %q, want the format explanation", v.Message)
	}
}

func TestStructureCheck_MissingBenefitFails(t *testing.T) {
	checker := NewStructureChecker(nil)
	v, _ := checker.Check("As a user, I want to export my data")
	if v.Passed() {
		t.Error("Check() should fail without a 'so that' clause")
	}
}

func TestStructureCheck_EmptyStoryFails(t *testing.T) {
	checker := NewStructureChecker(lang.NewRuleTagger())
	v, _ := checker.Check("")
	if v.Passed() {
		t.Error("Check() should fail on empty input")
	}
}

// --- Advisory extraction ---

func TestStructureCheck_ExtractsParts(t *testing.T) {
	checker := NewStructureChecker(lang.NewRuleTagger())
	_, parts := checker.Check("As a developer I want to save reports so that nothing is lost")

	if parts.Role != "developer" {
		t.Errorf("Role = %q, want %q", parts.Role, "developer")
	}
	if parts.Action != "save" {
		t.Errorf("Action = %q, want %q", parts.Action, "save")
	}
	if parts.Benefit != "so" {
		t.Errorf("Benefit = %q, want %q", parts.Benefit, "so")
	}
}

func TestStructureCheck_NilTaggerSkipsExtraction(t *testing.T) {
	checker := NewStructureChecker(nil)
	v, parts := checker.Check("As a user, I want reports so that I can plan")

	if !v.Passed() {
		t.Errorf("Check() = %s, want Pass; verdict must not depend on the tagger", v.Outcome)
	}
	if parts != (StoryParts{}) {
		t.Errorf("parts = %+v, want zero value with a nil tagger", parts)
	}
}

func TestStructureCheck_TaggerErrorBlanksPartsOnly(t *testing.T) {
	// Blank input makes the tagger error; the verdict still comes from the
	// pattern match.
	checker := NewStructureChecker(lang.NewRuleTagger())
	v, parts := checker.Check("   ")

	if v.Passed() {
		t.Error("Check() should fail on blank input")
	}
	if parts != (StoryParts{}) {
		t.Errorf("parts = %+v, want zero value when the tagger errors", parts)
	}
}
