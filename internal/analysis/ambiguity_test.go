package analysis

import (
	"strings"
	"testing"

	"storylint/internal/lang"
)

func newDetector(t *testing.T) *AmbiguityDetector {
	t.Helper()
	return NewAmbiguityDetector(DefaultVocabulary(), lang.NewRuleTagger())
}

// --- CheckWithSeverity ---

func TestAmbiguity_CleanTextIsNone(t *testing.T) {
	v, sev := newDetector(t).CheckWithSeverity("As a user, I want to export my data so that I can archive it")
	if !v.Passed() {
		t.Errorf("verdict = %s (%s), want Pass", v.Outcome, v.Message)
	}
	if sev != SeverityNone {
		t.Errorf("severity = %s, want None", sev)
	}
}

func TestAmbiguity_BlankInputIsCritical(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		v, sev := newDetector(t).CheckWithSeverity(text)
		if v.Passed() {
			t.Errorf("CheckWithSeverity(%q) passed, want Fail", text)
		}
		if sev != SeverityCritical {
			t.Errorf("CheckWithSeverity(%q) severity = %s, want Critical", text, sev)
		}
		if v.Message != "No text provided." {
			t.Errorf("CheckWithSeverity(%q) message = %q", text, v.Message)
		}
	}
}

func TestAmbiguity_IncompletenessMarkerIsCritical(t *testing.T) {
	v, sev := newDetector(t).CheckWithSeverity("The response time should be tbd")
	if v.Passed() {
		t.Error("verdict should be Fail for a TBD artifact")
	}
	if sev != SeverityCritical {
		t.Errorf("severity = %s, want Critical", sev)
	}
	if !strings.Contains(v.Message, "incomplete information") {
		t.Errorf("message = %q, want incompleteness wording", v.Message)
	}
	if !strings.Contains(v.Message, "tbd") {
		t.Errorf("message = %q, want the matched marker listed", v.Message)
	}
}

func TestAmbiguity_MarkerDominatesHedgeWords(t *testing.T) {
	// "should" alone would be Medium; the marker forces Critical.
	_, sev := newDetector(t).CheckWithSeverity("The limit should be to be decided")
	if sev != SeverityCritical {
		t.Errorf("severity = %s, want Critical when a marker is present", sev)
	}
}

func TestAmbiguity_HedgeWordsAreMedium(t *testing.T) {
	v, sev := newDetector(t).CheckWithSeverity("The page should load fast and may show various results")
	if v.Passed() {
		t.Error("verdict should be Fail for hedge words")
	}
	if sev != SeverityMedium {
		t.Errorf("severity = %s, want Medium", sev)
	}
	// Distinct matches listed once each, in vocabulary order.
	want := "Ambiguous terms detected: may, should, various."
	if v.Message != want {
		t.Errorf("message = %q, want %q", v.Message, want)
	}
}

func TestAmbiguity_SingleWordTermNeedsWholeToken(t *testing.T) {
	// "may" inside "maybe" must not fire.
	v, sev := newDetector(t).CheckWithSeverity("Maybe is the name of the feature flag")
	if !v.Passed() {
		t.Errorf("verdict = %s (%s), want Pass", v.Outcome, v.Message)
	}
	if sev != SeverityNone {
		t.Errorf("severity = %s, want None", sev)
	}
}

func TestAmbiguity_CompoundTermMatches(t *testing.T) {
	v, _ := newDetector(t).CheckWithSeverity("Users can log in and/or sign up")
	if v.Passed() {
		t.Error("verdict should be Fail for 'and/or'")
	}
	if !strings.Contains(v.Message, "and/or") {
		t.Errorf("message = %q, want 'and/or' listed", v.Message)
	}
}

func TestAmbiguity_RepeatedTermListedOnce(t *testing.T) {
	v, _ := newDetector(t).CheckWithSeverity("It may work or it may not")
	want := "Ambiguous terms detected: may."
	if v.Message != want {
		t.Errorf("message = %q, want %q", v.Message, want)
	}
}

func TestAmbiguity_NilTaggerFallsBackToBoundaryMatching(t *testing.T) {
	d := NewAmbiguityDetector(DefaultVocabulary(), nil)
	v, sev := d.CheckWithSeverity("The page may be slow")
	if v.Passed() {
		t.Error("verdict should be Fail without a tagger too")
	}
	if sev != SeverityMedium {
		t.Errorf("severity = %s, want Medium", sev)
	}
}

// --- Check ---

func TestAmbiguityCheck_DropsSeverityChannel(t *testing.T) {
	d := newDetector(t)
	v := d.Check("The limit is tbd")
	full, _ := d.CheckWithSeverity("The limit is tbd")
	if v != full {
		t.Errorf("Check() = %+v, want %+v", v, full)
	}
}
