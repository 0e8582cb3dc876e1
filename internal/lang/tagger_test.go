package lang

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// --- Tokenize ---

func TestTokenize_SplitsOnPunctuation(t *testing.T) {
	got := Tokenize("As a user, I want reports!")
	want := []string{"As", "a", "user", "I", "want", "reports"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_KeepsInteriorSlashes(t *testing.T) {
	got := Tokenize("log in and/or sign up")
	want := []string{"log", "in", "and/or", "sign", "up"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_KeepsDigits(t *testing.T) {
	got := Tokenize("within 5 seconds, 24/7")
	want := []string{"within", "5", "seconds", "24/7"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_Empty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want no tokens", got)
	}
}

// --- Lemma ---

func TestLemma(t *testing.T) {
	cases := map[string]string{
		"wants":   "want",
		"Wanted":  "want",
		"saves":   "save",
		"is":      "be",
		"are":     "be",
		"has":     "have",
		"does":    "do",
		"stories": "story",
		"passes":  "pass",
		"users":   "user",
		"access":  "access",
		"want":    "want",
		"So":      "so",
	}
	for word, want := range cases {
		if got := Lemma(word); got != want {
			t.Errorf("Lemma(%q) = %q, want %q", word, got, want)
		}
	}
}

// --- RuleTagger.Tag ---

func TestTag_EmptyInputErrors(t *testing.T) {
	tagger := NewRuleTagger()
	for _, text := range []string{"", "   ", "\n"} {
		if _, err := tagger.Tag(text); err == nil {
			t.Errorf("Tag(%q) = nil error, want error", text)
		}
	}
}

func TestTag_LabelsCanonicalStory(t *testing.T) {
	tokens, err := NewRuleTagger().Tag("As a developer I want to save reports so that nothing is lost")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}

	deps := map[string]string{}
	for _, tok := range tokens {
		if tok.Dep != DepOther {
			deps[tok.Dep] = tok.Text
		}
	}

	if deps[DepSubject] != "developer" {
		t.Errorf("nsubj = %q, want %q", deps[DepSubject], "developer")
	}
	if deps[DepRoot] != "save" {
		t.Errorf("ROOT = %q, want %q", deps[DepRoot], "save")
	}
	if deps[DepAdvcl] != "so" {
		t.Errorf("advcl = %q, want %q", deps[DepAdvcl], "so")
	}
}

func TestTag_ActionWithoutInfinitive(t *testing.T) {
	tokens, err := NewRuleTagger().Tag("As an admin I want audit logs")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	var root string
	for _, tok := range tokens {
		if tok.Dep == DepRoot {
			root = tok.Text
		}
	}
	if root != "audit" {
		t.Errorf("ROOT = %q, want %q (token right after 'want')", root, "audit")
	}
}

func TestTag_InflectedWantIsRecognized(t *testing.T) {
	tokens, err := NewRuleTagger().Tag("The customer wants faster exports")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	var root string
	for _, tok := range tokens {
		if tok.Dep == DepRoot {
			root = tok.Text
		}
	}
	if root != "faster" {
		t.Errorf("ROOT = %q, want %q", root, "faster")
	}
}

func TestTag_UnstructuredTextHasNoSpecialLabels(t *testing.T) {
	tokens, err := NewRuleTagger().Tag("Export all records nightly")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	for _, tok := range tokens {
		if tok.Dep != DepOther {
			t.Errorf("token %q labeled %s, want %s", tok.Text, tok.Dep, DepOther)
		}
	}
}
