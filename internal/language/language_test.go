package language

import (
	"errors"
	"testing"
)

func testEntries() ([]Entry, []Entry, []Entry) {
	nouns := []Entry{{English: "dog", Target: "ishapugu"}, {English: "cat", Target: "kidi'"}}
	trans := []Entry{{English: "see", Target: "puni"}}
	intrans := []Entry{{English: "sleep", Target: "üwi"}}
	return nouns, trans, intrans
}

func TestNewLexicon_DuplicateLemma(t *testing.T) {
	nouns := []Entry{{English: "dog", Target: "a"}, {English: "dog", Target: "b"}}

	_, err := NewLexicon(nouns, nil, nil)
	if err == nil {
		t.Error("expected error for duplicate lemma within a partition")
	}
}

func TestNewLexicon_SameLemmaAcrossPartitions(t *testing.T) {
	// The same English word may be a noun and a verb.
	nouns := []Entry{{English: "fish", Target: "pagwi"}}
	intrans := []Entry{{English: "fish", Target: "pagwidua"}}

	if _, err := NewLexicon(nouns, nil, intrans); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLexicon_Lookup(t *testing.T) {
	lex := MustLexicon(testEntries())

	target, err := lex.Lookup(CategoryNoun, "dog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target != "ishapugu" {
		t.Errorf("expected ishapugu, got %q", target)
	}

	_, err = lex.Lookup(CategoryNoun, "unicorn")
	var unknown *UnknownLemmaError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownLemmaError, got %v", err)
	}
	if unknown.Category != CategoryNoun || unknown.Lemma != "unicorn" {
		t.Errorf("unexpected error detail %+v", unknown)
	}

	// Partitions do not leak into each other.
	if _, err := lex.Lookup(CategoryTransitiveVerb, "dog"); err == nil {
		t.Error("expected miss for noun lemma in verb partition")
	}
}

func TestLexicon_NormalizesTargets(t *testing.T) {
	// u + combining diaeresis decomposed vs. precomposed ü.
	decomposed := "u\u0308wi"
	lex := MustLexicon(nil, nil, []Entry{{English: "sleep", Target: decomposed}})

	target, err := lex.Lookup(CategoryIntransitiveVerb, "sleep")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target != "\u00fcwi" {
		t.Errorf("expected NFC-composed target, got %q", target)
	}
}

func TestLexicon_LemmasInLoadOrder(t *testing.T) {
	lex := MustLexicon(testEntries())

	lemmas := lex.Lemmas(CategoryNoun)
	if len(lemmas) != 2 || lemmas[0] != "dog" || lemmas[1] != "cat" {
		t.Errorf("expected load order, got %v", lemmas)
	}
}

func TestLexicon_EntriesReturnsCopy(t *testing.T) {
	lex := MustLexicon(testEntries())

	entries := lex.Entries(CategoryNoun)
	entries[0].Target = "mutated"

	again := lex.Entries(CategoryNoun)
	if again[0].Target != "ishapugu" {
		t.Error("Entries must not expose internal state")
	}
}
