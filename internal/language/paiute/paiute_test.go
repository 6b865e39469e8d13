package paiute

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kubishi/yaduha-2/internal/language"
)

func TestRender_SubjectVerb(t *testing.T) {
	subject, err := NewPronoun(PersonFirst, PluralitySingular, ProximityProximal, InclusivityExclusive, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	verb, err := NewIntransitiveVerb(DefaultLexicon(), "sleep", TensePresent, AspectSimple)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := NewSubjectVerbSentence(subject, verb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := s.Render(); got != "nüü üwi-dü" {
		t.Errorf("expected %q, got %q", "nüü üwi-dü", got)
	}
}

func TestRender_PronounObject(t *testing.T) {
	subject, _ := NewPronoun(PersonFirst, PluralitySingular, ProximityProximal, InclusivityExclusive, false)
	object, _ := NewPronoun(PersonThird, PluralitySingular, ProximityDistal, InclusivityExclusive, false)
	verb, err := NewTransitiveVerb(DefaultLexicon(), "eat", TensePast, AspectPerfect)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := NewSubjectObjectVerbSentence(subject, object, verb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The pronoun object surfaces only as the verb prefix, softening t to d.
	if got := s.Render(); got != "nüü u-düka-pü" {
		t.Errorf("expected %q, got %q", "nüü u-düka-pü", got)
	}
}

func TestRender_NounSubjectAndObject(t *testing.T) {
	subject, err := NewSubjectNoun(DefaultLexicon(), "dog", ProximityProximal, PluralitySingular)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	object, err := NewObjectNoun(DefaultLexicon(), "rice", ProximityDistal, PluralitySingular)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	verb, _ := NewTransitiveVerb(DefaultLexicon(), "see", TenseFuture, AspectSimple)
	s, _ := NewSubjectObjectVerbSentence(subject, object, verb)

	if got := s.Render(); got != "ishapugu-ii wai-noka u-buni-wei" {
		t.Errorf("expected %q, got %q", "ishapugu-ii wai-noka u-buni-wei", got)
	}
}

func TestRender_GlottalObjectSuffix(t *testing.T) {
	object, err := NewObjectNoun(DefaultLexicon(), "coyote", ProximityProximal, PluralitySingular)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	word, ok := object.objectText()
	if !ok {
		t.Fatal("expected a standalone object word")
	}
	if word != "isha'-eika" {
		t.Errorf("expected vowel-initial suffix after glottal stop, got %q", word)
	}
}

func TestRender_Deterministic(t *testing.T) {
	subject, _ := NewPronoun(PersonThird, PluralityPlural, ProximityDistal, InclusivityExclusive, false)
	verb, _ := NewIntransitiveVerb(DefaultLexicon(), "dance", TenseFuture, AspectSimple)
	s, _ := NewSubjectVerbSentence(subject, verb)

	first := s.Render()
	for i := 0; i < 10; i++ {
		if got := s.Render(); got != first {
			t.Fatalf("render not deterministic: %q vs %q", first, got)
		}
	}
	if first != "uhuw̃a nüga-wei" {
		t.Errorf("unexpected render %q", first)
	}
}

func TestPronounForms(t *testing.T) {
	cases := []struct {
		name    string
		p       Pronoun
		subject string
		object  string
	}{
		{"first plural inclusive", Pronoun{Person: PersonFirst, Plurality: PluralityPlural, Proximity: ProximityProximal, Inclusivity: InclusivityInclusive}, "taagwa", "tei"},
		{"first plural exclusive", Pronoun{Person: PersonFirst, Plurality: PluralityPlural, Proximity: ProximityProximal, Inclusivity: InclusivityExclusive}, "nüügwa", "ni"},
		{"first dual", Pronoun{Person: PersonFirst, Plurality: PluralityDual, Proximity: ProximityProximal, Inclusivity: InclusivityInclusive}, "taa", "ta"},
		{"second singular", Pronoun{Person: PersonSecond, Plurality: PluralitySingular, Proximity: ProximityProximal, Inclusivity: InclusivityExclusive}, "üü", "ü"},
		{"second plural", Pronoun{Person: PersonSecond, Plurality: PluralityPlural, Proximity: ProximityProximal, Inclusivity: InclusivityExclusive}, "üügwa", "üi"},
		{"third singular proximal", Pronoun{Person: PersonThird, Plurality: PluralitySingular, Proximity: ProximityProximal, Inclusivity: InclusivityExclusive}, "mahu", "a"},
		{"third plural distal", Pronoun{Person: PersonThird, Plurality: PluralityPlural, Proximity: ProximityDistal, Inclusivity: InclusivityExclusive}, "uhuw̃a", "ui"},
		{"third reflexive", Pronoun{Person: PersonThird, Plurality: PluralitySingular, Proximity: ProximityProximal, Inclusivity: InclusivityExclusive, Reflexive: true}, "mahu", "na"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.SubjectForm(); got != tc.subject {
				t.Errorf("subject form: expected %q, got %q", tc.subject, got)
			}
			if got := tc.p.ObjectForm(); got != tc.object {
				t.Errorf("object form: expected %q, got %q", tc.object, got)
			}
		})
	}
}

func TestNewVerb_UnknownLemma(t *testing.T) {
	_, err := NewIntransitiveVerb(DefaultLexicon(), "levitate", TensePresent, AspectSimple)

	var unknown *language.UnknownLemmaError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownLemmaError, got %v", err)
	}
	if unknown.Category != language.CategoryIntransitiveVerb {
		t.Errorf("expected intransitive category, got %s", unknown.Category)
	}
}

func TestNewVerb_CategoryPartition(t *testing.T) {
	// "eat" is transitive only; the intransitive partition must not see it.
	if _, err := NewIntransitiveVerb(DefaultLexicon(), "eat", TensePresent, AspectSimple); err == nil {
		t.Error("expected error for transitive lemma in intransitive slot")
	}
	if _, err := NewTransitiveVerb(DefaultLexicon(), "sleep", TensePresent, AspectSimple); err == nil {
		t.Error("expected error for intransitive lemma in transitive slot")
	}
}

func TestNewPronoun_InvalidFeature(t *testing.T) {
	if _, err := NewPronoun(Person("fourth"), PluralitySingular, ProximityProximal, InclusivityExclusive, false); err == nil {
		t.Error("expected error for invalid person")
	}
	if _, err := NewPronoun(PersonFirst, PluralitySingular, ProximityProximal, Inclusivity(""), false); err == nil {
		t.Error("expected error for missing inclusivity")
	}
}

func TestDecodeSentences(t *testing.T) {
	m := New()
	payload := `{"sentences": [
		{"subject": {"person": "first", "plurality": "singular", "proximity": "proximal", "inclusivity": "exclusive"},
		 "verb": {"lemma": "sleep", "tense": "present", "aspect": "simple"}},
		{"subject": {"head": "dog", "proximity": "proximal", "plurality": "singular"},
		 "object": {"head": "rice", "proximity": "distal", "plurality": "singular"},
		 "verb": {"lemma": "see", "tense": "future", "aspect": "simple"}}
	]}`

	sentences, err := m.DecodeSentences([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}
	if got := sentences[0].Render(); got != "nüü üwi-dü" {
		t.Errorf("expected %q, got %q", "nüü üwi-dü", got)
	}
	if got := sentences[1].Render(); got != "ishapugu-ii wai-noka u-buni-wei" {
		t.Errorf("expected %q, got %q", "ishapugu-ii wai-noka u-buni-wei", got)
	}
}

func TestDecodeSentences_UnknownLemma(t *testing.T) {
	m := New()
	payload := `{"sentences": [
		{"subject": {"head": "unicorn", "proximity": "proximal", "plurality": "singular"},
		 "verb": {"lemma": "sleep", "tense": "present", "aspect": "simple"}}
	]}`

	_, err := m.DecodeSentences([]byte(payload))

	var unknown *language.UnknownLemmaError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownLemmaError, got %v", err)
	}
}

func TestDecodeSentences_AmbiguousSubject(t *testing.T) {
	m := New()
	payload := `{"sentences": [{"subject": {"mystery": true}, "verb": {"lemma": "sleep", "tense": "present", "aspect": "simple"}}]}`

	if _, err := m.DecodeSentences([]byte(payload)); err == nil {
		t.Error("expected error for subject that is neither pronoun nor noun")
	}
}

func TestSentenceSchema_AcceptsOwnExamples(t *testing.T) {
	m := New()
	s := m.SentenceSchema()
	if err := s.Check(); err != nil {
		t.Fatalf("schema does not validate: %v", err)
	}

	for _, ex := range m.Examples() {
		data, err := json.Marshal(ex.Sentence)
		if err != nil {
			t.Fatalf("marshal example %q: %v", ex.English, err)
		}
		if _, err := s.ValidateJSON(data); err != nil {
			t.Errorf("example %q does not conform to the sentence schema: %v", ex.English, err)
		}
	}
}

func TestMarshal_OmitsTargetForms(t *testing.T) {
	noun, err := NewSubjectNoun(DefaultLexicon(), "dog", ProximityProximal, PluralitySingular)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(noun)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), "ishapugu") {
		t.Errorf("target form leaked into wire representation: %s", data)
	}
}

func TestSystemPrompt_ListsVocabulary(t *testing.T) {
	prompt := New().SystemPrompt()

	for _, want := range []string{"ishapugu", "tüka", "üwi", "p>b"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected system prompt to mention %q", want)
		}
	}
}
