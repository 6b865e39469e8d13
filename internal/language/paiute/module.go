package paiute

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/kubishi/yaduha-2/internal/language"
	"github.com/kubishi/yaduha-2/internal/schema"
)

// Module is the Owens Valley Paiute grammar module.
type Module struct {
	lex *language.Lexicon
}

// New returns the module backed by the built-in vocabulary.
func New() *Module {
	return &Module{lex: defaultLexicon}
}

func (m *Module) Name() string { return "paiute" }

func (m *Module) Lexicon() *language.Lexicon { return m.lex }

// SentenceSchema is a closed union over the two sentence shapes. Lemma fields
// enumerate the lexicon, so a conforming parse can never name an unknown word.
func (m *Module) SentenceSchema() *schema.Schema {
	pronoun := schema.Object("a personal pronoun",
		schema.Field("person", schema.Enum("grammatical person",
			string(PersonFirst), string(PersonSecond), string(PersonThird))),
		schema.Field("plurality", schema.Enum("grammatical number",
			string(PluralitySingular), string(PluralityDual), string(PluralityPlural))),
		schema.Field("proximity", schema.Enum("this/these vs. that/those",
			string(ProximityProximal), string(ProximityDistal))),
		schema.Field("inclusivity", schema.Enum("whether 'we' includes the listener",
			string(InclusivityInclusive), string(InclusivityExclusive))),
		schema.Optional("reflexive", schema.Bool("object refers back to the subject"), false),
	)

	nounFeatures := []schema.Property{
		schema.Field("head", schema.Enum("the noun, as an English lemma",
			m.lex.Lemmas(language.CategoryNoun)...)),
		schema.Field("proximity", schema.Enum("this/these vs. that/those",
			string(ProximityProximal), string(ProximityDistal))),
		schema.Field("plurality", schema.Enum("grammatical number",
			string(PluralitySingular), string(PluralityDual), string(PluralityPlural))),
	}

	subject := schema.Union(pronoun, schema.Object("a subject noun", nounFeatures...))
	object := schema.Union(pronoun, schema.Object("an object noun", nounFeatures...))

	tense := schema.Field("tense", schema.Enum("grammatical tense",
		string(TensePast), string(TensePresent), string(TenseFuture)))
	aspect := schema.Field("aspect", schema.Enum("grammatical aspect",
		string(AspectSimple), string(AspectContinuous), string(AspectPerfect)))

	sv := schema.Object("an intransitive sentence: subject + verb",
		schema.Field("subject", subject),
		schema.Field("verb", schema.Object("the intransitive verb",
			schema.Field("lemma", schema.Enum("the verb, as an English lemma",
				m.lex.Lemmas(language.CategoryIntransitiveVerb)...)),
			tense, aspect,
		)),
	)
	sov := schema.Object("a transitive sentence: subject + object + verb",
		schema.Field("subject", subject),
		schema.Field("object", object),
		schema.Field("verb", schema.Object("the transitive verb",
			schema.Field("lemma", schema.Enum("the verb, as an English lemma",
				m.lex.Lemmas(language.CategoryTransitiveVerb)...)),
			tense, aspect,
		)),
	)

	return schema.Union(sv, sov)
}

// Wire DTOs for DecodeSentences. The sentence shape is chosen by the presence
// of "object"; subject and object slots are told apart by their keys ("person"
// marks a pronoun, "head" a noun).
type sentenceDTO struct {
	Subject json.RawMessage `json:"subject"`
	Object  json.RawMessage `json:"object"`
	Verb    verbDTO         `json:"verb"`
}

type verbDTO struct {
	Lemma  string `json:"lemma"`
	Tense  Tense  `json:"tense"`
	Aspect Aspect `json:"aspect"`
}

type pronounDTO struct {
	Person      Person      `json:"person"`
	Plurality   Plurality   `json:"plurality"`
	Proximity   Proximity   `json:"proximity"`
	Inclusivity Inclusivity `json:"inclusivity"`
	Reflexive   bool        `json:"reflexive"`
}

type nounDTO struct {
	Head      string    `json:"head"`
	Proximity Proximity `json:"proximity"`
	Plurality Plurality `json:"plurality"`
}

// DecodeSentences decodes a {"sentences": [...]} payload into validated
// sentence entities. Lemma resolution happens here, so a payload naming a
// word outside the lexicon fails with UnknownLemmaError.
func (m *Module) DecodeSentences(data []byte) ([]language.Sentence, error) {
	var payload struct {
		Sentences []sentenceDTO `json:"sentences"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode sentences: %w", err)
	}

	out := make([]language.Sentence, 0, len(payload.Sentences))
	for i, dto := range payload.Sentences {
		sentence, err := m.decodeSentence(dto)
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i, err)
		}
		out = append(out, sentence)
	}
	return out, nil
}

func (m *Module) decodeSentence(dto sentenceDTO) (language.Sentence, error) {
	subject, err := m.decodeSubject(dto.Subject)
	if err != nil {
		return nil, fmt.Errorf("subject: %w", err)
	}

	if len(dto.Object) == 0 {
		verb, err := NewIntransitiveVerb(m.lex, dto.Verb.Lemma, dto.Verb.Tense, dto.Verb.Aspect)
		if err != nil {
			return nil, fmt.Errorf("verb: %w", err)
		}
		return NewSubjectVerbSentence(subject, verb)
	}

	object, err := m.decodeObject(dto.Object)
	if err != nil {
		return nil, fmt.Errorf("object: %w", err)
	}
	verb, err := NewTransitiveVerb(m.lex, dto.Verb.Lemma, dto.Verb.Tense, dto.Verb.Aspect)
	if err != nil {
		return nil, fmt.Errorf("verb: %w", err)
	}
	return NewSubjectObjectVerbSentence(subject, object, verb)
}

func (m *Module) decodeSubject(raw json.RawMessage) (Subject, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	if _, isPronoun := probe["person"]; isPronoun {
		var dto pronounDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, err
		}
		return NewPronoun(dto.Person, dto.Plurality, dto.Proximity, dto.Inclusivity, dto.Reflexive)
	}
	if _, isNoun := probe["head"]; isNoun {
		var dto nounDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, err
		}
		return NewSubjectNoun(m.lex, dto.Head, dto.Proximity, dto.Plurality)
	}
	return nil, fmt.Errorf("neither a pronoun nor a noun: %s", raw)
}

func (m *Module) decodeObject(raw json.RawMessage) (Object, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	if _, isPronoun := probe["person"]; isPronoun {
		var dto pronounDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, err
		}
		return NewPronoun(dto.Person, dto.Plurality, dto.Proximity, dto.Inclusivity, dto.Reflexive)
	}
	if _, isNoun := probe["head"]; isNoun {
		var dto nounDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, err
		}
		return NewObjectNoun(m.lex, dto.Head, dto.Proximity, dto.Plurality)
	}
	return nil, fmt.Errorf("neither a pronoun nor a noun: %s", raw)
}

// Examples returns few-shot pairs covering both sentence shapes and both slot
// fillers.
func (m *Module) Examples() []language.Example {
	me := &Pronoun{Person: PersonFirst, Plurality: PluralitySingular, Proximity: ProximityProximal, Inclusivity: InclusivityExclusive}
	them := &Pronoun{Person: PersonThird, Plurality: PluralityPlural, Proximity: ProximityDistal, Inclusivity: InclusivityExclusive}

	sleep := mustIntransitive(m.lex, "sleep", TensePresent, AspectSimple)
	run := mustIntransitive(m.lex, "run", TensePast, AspectContinuous)
	see := mustTransitive(m.lex, "see", TenseFuture, AspectSimple)
	eat := mustTransitive(m.lex, "eat", TensePast, AspectPerfect)

	dogSubject := mustSubjectNoun(m.lex, "dog", ProximityProximal, PluralitySingular)
	riceObject := mustObjectNoun(m.lex, "rice", ProximityDistal, PluralitySingular)

	return []language.Example{
		{
			English:  "I am sleeping.",
			Sentence: &SubjectVerbSentence{Subject: me, Verb: sleep},
		},
		{
			English:  "This dog was running.",
			Sentence: &SubjectVerbSentence{Subject: dogSubject, Verb: run},
		},
		{
			English:  "I will see them.",
			Sentence: &SubjectObjectVerbSentence{Subject: me, Object: them, Verb: see},
		},
		{
			English:  "This dog ate that rice.",
			Sentence: &SubjectObjectVerbSentence{Subject: dogSubject, Object: riceObject, Verb: eat},
		},
	}
}

// SystemPrompt lays out the vocabulary and grammar for model consumption.
func (m *Module) SystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are working with Owens Valley Paiute, a Uto-Aztecan language.\n")
	b.WriteString("Sentences follow subject-(object-)verb order. Only the vocabulary below exists;\n")
	b.WriteString("anything else must be decomposed or dropped.\n\n")

	writeVocab := func(title string, entries []language.Entry) {
		b.WriteString(title + ":\n")
		w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(w, "  %s\t%s\n", e.English, e.Target)
		}
		w.Flush()
		b.WriteString("\n")
	}
	writeVocab("Nouns", m.lex.Entries(language.CategoryNoun))
	writeVocab("Transitive verbs", m.lex.Entries(language.CategoryTransitiveVerb))
	writeVocab("Intransitive verbs", m.lex.Entries(language.CategoryIntransitiveVerb))

	b.WriteString("Grammar:\n")
	b.WriteString("  - Subject nouns take -ii (proximal, \"this\") or -uu (distal, \"that\").\n")
	b.WriteString("  - Object nouns take -neika/-eika (proximal) or -noka/-uka (distal);\n")
	b.WriteString("    the vowel-initial variant follows a glottal stop.\n")
	b.WriteString("  - The object also appears as a pronoun prefix on the verb, which softens\n")
	b.WriteString("    the verb's first consonant (p>b, t>d, k>g, s>z, m>w̃).\n")
	b.WriteString("  - Verb suffixes: past -ku (simple), -ti (continuous), -pü (perfect);\n")
	b.WriteString("    present -dü, -ti, -pü; future -wei.\n")
	return b.String()
}

func mustIntransitive(lex *language.Lexicon, lemma string, tense Tense, aspect Aspect) *IntransitiveVerb {
	v, err := NewIntransitiveVerb(lex, lemma, tense, aspect)
	if err != nil {
		panic(err)
	}
	return v
}

func mustTransitive(lex *language.Lexicon, lemma string, tense Tense, aspect Aspect) *TransitiveVerb {
	v, err := NewTransitiveVerb(lex, lemma, tense, aspect)
	if err != nil {
		panic(err)
	}
	return v
}

func mustSubjectNoun(lex *language.Lexicon, head string, proximity Proximity, plurality Plurality) *SubjectNoun {
	n, err := NewSubjectNoun(lex, head, proximity, plurality)
	if err != nil {
		panic(err)
	}
	return n
}

func mustObjectNoun(lex *language.Lexicon, head string, proximity Proximity, plurality Plurality) *ObjectNoun {
	n, err := NewObjectNoun(lex, head, proximity, plurality)
	if err != nil {
		panic(err)
	}
	return n
}
