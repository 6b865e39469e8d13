package kethara

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/kubishi/yaduha-2/internal/language"
	"github.com/kubishi/yaduha-2/internal/schema"
)

// Module is the Kethara grammar module.
type Module struct {
	lex *language.Lexicon
}

// New returns the module backed by the built-in vocabulary.
func New() *Module {
	return &Module{lex: defaultLexicon}
}

func (m *Module) Name() string { return "kethara" }

func (m *Module) Lexicon() *language.Lexicon { return m.lex }

var allCases = []string{
	string(CaseNominative), string(CaseAccusative), string(CaseIllative),
	string(CaseElative), string(CaseAdessive), string(CaseInessive),
}

// SentenceSchema is a closed union over the two sentence shapes. Subject
// slots default to the nominative, object slots to the accusative; spatial
// cases stay available for both.
func (m *Module) SentenceSchema() *schema.Schema {
	pronounFor := func(defaultCase Case) *schema.Schema {
		return schema.Object("a personal pronoun",
			schema.Field("person", schema.Enum("grammatical person",
				string(PersonFirst), string(PersonSecond), string(PersonThird))),
			schema.Field("number", schema.Enum("grammatical number",
				string(NumberSingular), string(NumberPlural))),
			schema.Optional("case", schema.Enum("grammatical case", allCases...), string(defaultCase)),
		)
	}
	nounFor := func(defaultCase Case) *schema.Schema {
		return schema.Object("a noun",
			schema.Field("head", schema.Enum("the noun, as an English lemma",
				m.lex.Lemmas(language.CategoryNoun)...)),
			schema.Field("number", schema.Enum("grammatical number",
				string(NumberSingular), string(NumberPlural))),
			schema.Optional("case", schema.Enum("grammatical case", allCases...), string(defaultCase)),
		)
	}

	verbFor := func(lemmas []string) *schema.Schema {
		return schema.Object("the verb",
			schema.Field("lemma", schema.Enum("the verb, as an English lemma", lemmas...)),
			schema.Field("tense", schema.Enum("grammatical tense",
				string(TensePast), string(TensePresent), string(TenseFuture))),
			schema.Optional("mood", schema.Enum("grammatical mood",
				string(MoodIndicative), string(MoodConditional), string(MoodImperative)),
				string(MoodIndicative)),
			schema.Optional("politeness", schema.Enum("politeness level",
				string(PolitenessPlain), string(PolitenessPolite), string(PolitenessFormal)),
				string(PolitenessPlain)),
		)
	}

	subject := schema.Union(pronounFor(CaseNominative), nounFor(CaseNominative))
	object := schema.Union(pronounFor(CaseAccusative), nounFor(CaseAccusative))

	sv := schema.Object("an intransitive sentence: subject + verb",
		schema.Field("subject", subject),
		schema.Field("verb", verbFor(m.lex.Lemmas(language.CategoryIntransitiveVerb))),
	)
	sov := schema.Object("a transitive sentence: subject + object + verb",
		schema.Field("subject", subject),
		schema.Field("object", object),
		schema.Field("verb", verbFor(m.lex.Lemmas(language.CategoryTransitiveVerb))),
	)

	return schema.Union(sv, sov)
}

type sentenceDTO struct {
	Subject json.RawMessage `json:"subject"`
	Object  json.RawMessage `json:"object"`
	Verb    verbDTO         `json:"verb"`
}

type verbDTO struct {
	Lemma      string     `json:"lemma"`
	Tense      Tense      `json:"tense"`
	Mood       Mood       `json:"mood"`
	Politeness Politeness `json:"politeness"`
}

type pronounDTO struct {
	Person Person `json:"person"`
	Number Number `json:"number"`
	Case   Case   `json:"case"`
}

type nounDTO struct {
	Head   string `json:"head"`
	Number Number `json:"number"`
	Case   Case   `json:"case"`
}

// DecodeSentences decodes a {"sentences": [...]} payload into validated
// sentence entities. Omitted optional features fall back to their defaults:
// nominative/accusative case by slot, indicative mood, plain politeness.
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
	subject, err := m.decodeSlot(dto.Subject, CaseNominative)
	if err != nil {
		return nil, fmt.Errorf("subject: %w", err)
	}
	verb := dto.Verb
	if verb.Mood == "" {
		verb.Mood = MoodIndicative
	}
	if verb.Politeness == "" {
		verb.Politeness = PolitenessPlain
	}

	if len(dto.Object) == 0 {
		v, err := NewIntransitiveVerb(m.lex, verb.Lemma, verb.Tense, verb.Mood, verb.Politeness)
		if err != nil {
			return nil, fmt.Errorf("verb: %w", err)
		}
		return NewSubjectVerbSentence(subject, v)
	}

	object, err := m.decodeSlot(dto.Object, CaseAccusative)
	if err != nil {
		return nil, fmt.Errorf("object: %w", err)
	}
	v, err := NewTransitiveVerb(m.lex, verb.Lemma, verb.Tense, verb.Mood, verb.Politeness)
	if err != nil {
		return nil, fmt.Errorf("verb: %w", err)
	}
	return NewSubjectObjectVerbSentence(subject, object, v)
}

// slotFiller is what both slots accept: *Pronoun or *Noun.
type slotFiller interface {
	Subject
	Object
}

// decodeSlot tells a pronoun ("person") apart from a noun ("head") and
// applies the slot's default case when none is given.
func (m *Module) decodeSlot(raw json.RawMessage, defaultCase Case) (slotFiller, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	if _, isPronoun := probe["person"]; isPronoun {
		var dto pronounDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, err
		}
		if dto.Case == "" {
			dto.Case = defaultCase
		}
		return NewPronoun(dto.Person, dto.Number, dto.Case)
	}
	if _, isNoun := probe["head"]; isNoun {
		var dto nounDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, err
		}
		if dto.Case == "" {
			dto.Case = defaultCase
		}
		return NewNoun(m.lex, dto.Head, dto.Number, dto.Case)
	}
	return nil, fmt.Errorf("neither a pronoun nor a noun: %s", raw)
}

// Examples returns few-shot pairs covering both sentence shapes and both slot
// fillers.
func (m *Module) Examples() []language.Example {
	me := &Pronoun{Person: PersonFirst, Number: NumberSingular, Case: CaseNominative}
	you := &Pronoun{Person: PersonSecond, Number: NumberSingular, Case: CaseAccusative}

	sleep := mustIntransitive(m.lex, "sleep", TensePresent, MoodIndicative, PolitenessPlain)
	sing := mustIntransitive(m.lex, "sing", TensePresent, MoodIndicative, PolitenessPlain)
	see := mustTransitive(m.lex, "see", TensePresent, MoodIndicative, PolitenessPlain)
	love := mustTransitive(m.lex, "love", TensePresent, MoodIndicative, PolitenessPolite)

	birds := mustNoun(m.lex, "bird", NumberPlural, CaseNominative)
	woman := mustNoun(m.lex, "woman", NumberSingular, CaseNominative)
	man := mustNoun(m.lex, "man", NumberSingular, CaseAccusative)

	return []language.Example{
		{
			English:  "I sleep.",
			Sentence: &SubjectVerbSentence{Subject: me, Verb: sleep},
		},
		{
			English:  "The birds are singing.",
			Sentence: &SubjectVerbSentence{Subject: birds, Verb: sing},
		},
		{
			English:  "I see you.",
			Sentence: &SubjectObjectVerbSentence{Subject: me, Object: you, Verb: see},
		},
		{
			English:  "The woman loves the man.",
			Sentence: &SubjectObjectVerbSentence{Subject: woman, Object: man, Verb: love},
		},
	}
}

// SystemPrompt lays out the vocabulary and grammar for model consumption.
func (m *Module) SystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are working with Kethara, an agglutinative constructed language.\n")
	b.WriteString("Sentences follow subject-(object-)verb order. There are no articles.\n")
	b.WriteString("Only the vocabulary below exists; anything else must be decomposed or dropped.\n\n")

	classTitles := map[NounClass]string{
		NounClassHuman:    "Human nouns",
		NounClassAnimal:   "Animal nouns",
		NounClassPlant:    "Plant nouns",
		NounClassObject:   "Object nouns",
		NounClassAbstract: "Abstract nouns",
	}
	writeVocab := func(title string, entries []language.Entry) {
		b.WriteString(title + ":\n")
		w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(w, "  %s\t%s\n", e.English, e.Target)
		}
		w.Flush()
		b.WriteString("\n")
	}
	for _, class := range classOrder {
		writeVocab(classTitles[class], nounsByClass[class])
	}
	writeVocab("Transitive verbs", m.lex.Entries(language.CategoryTransitiveVerb))
	writeVocab("Intransitive verbs", m.lex.Entries(language.CategoryIntransitiveVerb))

	b.WriteString("Grammar:\n")
	b.WriteString("  - Cases: nominative (no suffix), accusative -n, illative -han,\n")
	b.WriteString("    elative -sta, adessive -lla, inessive -ssa.\n")
	b.WriteString("  - Plural nouns take -t before the case suffix.\n")
	b.WriteString("  - Pronoun stems: min (I), sin (you), han (he/she/it), me (we),\n")
	b.WriteString("    te (you all), he (they); they take the same case suffixes as nouns.\n")
	b.WriteString("  - Verbs stack ROOT+TENSE+MOOD+POLITENESS: tense -i/-a/-kse,\n")
	b.WriteString("    mood -isi (conditional) or -ko (imperative), politeness -vat or -nne.\n")
	b.WriteString("  - Vowel harmony: if the root contains e, i, ä, ö or y, suffix vowels\n")
	b.WriteString("    shift a>ä, o>ö, u>y.\n")
	return b.String()
}

func mustIntransitive(lex *language.Lexicon, lemma string, tense Tense, mood Mood, politeness Politeness) *IntransitiveVerb {
	v, err := NewIntransitiveVerb(lex, lemma, tense, mood, politeness)
	if err != nil {
		panic(err)
	}
	return v
}

func mustTransitive(lex *language.Lexicon, lemma string, tense Tense, mood Mood, politeness Politeness) *TransitiveVerb {
	v, err := NewTransitiveVerb(lex, lemma, tense, mood, politeness)
	if err != nil {
		panic(err)
	}
	return v
}

func mustNoun(lex *language.Lexicon, head string, number Number, c Case) *Noun {
	n, err := NewNoun(lex, head, number, c)
	if err != nil {
		panic(err)
	}
	return n
}
