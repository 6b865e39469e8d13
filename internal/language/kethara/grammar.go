// Package kethara implements Kethara, an agglutinative constructed language:
// semantic noun classes, a directional case system, vowel harmony in all
// suffixes, and tense-mood-politeness stacking on verbs. Word order is
// subject (object) verb.
package kethara

import (
	"fmt"
	"strings"

	"github.com/kubishi/yaduha-2/internal/language"
)

// NounClass is a semantic category, not grammatical gender.
type NounClass string

const (
	NounClassHuman    NounClass = "human"
	NounClassAnimal   NounClass = "animal"
	NounClassPlant    NounClass = "plant"
	NounClassObject   NounClass = "object"
	NounClassAbstract NounClass = "abstract"
)

type Person string

const (
	PersonFirst  Person = "first"
	PersonSecond Person = "second"
	PersonThird  Person = "third"
)

func (p Person) valid() bool {
	return p == PersonFirst || p == PersonSecond || p == PersonThird
}

type Number string

const (
	NumberSingular Number = "singular"
	NumberPlural   Number = "plural"
)

func (n Number) valid() bool {
	return n == NumberSingular || n == NumberPlural
}

// Case covers grammatical role plus the spatial/directional relations.
type Case string

const (
	CaseNominative Case = "nominative"
	CaseAccusative Case = "accusative"
	CaseIllative   Case = "illative" // into, towards
	CaseElative    Case = "elative"  // out of, from
	CaseAdessive   Case = "adessive" // at, on
	CaseInessive   Case = "inessive" // in
)

var caseSuffix = map[Case]string{
	CaseNominative: "",
	CaseAccusative: "n",
	CaseIllative:   "han",
	CaseElative:    "sta",
	CaseAdessive:   "lla",
	CaseInessive:   "ssa",
}

func (c Case) valid() bool {
	_, ok := caseSuffix[c]
	return ok
}

type Tense string

const (
	TensePast    Tense = "past"
	TensePresent Tense = "present"
	TenseFuture  Tense = "future"
)

var tenseSuffix = map[Tense]string{
	TensePast:    "i",
	TensePresent: "a",
	TenseFuture:  "kse",
}

func (t Tense) valid() bool {
	_, ok := tenseSuffix[t]
	return ok
}

type Mood string

const (
	MoodIndicative  Mood = "indicative"
	MoodConditional Mood = "conditional"
	MoodImperative  Mood = "imperative"
)

var moodSuffix = map[Mood]string{
	MoodIndicative:  "",
	MoodConditional: "isi",
	MoodImperative:  "ko",
}

func (m Mood) valid() bool {
	_, ok := moodSuffix[m]
	return ok
}

// Politeness is marked on the verb, not in the pronoun system.
type Politeness string

const (
	PolitenessPlain  Politeness = "plain"
	PolitenessPolite Politeness = "polite"
	PolitenessFormal Politeness = "formal"
)

var politenessSuffix = map[Politeness]string{
	PolitenessPlain:  "",
	PolitenessPolite: "vat",
	PolitenessFormal: "nne",
}

func (p Politeness) valid() bool {
	_, ok := politenessSuffix[p]
	return ok
}

const pluralSuffix = "t"

// hasFrontVowels reports whether a root contains e, i, ä, ö or y.
func hasFrontVowels(root string) bool {
	return strings.ContainsAny(strings.ToLower(root), "eiäöy")
}

// harmonize adapts a suffix's vowels to a front-vowel root: a>ä, o>ö, u>y.
// Every suffix in the language harmonizes against the bare root.
func harmonize(suffix, root string) string {
	if !hasFrontVowels(root) {
		return suffix
	}
	return strings.NewReplacer("a", "ä", "o", "ö", "u", "y").Replace(suffix)
}

// Subject is a filled subject slot: *Pronoun or *Noun.
type Subject interface {
	subjectText() string
}

// Object is a filled object slot: *Pronoun or *Noun.
type Object interface {
	objectText() string
}

// Pronoun is a case-marked pronoun. Kethara pronouns carry no gender and no
// formality distinction.
type Pronoun struct {
	Person Person `json:"person"`
	Number Number `json:"number"`
	Case   Case   `json:"case"`
}

// NewPronoun validates the feature combination and builds a pronoun.
func NewPronoun(person Person, number Number, c Case) (*Pronoun, error) {
	if !person.valid() {
		return nil, fmt.Errorf("invalid person %q", person)
	}
	if !number.valid() {
		return nil, fmt.Errorf("invalid number %q", number)
	}
	if !c.valid() {
		return nil, fmt.Errorf("invalid case %q", c)
	}
	return &Pronoun{Person: person, Number: number, Case: c}, nil
}

// Stem returns the pronoun root before case marking.
func (p *Pronoun) Stem() string {
	switch p.Person {
	case PersonFirst:
		if p.Number == NumberSingular {
			return "min"
		}
		return "me"
	case PersonSecond:
		if p.Number == NumberSingular {
			return "sin"
		}
		return "te"
	default:
		if p.Number == NumberSingular {
			return "han"
		}
		return "he"
	}
}

func (p *Pronoun) render() string {
	stem := p.Stem()
	return stem + harmonize(caseSuffix[p.Case], stem)
}

func (p *Pronoun) subjectText() string { return p.render() }
func (p *Pronoun) objectText() string  { return p.render() }

// Noun is a case- and number-marked noun. The target root and semantic class
// are resolved from the lexicon at construction.
type Noun struct {
	Head   string `json:"head"`
	Number Number `json:"number"`
	Case   Case   `json:"case"`

	target string
	class  NounClass
}

// NewNoun builds a noun, failing with UnknownLemmaError when head is not in
// the noun partition.
func NewNoun(lex *language.Lexicon, head string, number Number, c Case) (*Noun, error) {
	if !number.valid() {
		return nil, fmt.Errorf("invalid number %q", number)
	}
	if !c.valid() {
		return nil, fmt.Errorf("invalid case %q", c)
	}
	target, err := lex.Lookup(language.CategoryNoun, head)
	if err != nil {
		return nil, err
	}
	class, ok := ClassOf(head)
	if !ok {
		return nil, &language.UnknownLemmaError{Category: language.CategoryNoun, Lemma: head}
	}
	return &Noun{Head: head, Number: number, Case: c, target: target, class: class}, nil
}

// Class reports the noun's semantic class.
func (n *Noun) Class() NounClass { return n.class }

// render inflects the noun: ROOT (+plural) + harmonized case suffix.
func (n *Noun) render() string {
	out := n.target
	if n.Number == NumberPlural {
		out += pluralSuffix
	}
	return out + harmonize(caseSuffix[n.Case], n.target)
}

func (n *Noun) subjectText() string { return n.render() }
func (n *Noun) objectText() string  { return n.render() }

// IntransitiveVerb is a verb without an object slot.
type IntransitiveVerb struct {
	Lemma      string     `json:"lemma"`
	Tense      Tense      `json:"tense"`
	Mood       Mood       `json:"mood"`
	Politeness Politeness `json:"politeness"`

	root string
}

// NewIntransitiveVerb builds an intransitive verb, failing with
// UnknownLemmaError when lemma is not in the intransitive partition.
func NewIntransitiveVerb(lex *language.Lexicon, lemma string, tense Tense, mood Mood, politeness Politeness) (*IntransitiveVerb, error) {
	if err := validateVerbFeatures(tense, mood, politeness); err != nil {
		return nil, err
	}
	root, err := lex.Lookup(language.CategoryIntransitiveVerb, lemma)
	if err != nil {
		return nil, err
	}
	return &IntransitiveVerb{Lemma: lemma, Tense: tense, Mood: mood, Politeness: politeness, root: root}, nil
}

func (v *IntransitiveVerb) render() string {
	return conjugate(v.root, v.Tense, v.Mood, v.Politeness)
}

// TransitiveVerb is a verb requiring an object slot.
type TransitiveVerb struct {
	Lemma      string     `json:"lemma"`
	Tense      Tense      `json:"tense"`
	Mood       Mood       `json:"mood"`
	Politeness Politeness `json:"politeness"`

	root string
}

// NewTransitiveVerb builds a transitive verb, failing with UnknownLemmaError
// when lemma is not in the transitive partition.
func NewTransitiveVerb(lex *language.Lexicon, lemma string, tense Tense, mood Mood, politeness Politeness) (*TransitiveVerb, error) {
	if err := validateVerbFeatures(tense, mood, politeness); err != nil {
		return nil, err
	}
	root, err := lex.Lookup(language.CategoryTransitiveVerb, lemma)
	if err != nil {
		return nil, err
	}
	return &TransitiveVerb{Lemma: lemma, Tense: tense, Mood: mood, Politeness: politeness, root: root}, nil
}

func (v *TransitiveVerb) render() string {
	return conjugate(v.root, v.Tense, v.Mood, v.Politeness)
}

func validateVerbFeatures(tense Tense, mood Mood, politeness Politeness) error {
	if !tense.valid() {
		return fmt.Errorf("invalid tense %q", tense)
	}
	if !mood.valid() {
		return fmt.Errorf("invalid mood %q", mood)
	}
	if !politeness.valid() {
		return fmt.Errorf("invalid politeness %q", politeness)
	}
	return nil
}

// conjugate stacks suffixes in the fixed order ROOT+TENSE+MOOD+POLITENESS,
// each harmonized against the root.
func conjugate(root string, tense Tense, mood Mood, politeness Politeness) string {
	return root +
		harmonize(tenseSuffix[tense], root) +
		harmonize(moodSuffix[mood], root) +
		harmonize(politenessSuffix[politeness], root)
}

// SubjectVerbSentence is the intransitive sentence shape: subject verb.
type SubjectVerbSentence struct {
	Subject Subject           `json:"subject"`
	Verb    *IntransitiveVerb `json:"verb"`
}

// NewSubjectVerbSentence fills the SV shape.
func NewSubjectVerbSentence(subject Subject, verb *IntransitiveVerb) (*SubjectVerbSentence, error) {
	if subject == nil || verb == nil {
		return nil, fmt.Errorf("subject and verb are required")
	}
	return &SubjectVerbSentence{Subject: subject, Verb: verb}, nil
}

func (s *SubjectVerbSentence) Render() string {
	return s.Subject.subjectText() + " " + s.Verb.render()
}

// SubjectObjectVerbSentence is the transitive sentence shape: subject object
// verb.
type SubjectObjectVerbSentence struct {
	Subject Subject         `json:"subject"`
	Object  Object          `json:"object"`
	Verb    *TransitiveVerb `json:"verb"`
}

// NewSubjectObjectVerbSentence fills the SOV shape.
func NewSubjectObjectVerbSentence(subject Subject, object Object, verb *TransitiveVerb) (*SubjectObjectVerbSentence, error) {
	if subject == nil || object == nil || verb == nil {
		return nil, fmt.Errorf("subject, object and verb are required")
	}
	return &SubjectObjectVerbSentence{Subject: subject, Object: object, Verb: verb}, nil
}

func (s *SubjectObjectVerbSentence) Render() string {
	return s.Subject.subjectText() + " " + s.Object.objectText() + " " + s.Verb.render()
}
