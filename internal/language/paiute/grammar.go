// Package paiute implements the Owens Valley Paiute grammar: typed entities,
// closed feature enumerations, and the pure rendering engine that turns
// structured sentences into surface text.
//
// Word order is subject (object) verb. Object arguments surface as a pronoun
// prefix on the verb, which triggers the lenis consonant mutation on the verb
// stem. Subject and object nouns take proximity-keyed suffixes.
package paiute

import (
	"fmt"
	"strings"

	"github.com/kubishi/yaduha-2/internal/language"
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

type Plurality string

const (
	PluralitySingular Plurality = "singular"
	PluralityDual     Plurality = "dual"
	PluralityPlural   Plurality = "plural"
)

func (p Plurality) valid() bool {
	return p == PluralitySingular || p == PluralityDual || p == PluralityPlural
}

// Proximity distinguishes this/these (proximal) from that/those (distal).
type Proximity string

const (
	ProximityProximal Proximity = "proximal"
	ProximityDistal   Proximity = "distal"
)

func (p Proximity) valid() bool {
	return p == ProximityProximal || p == ProximityDistal
}

// subjectSuffix is the nominal suffix marking a subject noun.
func (p Proximity) subjectSuffix() string {
	if p == ProximityProximal {
		return "ii"
	}
	return "uu"
}

// objectSuffix is the nominal suffix marking an object noun. Stems ending in
// a glottal stop take the vowel-initial variant.
func (p Proximity) objectSuffix(endsInGlottal bool) string {
	if p == ProximityProximal {
		if endsInGlottal {
			return "eika"
		}
		return "neika"
	}
	if endsInGlottal {
		return "uka"
	}
	return "noka"
}

type Inclusivity string

const (
	InclusivityInclusive Inclusivity = "inclusive"
	InclusivityExclusive Inclusivity = "exclusive"
)

func (i Inclusivity) valid() bool {
	return i == InclusivityInclusive || i == InclusivityExclusive
}

type Tense string

const (
	TensePast    Tense = "past"
	TensePresent Tense = "present"
	TenseFuture  Tense = "future"
)

func (t Tense) valid() bool {
	return t == TensePast || t == TensePresent || t == TenseFuture
}

type Aspect string

const (
	AspectSimple     Aspect = "simple"
	AspectContinuous Aspect = "continuous"
	AspectPerfect    Aspect = "perfect"
)

func (a Aspect) valid() bool {
	return a == AspectSimple || a == AspectContinuous || a == AspectPerfect
}

// lenisMap drives the stem-initial consonant mutation applied to verb stems
// preceded by an object pronoun prefix.
var lenisMap = map[byte]string{
	'p': "b",
	't': "d",
	'k': "g",
	's': "z",
	'm': "w̃",
}

// toLenis mutates the initial consonant of a stem to its lenis counterpart.
// Stems outside the mutation table are returned unchanged.
func toLenis(stem string) string {
	if stem == "" {
		return stem
	}
	if lenis, ok := lenisMap[stem[0]]; ok {
		return lenis + stem[1:]
	}
	return stem
}

// Subject is a filled subject slot: *Pronoun or *SubjectNoun.
type Subject interface {
	subjectText() string
}

// Object is a filled object slot: *Pronoun or *ObjectNoun. An object always
// contributes a pronoun prefix to the verb; only object nouns contribute a
// standalone word.
type Object interface {
	objectPrefix() string
	objectText() (string, bool)
}

// Pronoun is a person/plurality/proximity/inclusivity pronoun usable in both
// subject and object slots.
type Pronoun struct {
	Person      Person      `json:"person"`
	Plurality   Plurality   `json:"plurality"`
	Proximity   Proximity   `json:"proximity"`
	Inclusivity Inclusivity `json:"inclusivity"`
	Reflexive   bool        `json:"reflexive"`
}

// NewPronoun validates the feature combination and builds a pronoun.
func NewPronoun(person Person, plurality Plurality, proximity Proximity, inclusivity Inclusivity, reflexive bool) (*Pronoun, error) {
	p := &Pronoun{
		Person:      person,
		Plurality:   plurality,
		Proximity:   proximity,
		Inclusivity: inclusivity,
		Reflexive:   reflexive,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pronoun) validate() error {
	if !p.Person.valid() {
		return fmt.Errorf("invalid person %q", p.Person)
	}
	if !p.Plurality.valid() {
		return fmt.Errorf("invalid plurality %q", p.Plurality)
	}
	if !p.Proximity.valid() {
		return fmt.Errorf("invalid proximity %q", p.Proximity)
	}
	if !p.Inclusivity.valid() {
		return fmt.Errorf("invalid inclusivity %q", p.Inclusivity)
	}
	return nil
}

// SubjectForm returns the free-standing subject pronoun.
func (p *Pronoun) SubjectForm() string {
	switch p.Person {
	case PersonFirst:
		switch p.Plurality {
		case PluralitySingular:
			return "nüü"
		case PluralityDual:
			return "taa"
		default:
			if p.Inclusivity == InclusivityInclusive {
				return "taagwa"
			}
			return "nüügwa"
		}
	case PersonSecond:
		if p.Plurality == PluralitySingular {
			return "üü"
		}
		return "üügwa"
	default:
		if p.Plurality == PluralitySingular {
			if p.Proximity == ProximityProximal {
				return "mahu"
			}
			return "uhu"
		}
		if p.Proximity == ProximityProximal {
			return "mahuw̃a"
		}
		return "uhuw̃a"
	}
}

// ObjectForm returns the bound object pronoun used as a verb prefix.
func (p *Pronoun) ObjectForm() string {
	switch p.Person {
	case PersonFirst:
		switch p.Plurality {
		case PluralitySingular:
			return "i"
		case PluralityDual:
			return "ta"
		default:
			if p.Inclusivity == InclusivityInclusive {
				return "tei"
			}
			return "ni"
		}
	case PersonSecond:
		if p.Plurality == PluralitySingular {
			return "ü"
		}
		return "üi"
	default:
		if p.Reflexive {
			return "na"
		}
		if p.Plurality == PluralitySingular {
			if p.Proximity == ProximityProximal {
				return "a"
			}
			return "u"
		}
		if p.Proximity == ProximityProximal {
			return "ai"
		}
		return "ui"
	}
}

func (p *Pronoun) subjectText() string { return p.SubjectForm() }

func (p *Pronoun) objectPrefix() string { return p.ObjectForm() }

func (p *Pronoun) objectText() (string, bool) { return "", false }

// SubjectNoun is a noun filling the subject slot. The target form is resolved
// from the lexicon at construction; rendering never consults external state.
type SubjectNoun struct {
	Head      string    `json:"head"`
	Proximity Proximity `json:"proximity"`
	Plurality Plurality `json:"plurality"`

	target string
}

// NewSubjectNoun builds a subject noun, failing with UnknownLemmaError when
// head is not in the noun partition.
func NewSubjectNoun(lex *language.Lexicon, head string, proximity Proximity, plurality Plurality) (*SubjectNoun, error) {
	if !proximity.valid() {
		return nil, fmt.Errorf("invalid proximity %q", proximity)
	}
	if !plurality.valid() {
		return nil, fmt.Errorf("invalid plurality %q", plurality)
	}
	target, err := lex.Lookup(language.CategoryNoun, head)
	if err != nil {
		return nil, err
	}
	return &SubjectNoun{Head: head, Proximity: proximity, Plurality: plurality, target: target}, nil
}

func (n *SubjectNoun) subjectText() string {
	return n.target + "-" + n.Proximity.subjectSuffix()
}

// ObjectNoun is a noun filling the object slot.
type ObjectNoun struct {
	Head      string    `json:"head"`
	Proximity Proximity `json:"proximity"`
	Plurality Plurality `json:"plurality"`

	target string
}

// NewObjectNoun builds an object noun, failing with UnknownLemmaError when
// head is not in the noun partition.
func NewObjectNoun(lex *language.Lexicon, head string, proximity Proximity, plurality Plurality) (*ObjectNoun, error) {
	if !proximity.valid() {
		return nil, fmt.Errorf("invalid proximity %q", proximity)
	}
	if !plurality.valid() {
		return nil, fmt.Errorf("invalid plurality %q", plurality)
	}
	target, err := lex.Lookup(language.CategoryNoun, head)
	if err != nil {
		return nil, err
	}
	return &ObjectNoun{Head: head, Proximity: proximity, Plurality: plurality, target: target}, nil
}

// objectPrefix is the third-person pronoun prefix agreeing with the noun's
// plurality and proximity.
func (n *ObjectNoun) objectPrefix() string {
	agreeing := Pronoun{
		Person:      PersonThird,
		Plurality:   n.Plurality,
		Proximity:   n.Proximity,
		Inclusivity: InclusivityExclusive,
	}
	return agreeing.ObjectForm()
}

func (n *ObjectNoun) objectText() (string, bool) {
	endsInGlottal := strings.HasSuffix(n.target, "'")
	return n.target + "-" + n.Proximity.objectSuffix(endsInGlottal), true
}

// IntransitiveVerb is a verb without an object slot.
type IntransitiveVerb struct {
	Lemma  string `json:"lemma"`
	Tense  Tense  `json:"tense"`
	Aspect Aspect `json:"aspect"`

	stem string
}

// NewIntransitiveVerb builds an intransitive verb, failing with
// UnknownLemmaError when lemma is not in the intransitive partition.
func NewIntransitiveVerb(lex *language.Lexicon, lemma string, tense Tense, aspect Aspect) (*IntransitiveVerb, error) {
	if err := validateTenseAspect(tense, aspect); err != nil {
		return nil, err
	}
	stem, err := lex.Lookup(language.CategoryIntransitiveVerb, lemma)
	if err != nil {
		return nil, err
	}
	return &IntransitiveVerb{Lemma: lemma, Tense: tense, Aspect: aspect, stem: stem}, nil
}

func (v *IntransitiveVerb) render() string {
	return v.stem + "-" + verbSuffix(v.Tense, v.Aspect)
}

// TransitiveVerb is a verb requiring an object slot.
type TransitiveVerb struct {
	Lemma  string `json:"lemma"`
	Tense  Tense  `json:"tense"`
	Aspect Aspect `json:"aspect"`

	stem string
}

// NewTransitiveVerb builds a transitive verb, failing with UnknownLemmaError
// when lemma is not in the transitive partition.
func NewTransitiveVerb(lex *language.Lexicon, lemma string, tense Tense, aspect Aspect) (*TransitiveVerb, error) {
	if err := validateTenseAspect(tense, aspect); err != nil {
		return nil, err
	}
	stem, err := lex.Lookup(language.CategoryTransitiveVerb, lemma)
	if err != nil {
		return nil, err
	}
	return &TransitiveVerb{Lemma: lemma, Tense: tense, Aspect: aspect, stem: stem}, nil
}

// render conjugates the verb with its agreeing object prefix. The prefix
// triggers the lenis mutation on the stem.
func (v *TransitiveVerb) render(objectPrefix string) string {
	return objectPrefix + "-" + toLenis(v.stem) + "-" + verbSuffix(v.Tense, v.Aspect)
}

func validateTenseAspect(tense Tense, aspect Aspect) error {
	if !tense.valid() {
		return fmt.Errorf("invalid tense %q", tense)
	}
	if !aspect.valid() {
		return fmt.Errorf("invalid aspect %q", aspect)
	}
	return nil
}

// verbSuffix selects the tense/aspect suffix. The future collapses all
// aspects into a single form.
func verbSuffix(tense Tense, aspect Aspect) string {
	switch tense {
	case TensePast:
		switch aspect {
		case AspectPerfect:
			return "pü"
		case AspectContinuous:
			return "ti"
		default:
			return "ku"
		}
	case TensePresent:
		switch aspect {
		case AspectPerfect:
			return "pü"
		case AspectContinuous:
			return "ti"
		default:
			return "dü"
		}
	default:
		return "wei"
	}
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
// verb. Pronoun objects surface only as the verb's pronoun prefix.
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
	verb := s.Verb.render(s.Object.objectPrefix())
	if objectWord, ok := s.Object.objectText(); ok {
		return s.Subject.subjectText() + " " + objectWord + " " + verb
	}
	return s.Subject.subjectText() + " " + verb
}
