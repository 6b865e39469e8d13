// Package language defines the lexicon and the grammar-entity contracts shared
// by all target languages. A target language implements Module; everything
// else (pipeline, agentic translator, CLI) works against that interface.
package language

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/kubishi/yaduha-2/internal/schema"
)

// Category partitions the lexicon by part of speech and verb valence.
type Category string

const (
	CategoryNoun             Category = "noun"
	CategoryTransitiveVerb   Category = "transitive_verb"
	CategoryIntransitiveVerb Category = "intransitive_verb"
)

// Entry maps an English lemma to its target-language base form.
type Entry struct {
	English string
	Target  string
}

// UnknownLemmaError reports a Noun/Verb entity built with a lemma absent from
// its lexicon partition. It is raised at entity construction, never during
// rendering.
type UnknownLemmaError struct {
	Category Category
	Lemma    string
}

func (e *UnknownLemmaError) Error() string {
	return fmt.Sprintf("unknown %s lemma %q", e.Category, e.Lemma)
}

// Lexicon is the immutable source-to-target vocabulary, partitioned by
// category. Build it once at startup and share it freely; it is safe for
// concurrent readers.
type Lexicon struct {
	entries map[Category][]Entry
	index   map[Category]map[string]string
}

// NewLexicon builds a lexicon from per-category entry lists. Target forms are
// NFC-normalized so rendered output is byte-stable regardless of how the
// vocabulary data was authored. A duplicate English lemma within a category is
// a construction error.
func NewLexicon(nouns, transitive, intransitive []Entry) (*Lexicon, error) {
	l := &Lexicon{
		entries: make(map[Category][]Entry, 3),
		index:   make(map[Category]map[string]string, 3),
	}
	for cat, list := range map[Category][]Entry{
		CategoryNoun:             nouns,
		CategoryTransitiveVerb:   transitive,
		CategoryIntransitiveVerb: intransitive,
	} {
		idx := make(map[string]string, len(list))
		ordered := make([]Entry, 0, len(list))
		for _, e := range list {
			if _, dup := idx[e.English]; dup {
				return nil, fmt.Errorf("duplicate %s lemma %q", cat, e.English)
			}
			target := norm.NFC.String(e.Target)
			idx[e.English] = target
			ordered = append(ordered, Entry{English: e.English, Target: target})
		}
		l.entries[cat] = ordered
		l.index[cat] = idx
	}
	return l, nil
}

// MustLexicon is NewLexicon for static vocabulary tables.
func MustLexicon(nouns, transitive, intransitive []Entry) *Lexicon {
	l, err := NewLexicon(nouns, transitive, intransitive)
	if err != nil {
		panic(err)
	}
	return l
}

// Lookup resolves an English lemma to its target form within a category.
func (l *Lexicon) Lookup(cat Category, lemma string) (string, error) {
	target, ok := l.index[cat][lemma]
	if !ok {
		return "", &UnknownLemmaError{Category: cat, Lemma: lemma}
	}
	return target, nil
}

// Has reports whether the category contains the lemma.
func (l *Lexicon) Has(cat Category, lemma string) bool {
	_, ok := l.index[cat][lemma]
	return ok
}

// Lemmas returns the English lemmas of a category in load order, for use as
// closed enumerations in parse schemas.
func (l *Lexicon) Lemmas(cat Category) []string {
	entries := l.entries[cat]
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.English
	}
	return out
}

// Entries returns a copy of the category's entries in load order.
func (l *Lexicon) Entries(cat Category) []Entry {
	entries := l.entries[cat]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Sentence is a fully-constructed, typed sentence in some target language.
// Render is pure: identical field values always yield identical text, and no
// I/O or model call ever happens during rendering. Sentence values marshal to
// their English structural form (lemmas + features), never to target text.
type Sentence interface {
	Render() string
}

// Example pairs an English sentence with its structured representation, used
// for few-shot priming of parse and back-translation calls.
type Example struct {
	English  string
	Sentence Sentence
}

// Module is the grammar extension interface. A new target language implements
// Module and nothing else needs to change.
type Module interface {
	// Name identifies the language (e.g. "paiute").
	Name() string

	// Lexicon returns the language's immutable vocabulary.
	Lexicon() *Lexicon

	// SentenceSchema describes one structured sentence as a closed union over
	// the language's sentence shapes, with lemma fields as closed lexicon
	// enumerations.
	SentenceSchema() *schema.Schema

	// DecodeSentences decodes a {"sentences": [...]} payload that conformed
	// to ListSchema, constructing validated sentence entities.
	DecodeSentences(data []byte) ([]Sentence, error)

	// Examples returns few-shot pairs covering every sentence shape.
	Examples() []Example

	// SystemPrompt describes the language (vocabulary and grammar rules) for
	// model consumption.
	SystemPrompt() string
}

// ListSchema wraps a module's sentence schema into the ordered-list payload
// requested from the model during parsing.
func ListSchema(m Module) *schema.Schema {
	return schema.Object("a list of structured sentences",
		schema.Field("sentences", schema.Array(
			"the parsed sentences in source order", m.SentenceSchema())),
	)
}
