package kethara

import "github.com/kubishi/yaduha-2/internal/language"

// Vocabulary tables, grouped by semantic noun class. This is the only place
// to add new words.

var humanNouns = []language.Entry{
	{English: "person", Target: "zhen"},
	{English: "child", Target: "pelki"},
	{English: "woman", Target: "thera"},
	{English: "man", Target: "kodan"},
	{English: "friend", Target: "miru"},
	{English: "teacher", Target: "saveth"},
	{English: "student", Target: "nolki"},
	{English: "warrior", Target: "dakhen"},
}

var animalNouns = []language.Entry{
	{English: "dog", Target: "kurma"},
	{English: "cat", Target: "shiva"},
	{English: "bird", Target: "telun"},
	{English: "fish", Target: "nakos"},
	{English: "horse", Target: "vareth"},
	{English: "bear", Target: "gormak"},
	{English: "wolf", Target: "ulven"},
	{English: "deer", Target: "serka"},
	{English: "snake", Target: "zhilak"},
	{English: "frog", Target: "popeth"},
}

var plantNouns = []language.Entry{
	{English: "tree", Target: "korvan"},
	{English: "flower", Target: "lumi"},
	{English: "grass", Target: "veltha"},
	{English: "fruit", Target: "merka"},
	{English: "seed", Target: "pinja"},
}

var objectNouns = []language.Entry{
	{English: "house", Target: "talo"},
	{English: "book", Target: "kirja"},
	{English: "table", Target: "poyda"},
	{English: "chair", Target: "istuva"},
	{English: "door", Target: "verko"},
	{English: "window", Target: "ikuna"},
	{English: "food", Target: "mato"},
	{English: "water", Target: "vesik"},
	{English: "stone", Target: "kiva"},
	{English: "wood", Target: "puva"},
	{English: "fire", Target: "tulka"},
	{English: "cup", Target: "malka"},
	{English: "bread", Target: "leipu"},
}

var abstractNouns = []language.Entry{
	{English: "sky", Target: "taiva"},
	{English: "earth", Target: "manu"},
	{English: "sun", Target: "aurik"},
	{English: "moon", Target: "kuma"},
	{English: "star", Target: "tahti"},
	{English: "mountain", Target: "vuora"},
	{English: "river", Target: "jova"},
	{English: "wind", Target: "tuva"},
	{English: "rain", Target: "sade"},
	{English: "time", Target: "aika"},
	{English: "love", Target: "rakka"},
	{English: "truth", Target: "tosi"},
}

var transitiveVerbs = []language.Entry{
	{English: "see", Target: "nakh"},
	{English: "hear", Target: "kulv"},
	{English: "eat", Target: "syo"},
	{English: "drink", Target: "juo"},
	{English: "love", Target: "rakast"},
	{English: "know", Target: "tied"},
	{English: "want", Target: "halut"},
	{English: "make", Target: "teh"},
	{English: "break", Target: "rikk"},
	{English: "find", Target: "loyt"},
	{English: "give", Target: "anna"},
	{English: "take", Target: "otta"},
	{English: "hold", Target: "pida"},
	{English: "throw", Target: "heit"},
	{English: "catch", Target: "nappa"},
	{English: "read", Target: "luk"},
	{English: "write", Target: "kirjoit"},
	{English: "help", Target: "auta"},
	{English: "teach", Target: "opet"},
	{English: "learn", Target: "oppi"},
}

var intransitiveVerbs = []language.Entry{
	{English: "sleep", Target: "nuku"},
	{English: "wake", Target: "herata"},
	{English: "die", Target: "kuol"},
	{English: "live", Target: "ela"},
	{English: "run", Target: "juoks"},
	{English: "walk", Target: "kavele"},
	{English: "jump", Target: "hyppa"},
	{English: "sit", Target: "istu"},
	{English: "stand", Target: "seiso"},
	{English: "fall", Target: "putoa"},
	{English: "rise", Target: "nous"},
	{English: "swim", Target: "ui"},
	{English: "fly", Target: "lenna"},
	{English: "sing", Target: "laula"},
	{English: "laugh", Target: "naura"},
	{English: "cry", Target: "itke"},
	{English: "dance", Target: "tans"},
	{English: "speak", Target: "puhu"},
	{English: "grow", Target: "kasva"},
	{English: "shine", Target: "loista"},
}

var nounsByClass = map[NounClass][]language.Entry{
	NounClassHuman:    humanNouns,
	NounClassAnimal:   animalNouns,
	NounClassPlant:    plantNouns,
	NounClassObject:   objectNouns,
	NounClassAbstract: abstractNouns,
}

var classOrder = []NounClass{
	NounClassHuman, NounClassAnimal, NounClassPlant, NounClassObject, NounClassAbstract,
}

var classByHead = func() map[string]NounClass {
	m := make(map[string]NounClass)
	for class, entries := range nounsByClass {
		for _, e := range entries {
			m[e.English] = class
		}
	}
	return m
}()

var defaultLexicon = func() *language.Lexicon {
	var nouns []language.Entry
	for _, class := range classOrder {
		nouns = append(nouns, nounsByClass[class]...)
	}
	return language.MustLexicon(nouns, transitiveVerbs, intransitiveVerbs)
}()

// DefaultLexicon returns the built-in Kethara vocabulary.
func DefaultLexicon() *language.Lexicon {
	return defaultLexicon
}

// ClassOf reports the semantic class of a noun lemma.
func ClassOf(head string) (NounClass, bool) {
	class, ok := classByHead[head]
	return class, ok
}
