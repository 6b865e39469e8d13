package paiute

import "github.com/kubishi/yaduha-2/internal/language"

// Vocabulary tables. This is the only place to add new words.

var nouns = []language.Entry{
	{English: "coyote", Target: "isha'"},
	{English: "dog", Target: "ishapugu"},
	{English: "cat", Target: "kidi'"},
	{English: "horse", Target: "pugu"},
	{English: "rice", Target: "wai"},
	{English: "pinenuts", Target: "tüba"},
	{English: "corn", Target: "maishibü"},
	{English: "water", Target: "paya"},
	{English: "river", Target: "payahuupü"},
	{English: "chair", Target: "katünu"},
	{English: "mountain", Target: "toyabi"},
	{English: "food", Target: "tuunapi"},
	{English: "tree", Target: "pasohobü"},
	{English: "house", Target: "nobi"},
	{English: "wickiup", Target: "toni"},
	{English: "cup", Target: "apo"},
	{English: "wood", Target: "küna"},
	{English: "rock", Target: "tübbi"},
	{English: "cottontail", Target: "tabuutsi'"},
	{English: "jackrabbit", Target: "kamü"},
	{English: "apple", Target: "aaponu'"},
	{English: "weasle", Target: "tüsüga"},
	{English: "lizard", Target: "mukita"},
	{English: "mosquito", Target: "wo'ada"},
	{English: "bird_snake", Target: "wükada"},
	{English: "worm", Target: "wo'abi"},
	{English: "squirrel", Target: "aingwü"},
	{English: "bird", Target: "tsiipa"},
	{English: "earth", Target: "tüwoobü"},
	{English: "coffee", Target: "koopi'"},
	{English: "bear", Target: "pahabichi"},
	{English: "fish", Target: "pagwi"},
	{English: "tail", Target: "kwadzi"},
}

var transitiveVerbs = []language.Entry{
	{English: "eat", Target: "tüka"},
	{English: "see", Target: "puni"},
	{English: "drink", Target: "hibi"},
	{English: "hear", Target: "naka"},
	{English: "smell", Target: "kwana"},
	{English: "hit", Target: "kwati"},
	{English: "talk_to", Target: "yadohi"},
	{English: "chase", Target: "naki"},
	{English: "climb", Target: "tsibui"},
	{English: "cook", Target: "sawa"},
	{English: "read", Target: "nia"},
	{English: "write", Target: "mui"},
	{English: "visit", Target: "nobini"},
	{English: "find", Target: "tama'i"},
}

var intransitiveVerbs = []language.Entry{
	{English: "sit", Target: "katü"},
	{English: "sleep", Target: "üwi"},
	{English: "sneeze", Target: "kwisha'i"},
	{English: "run", Target: "poyoha"},
	{English: "go", Target: "mia"},
	{English: "walk", Target: "hukaw̃ia"},
	{English: "stand", Target: "wünü"},
	{English: "lie_down", Target: "habi"},
	{English: "talk", Target: "yadoha"},
	{English: "fall", Target: "kwatsa'i"},
	{English: "work", Target: "waakü"},
	{English: "smile", Target: "wükihaa"},
	{English: "sing", Target: "hubiadu"},
	{English: "laugh", Target: "nishua'i"},
	{English: "climb", Target: "tsibui"},
	{English: "play", Target: "tübinohi"},
	{English: "fly", Target: "yotsi"},
	{English: "dance", Target: "nüga"},
	{English: "swim", Target: "pahabi"},
	{English: "read", Target: "tünia"},
	{English: "write", Target: "tümui"},
	{English: "chirp", Target: "tsiipe'i"},
}

var defaultLexicon = language.MustLexicon(nouns, transitiveVerbs, intransitiveVerbs)

// DefaultLexicon returns the built-in Owens Valley Paiute vocabulary.
func DefaultLexicon() *language.Lexicon {
	return defaultLexicon
}
