// Package postprocess strips model artifacts from plain-text output before it
// is used downstream. The pipeline asks for bare English sentences when it
// back-translates structured sentence JSON, and the agentic path may surface
// free text from tool turns; models still wrap such answers in reasoning tags,
// code fences, JSON envelopes, labels and quotes.
package postprocess

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"
)

// Clean strips artifacts in order and returns the trimmed result:
//  1. Reasoning blocks (<thinking>-style tags, including truncated ones)
//  2. Markdown code fences wrapping the whole answer
//  3. JSON envelopes: a lone object carrying the answer in a known field
//  4. Label echoes ("Translation:", "Here is the English sentence:", ...)
//  5. A matching pair of outer quotes
func Clean(text string) string {
	text = stripReasoning(text)
	text = stripFence(text)
	text = unwrapJSON(text)
	text = stripLabels(text)
	text = unquote(text)
	return strings.TrimSpace(text)
}

// Sentence cleans text and normalizes it into an English sentence: leading
// letter upper-cased, terminal punctuation added when missing. Applied to
// back-translations before they are joined and shown to the user.
func Sentence(text string) string {
	text = Clean(text)
	if text == "" {
		return text
	}
	runes := []rune(text)
	runes[0] = unicode.ToUpper(runes[0])
	out := string(runes)
	switch runes[len(runes)-1] {
	case '.', '!', '?':
		return out
	}
	return out + "."
}

// reasoningTags are the block tags models emit for chain-of-thought. The
// alternations are spelled out per tag because RE2 has no backreferences.
var reasoningTags = []string{"thinking", "think", "reasoning", "reflection"}

var reasoningBlockRe, openReasoningRe = func() (*regexp.Regexp, *regexp.Regexp) {
	closed := make([]string, len(reasoningTags))
	open := make([]string, len(reasoningTags))
	for i, tag := range reasoningTags {
		closed[i] = "<" + tag + ">.*?</" + tag + ">"
		open[i] = "<" + tag + ">"
	}
	return regexp.MustCompile(`(?is)` + strings.Join(closed, "|")),
		regexp.MustCompile(`(?is)(?:` + strings.Join(open, "|") + `).*$`)
}()

// stripReasoning removes complete reasoning blocks, then anything after an
// unclosed opening tag (the model was cut off mid-thought).
func stripReasoning(text string) string {
	text = reasoningBlockRe.ReplaceAllString(text, "")
	text = openReasoningRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

var fenceRe = regexp.MustCompile("(?s)^```[a-zA-Z]*[ \t]*\n(.*?)\n?```$")

// stripFence unwraps an answer the model fenced as a code block. Only a fence
// spanning the entire answer is removed; fences inside prose stay.
func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}

// answerFields are the keys models use when they wrap a plain-text answer in
// a JSON object despite being asked for a bare sentence. Checked in order.
var answerFields = []string{"translation", "english", "sentence", "text"}

// unwrapJSON extracts the answer from a JSON envelope. Anything that is not a
// whole, valid object with a known string field passes through untouched, so
// structured-looking prose is safe.
func unwrapJSON(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return text
	}
	var envelope map[string]any
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
		return text
	}
	for _, field := range answerFields {
		if s, ok := envelope[field].(string); ok {
			return s
		}
	}
	return text
}

// labelRe matches a leading label the model prepends to the answer. A keyword
// and a colon are both required, so legitimate content starting with these
// words is not touched.
var labelRe = regexp.MustCompile(`(?i)^(?:(?:sure|certainly|of course)[,.!]?\s+)?` +
	`(?:here(?:'s| is)(?: the| your)?\s+)?(?:the\s+)?` +
	`(?:english(?:\s+(?:translation|sentence|text))?|back[- ]?translation|translation|translated text|sentence|meaning)` +
	`\s*:\s*`)

// stripLabels removes leading label echoes, repeatedly: models sometimes
// stack them ("Sure! Translation: ...").
func stripLabels(text string) string {
	for {
		loc := labelRe.FindStringIndex(text)
		if loc == nil || loc[1] == 0 {
			return text
		}
		text = strings.TrimSpace(text[loc[1]:])
	}
}

// quotePairs maps an opening quote to the closing quote it must pair with.
var quotePairs = map[rune]rune{
	'"':      '"',
	'\'':     '\'',
	'«':      '»',
	'\u201C': '\u201D',
	'\u2018': '\u2019',
}

// unquote strips one matching pair of outer quotes when the entire text is
// wrapped in them.
func unquote(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return text
	}
	if end, ok := quotePairs[runes[0]]; ok && runes[n-1] == end {
		return strings.TrimSpace(string(runes[1 : n-1]))
	}
	return text
}
