package complete

import (
	"strings"
	"unicode/utf8"
)

// Span is a run of display text, marked when it matched the query
type Span struct {
	Text  string
	Match bool
}

// Highlight splits text on every occurrence of query in its lower-cased
// form, the same comparison Match uses. Occurrences are literal and
// non-overlapping; spans keep the original casing.
func Highlight(text, query string) []Span {
	needle := strings.ToLower(query)
	if needle == "" || text == "" {
		return []Span{{Text: text}}
	}

	// lower holds the lower-cased text; owner maps each of its bytes to
	// the byte offset in text of the rune it came from.
	var lower strings.Builder
	owner := make([]int, 0, len(text))
	for i, r := range text {
		l := strings.ToLower(string(r))
		lower.WriteString(l)
		for range len(l) {
			owner = append(owner, i)
		}
	}
	folded := lower.String()

	var spans []Span
	start, from := 0, 0
	for from < len(folded) {
		idx := strings.Index(folded[from:], needle)
		if idx < 0 {
			break
		}
		lo := from + idx
		hi := lo + len(needle)

		// widen the hit to whole runes of the original text
		matchStart := owner[lo]
		_, size := utf8.DecodeRuneInString(text[owner[hi-1]:])
		matchEnd := owner[hi-1] + size

		if matchStart > start {
			spans = append(spans, Span{Text: text[start:matchStart]})
		}
		spans = append(spans, Span{Text: text[matchStart:matchEnd], Match: true})
		start = matchEnd

		from = hi
		for from < len(folded) && owner[from] < matchEnd {
			from++
		}
	}
	if start < len(text) {
		spans = append(spans, Span{Text: text[start:]})
	}
	return spans
}
