package help

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Wrap splits text into lines no longer than maxWidth runes.
//
// Explicit line breaks ("\n" or "\r\n") always end a line. A segment that
// fits is yielded verbatim. Longer segments are cut after the last
// whitespace inside the window, or at exactly maxWidth when the window has
// no whitespace. Blank text yields nothing. The returned sequence can be
// ranged over any number of times.
func Wrap(text string, maxWidth int) iter.Seq[string] {
	if maxWidth < 1 {
		maxWidth = 1
	}
	return func(yield func(string) bool) {
		if strings.TrimSpace(text) == "" {
			return
		}
		for _, part := range splitLines(text) {
			if utf8.RuneCountInString(part) <= maxWidth {
				if !yield(part) {
					return
				}
				continue
			}
			if !wrapSegment([]rune(part), maxWidth, yield) {
				return
			}
		}
	}
}

// WrapLines collects Wrap into a slice.
func WrapLines(text string, maxWidth int) []string {
	var lines []string
	for line := range Wrap(text, maxWidth) {
		lines = append(lines, line)
	}
	return lines
}

func wrapSegment(runes []rune, maxWidth int, yield func(string) bool) bool {
	for i := 0; i < len(runes); {
		if len(runes)-i < maxWidth {
			return yield(string(runes[i:]))
		}

		length := -1
		for j := 0; i+j < len(runes) && j < maxWidth; j++ {
			if unicode.IsSpace(runes[i+j]) {
				length = j + 1
			}
		}
		if length == -1 {
			length = maxWidth
		}

		if !yield(string(runes[i : i+length])) {
			return false
		}
		i += length
	}
	return true
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}
