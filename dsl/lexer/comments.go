package lexer

import "strings"

const (
	commentOpen  = "<#"
	commentClose = "#>"
)

// StripComments removes every block comment from src. A comment runs from an
// opening marker to the nearest following closing marker, possibly across
// lines, and never nests: a second `<#` inside an open comment is ordinary
// comment content. An unclosed comment runs to the end of the input.
func StripComments(src string) string {
	var b strings.Builder

	for {
		open := strings.Index(src, commentOpen)
		if open < 0 {
			b.WriteString(src)
			return b.String()
		}

		b.WriteString(src[:open])

		rest := src[open+len(commentOpen):]
		end := strings.Index(rest, commentClose)
		if end < 0 {
			return b.String()
		}

		src = rest[end+len(commentClose):]
	}
}
