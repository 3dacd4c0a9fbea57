package model

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup removes the style tags from a marked-up rendering, returning
// the plain text. Unknown tags are dropped the same way; text content is
// preserved verbatim, entities decoded.
func StripMarkup(markup string) string {
	if !strings.ContainsRune(markup, '<') {
		return markup
	}
	tok := html.NewTokenizer(strings.NewReader(markup))
	var sb strings.Builder
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(tok.Text())
		}
	}
}
