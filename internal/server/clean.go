package server

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`(?i)https?://\S+|www\.\S+`)
	userPattern       = regexp.MustCompile(`@\w+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// lineBreakMarker is how the training corpus encodes line breaks.
const lineBreakMarker = "|LBR|"

// CleanText normalises text the same way the training data was normalised:
// line break markers become spaces, URLs become <URL>, mentions become
// <USER>, and whitespace runs collapse to a single space.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, lineBreakMarker, " ")
	text = urlPattern.ReplaceAllString(text, "<URL>")
	text = userPattern.ReplaceAllString(text, "<USER>")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
