package market

import (
	"regexp"
	"strings"
)

// maxQueryWords caps search queries; search providers degrade on long ones.
const maxQueryWords = 10

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// CleanQuery sanitizes free text for use as a search term. Characters outside
// [A-Za-z0-9\s] become spaces, whitespace runs collapse to a single space and
// the result is truncated to the first maxQueryWords words.
func CleanQuery(text string) string {
	if text == "" {
		return ""
	}
	cleaned := nonAlphanumeric.ReplaceAllString(text, " ")
	trimmed := whitespaceRun.ReplaceAllString(strings.TrimSpace(cleaned), " ")
	if trimmed == "" {
		return ""
	}
	words := strings.Split(trimmed, " ")
	if len(words) > maxQueryWords {
		return strings.Join(words[:maxQueryWords], " ")
	}
	return trimmed
}
