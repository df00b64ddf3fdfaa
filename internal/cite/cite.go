// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite extracts reference lines from a generated article's
// references section and applies heuristic validity checks to them.
package cite

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// MinCitationLength is the minimum character count for a citation line
// to pass the length heuristic.
const MinCitationLength = 20

// referenceHeadings are the heading texts that open a references section,
// compared case-insensitively after stripping Markdown heading markers.
var referenceHeadings = []string{
	"references",
	"bibliography",
	"المراجع",
}

// yearRe matches a contiguous 4-digit numeral anywhere in a citation line.
var yearRe = regexp.MustCompile(`\d{4}`)

// terminalPunctuation is the set of suffixes accepted by the punctuation
// heuristic. Quote-wrapped periods cover citations ending in a quoted title.
var terminalPunctuation = []string{".", "!", "?", `."`, `".`, "؟"}

// Extract scans text for a references section and returns each subsequent
// non-empty line up to the next heading or end of text, in source order.
// Text without a references heading yields an empty slice, not an error.
func Extract(text string) []string {
	lines := strings.Split(text, "\n")
	var collecting bool
	var citations []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if isHeading(trimmed) || isReferenceHeading(trimmed) {
			if collecting {
				break
			}
			collecting = isReferenceHeading(trimmed)
			continue
		}

		if !collecting || trimmed == "" {
			continue
		}
		citations = append(citations, stripListMarker(trimmed))
	}

	return citations
}

// Validate evaluates the three heuristics for each citation and returns a
// map from citation text to the conjunction of the heuristic results.
// An empty citation list yields an empty map.
func Validate(citations []string) map[string]bool {
	result := make(map[string]bool, len(citations))
	for _, c := range citations {
		result[c] = Annotate(c).Valid()
	}
	return result
}

// Annotate evaluates each heuristic independently and returns the citation
// with all three fields populated.
func Annotate(citation string) types.Citation {
	return types.Citation{
		RawText:        citation,
		HasYear:        hasYear(citation),
		WellPunctuated: wellPunctuated(citation),
		LengthOK:       minLength(citation),
	}
}

// AnnotateAll maps Annotate over a citation list, preserving order.
func AnnotateAll(citations []string) []types.Citation {
	annotated := make([]types.Citation, len(citations))
	for i, c := range citations {
		annotated[i] = Annotate(c)
	}
	return annotated
}

func hasYear(citation string) bool {
	return yearRe.MatchString(citation)
}

func wellPunctuated(citation string) bool {
	for _, p := range terminalPunctuation {
		if strings.HasSuffix(citation, p) {
			return true
		}
	}
	return false
}

func minLength(citation string) bool {
	return utf8.RuneCountInString(citation) >= MinCitationLength
}

// isHeading reports whether the line is a Markdown heading.
func isHeading(line string) bool {
	return strings.HasPrefix(line, "#")
}

// isReferenceHeading reports whether the line opens a references section.
// Both bare heading lines ("References") and Markdown headings
// ("## References") are recognized.
func isReferenceHeading(line string) bool {
	heading := strings.ToLower(strings.TrimSpace(strings.TrimLeft(line, "#")))
	heading = strings.TrimSuffix(heading, ":")
	for _, want := range referenceHeadings {
		if heading == want {
			return true
		}
	}
	return false
}

// stripListMarker removes a leading bullet or numeric list marker so the
// heuristic checks see the citation text itself.
var listMarkerRe = regexp.MustCompile(`^(?:[-*]\s+|\[\d+\]\s+|\d+\.\s+)`)

func stripListMarker(line string) string {
	return listMarkerRe.ReplaceAllString(line, "")
}
