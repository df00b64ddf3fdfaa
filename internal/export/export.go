// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export converts generated article text into Markdown, themed
// HTML, and PDF artifacts. All transforms are stateless: the same input
// yields the same output, and the source content is never mutated.
package export

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// ToMarkdown lightly reformats article text into canonical Markdown:
// normalized line endings, single-spaced heading markers, uniform
// horizontal rules, collapsed blank-line runs, and a single trailing
// newline. It is idempotent: canonical input passes through unchanged.
func ToMarkdown(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")

	var out []string
	blank := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		line = normalizeHeading(line)
		line = normalizeRule(line)

		if line == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, line)
	}

	doc := strings.Join(out, "\n")
	doc = strings.Trim(doc, "\n")
	if doc == "" {
		return ""
	}
	return doc + "\n"
}

// ComposeMarkdown assembles a full Markdown document from an article plus
// optional infobox and summary sections, then canonicalizes it. The title
// heading is only added when the article does not already start with it.
func ComposeMarkdown(article, title, infobox, summary string) string {
	var b strings.Builder

	body := strings.TrimSpace(article)
	titleHeading := "# " + strings.TrimSpace(title)
	if title != "" && !strings.HasPrefix(body, titleHeading) {
		b.WriteString(titleHeading)
		b.WriteString("\n\n")
	}

	if infobox != "" {
		b.WriteString("## Infobox\n\n```\n")
		b.WriteString(strings.TrimSpace(infobox))
		b.WriteString("\n```\n\n---\n\n")
	}

	if summary != "" {
		b.WriteString("## Summary\n\n")
		b.WriteString(strings.TrimSpace(summary))
		b.WriteString("\n\n---\n\n")
	}

	b.WriteString(body)
	return ToMarkdown(b.String())
}

// ToHTML converts the article (after Markdown-to-HTML conversion) into a
// complete HTML document using one of the fixed CSS themes. An unknown
// theme fails with InvalidArgumentError and produces no output.
func ToHTML(article, title string, theme types.Theme, infobox, summary string) (string, error) {
	css, ok := themeCSS[theme]
	if !ok {
		return "", &types.InvalidArgumentError{
			Field: "theme", Value: string(theme),
			Allowed: []string{string(types.ThemeWikipedia), string(types.ThemeModern), string(types.ThemeMinimal)},
		}
	}

	var bodyBuf bytes.Buffer
	if err := goldmark.Convert([]byte(ToMarkdown(article)), &bodyBuf); err != nil {
		return "", fmt.Errorf("converting article markdown: %w", err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	fmt.Fprintf(&b, "<style>\n%s\n</style>\n", css)
	b.WriteString("</head>\n<body>\n<div class=\"article\">\n")
	fmt.Fprintf(&b, "<h1 class=\"article-title\">%s</h1>\n", html.EscapeString(title))

	if infobox != "" {
		b.WriteString("<div class=\"infobox\">\n<pre>")
		b.WriteString(html.EscapeString(strings.TrimSpace(infobox)))
		b.WriteString("</pre>\n</div>\n")
	}

	if summary != "" {
		b.WriteString("<div class=\"summary\">\n<p>")
		b.WriteString(html.EscapeString(strings.TrimSpace(summary)))
		b.WriteString("</p>\n</div>\n")
	}

	b.WriteString("<div class=\"article-body\">\n")
	b.Write(bodyBuf.Bytes())
	b.WriteString("</div>\n</div>\n</body>\n</html>\n")

	return b.String(), nil
}

// ToPDF renders the article's HTML representation to a PDF file at
// outputPath using the given renderer. A missing or failing renderer
// surfaces as ExportUnavailableError; Markdown and HTML export remain
// unaffected.
func ToPDF(r Renderer, article, title, outputPath string, theme types.Theme, infobox, summary string) error {
	doc, err := ToHTML(article, title, theme, infobox, summary)
	if err != nil {
		return err
	}
	return r.Render(doc, outputPath)
}

// headingRe matches a Markdown heading with optional missing space after
// the marker, e.g. "##Heading".
var headingRe = regexp.MustCompile(`^(#{1,6})\s*(\S.*)$`)

func normalizeHeading(line string) string {
	if !strings.HasPrefix(line, "#") {
		return line
	}
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	return m[1] + " " + m[2]
}

// normalizeRule rewrites horizontal-rule variants (***, ___, ====) to "---".
func normalizeRule(line string) string {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 {
		return line
	}
	for _, ch := range []string{"-", "*", "_", "="} {
		if trimmed == strings.Repeat(ch, len(trimmed)) {
			return "---"
		}
	}
	return line
}
