// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import "github.com/moodi112/oman-wiki-engine/pkg/types"

// themeCSS maps each supported theme to its fixed stylesheet. The wikipedia
// theme mirrors the encyclopedia look; modern is a dark contemporary layout;
// minimal is bare typography for print.
var themeCSS = map[types.Theme]string{
	types.ThemeWikipedia: cssWikipedia,
	types.ThemeModern:    cssModern,
	types.ThemeMinimal:   cssMinimal,
}

// Themes returns the supported theme names in display order.
func Themes() []types.Theme {
	return []types.Theme{types.ThemeWikipedia, types.ThemeModern, types.ThemeMinimal}
}

const cssWikipedia = `body {
  font-family: 'Linux Libertine', Georgia, Times, serif;
  background: #f6f6f6;
  color: #202122;
  margin: 0;
}
.article {
  max-width: 960px;
  margin: 0 auto;
  padding: 24px 32px;
  background: #fff;
  border: 1px solid #a7d7f9;
}
.article-title {
  font-size: 1.8em;
  font-weight: normal;
  border-bottom: 1px solid #a2a9b1;
  padding-bottom: 4px;
}
.article-body h2 {
  font-size: 1.4em;
  font-weight: normal;
  border-bottom: 1px solid #a2a9b1;
  padding-bottom: 2px;
}
.infobox {
  float: right;
  width: 280px;
  margin: 0 0 16px 16px;
  padding: 8px;
  background: #f8f9fa;
  border: 1px solid #a2a9b1;
  font-size: 0.85em;
}
.infobox pre {
  white-space: pre-wrap;
  margin: 0;
}
.summary {
  font-style: italic;
  color: #54595d;
}
.article-body p {
  line-height: 1.6;
}
a { color: #0645ad; }`

const cssModern = `body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
  background: #1a1a2e;
  color: #e4e4e7;
  margin: 0;
}
.article {
  max-width: 820px;
  margin: 0 auto;
  padding: 48px 40px;
}
.article-title {
  font-size: 2.4em;
  font-weight: 800;
  background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
  -webkit-background-clip: text;
  background-clip: text;
  color: transparent;
}
.article-body h2 {
  color: #a5b4fc;
  margin-top: 2em;
}
.infobox {
  background: #16213e;
  border-left: 4px solid #667eea;
  border-radius: 8px;
  padding: 16px;
  margin: 24px 0;
}
.infobox pre {
  white-space: pre-wrap;
  margin: 0;
  color: #c7d2fe;
}
.summary {
  font-size: 1.15em;
  color: #a1a1aa;
  border-bottom: 1px solid #2d2d44;
  padding-bottom: 16px;
}
.article-body p {
  line-height: 1.8;
}
a { color: #818cf8; }`

const cssMinimal = `body {
  font-family: Georgia, 'Times New Roman', serif;
  background: #fff;
  color: #111;
  margin: 0;
}
.article {
  max-width: 680px;
  margin: 0 auto;
  padding: 40px 24px;
}
.article-title {
  font-size: 1.9em;
  margin-bottom: 0.4em;
}
.infobox pre {
  white-space: pre-wrap;
  font-size: 0.9em;
  border: 1px solid #ddd;
  padding: 12px;
}
.summary {
  color: #444;
}
.article-body p {
  line-height: 1.65;
}
a { color: #111; }`
