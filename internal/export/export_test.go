// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

func TestToMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "normalizes heading spacing",
			in:   "##History\nBody text.",
			want: "## History\nBody text.\n",
		},
		{
			name: "collapses blank runs",
			in:   "# Title\n\n\n\nParagraph.",
			want: "# Title\n\nParagraph.\n",
		},
		{
			name: "uniform horizontal rules",
			in:   "Before\n***\nAfter",
			want: "Before\n---\nAfter\n",
		},
		{
			name: "windows line endings",
			in:   "# Title\r\n\r\nBody.\r\n",
			want: "# Title\n\nBody.\n",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToMarkdown(tt.in))
		})
	}
}

func TestToMarkdownIdempotent(t *testing.T) {
	inputs := []string{
		"# Muscat Festival\n\n## History\n\nThe festival began in 1998.\n\n---\n\n## References\n\nAl-Farsi, M. 2020.\n",
		"##Overview\n\n\nText with   trailing spaces   \n***\n",
		"Plain paragraph only.",
	}
	for _, in := range inputs {
		once := ToMarkdown(in)
		twice := ToMarkdown(once)
		assert.Equal(t, once, twice)
	}
}

func TestComposeMarkdown(t *testing.T) {
	doc := ComposeMarkdown("## History\n\nBody.", "Muscat Festival", "Date: January", "A short summary.")

	assert.True(t, strings.HasPrefix(doc, "# Muscat Festival\n"))
	assert.Contains(t, doc, "## Infobox")
	assert.Contains(t, doc, "Date: January")
	assert.Contains(t, doc, "## Summary")
	assert.Contains(t, doc, "A short summary.")
	assert.Contains(t, doc, "## History")
}

func TestComposeMarkdownNoDuplicateTitle(t *testing.T) {
	first := ComposeMarkdown("Body text.", "Muscat Festival", "", "")
	second := ComposeMarkdown(first, "Muscat Festival", "", "")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(second, "# Muscat Festival"))
}

func TestToHTML(t *testing.T) {
	for _, theme := range Themes() {
		t.Run(string(theme), func(t *testing.T) {
			doc, err := ToHTML("## History\n\nThe festival began in 1998.", "Muscat Festival", theme, "Date: January", "Short summary.")
			require.NoError(t, err)

			assert.Contains(t, doc, "<!DOCTYPE html>")
			assert.Contains(t, doc, "<title>Muscat Festival</title>")
			assert.Contains(t, doc, "<h2>History</h2>")
			assert.Contains(t, doc, "class=\"infobox\"")
			assert.Contains(t, doc, "class=\"summary\"")
		})
	}
}

func TestToHTMLUnknownTheme(t *testing.T) {
	doc, err := ToHTML("Body.", "Title", types.Theme("neon"), "", "")
	assert.Empty(t, doc)
	require.Error(t, err)
	assert.True(t, types.IsInvalidArgument(err))
}

func TestToHTMLEscapesTitle(t *testing.T) {
	doc, err := ToHTML("Body.", `<script>alert("x")</script>`, types.ThemeMinimal, "", "")
	require.NoError(t, err)
	assert.NotContains(t, doc, "<script>alert")
}

func TestToHTMLDeterministic(t *testing.T) {
	a, err := ToHTML("## A\n\nText.", "T", types.ThemeWikipedia, "", "")
	require.NoError(t, err)
	b, err := ToHTML("## A\n\nText.", "T", types.ThemeWikipedia, "", "")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// fakeExecutor implements executor for testing without a real binary.
type fakeExecutor struct {
	missing bool
	runErr  error
	gotArgs []string
	gotHTML string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.missing {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/bin/" + file, nil
}

func (f *fakeExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	f.gotArgs = args
	data, _ := io.ReadAll(stdin)
	f.gotHTML = string(data)
	if f.runErr != nil {
		return f.runErr
	}
	// Simulate the renderer writing the PDF file.
	return os.WriteFile(args[len(args)-1], []byte("%PDF-1.4 fake"), 0o644)
}

func TestNewPDFRendererMissingBinary(t *testing.T) {
	_, err := newPDFRenderer("wkhtmltopdf", &fakeExecutor{missing: true})
	require.Error(t, err)
	assert.True(t, types.IsExportUnavailable(err))
}

func TestToPDF(t *testing.T) {
	fake := &fakeExecutor{}
	r, err := newPDFRenderer("", fake)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "article.pdf")
	err = ToPDF(r, "## History\n\nBody.", "Muscat Festival", out, types.ThemeWikipedia, "", "")
	require.NoError(t, err)

	assert.Contains(t, fake.gotHTML, "<h2>History</h2>")
	assert.Equal(t, out, fake.gotArgs[len(fake.gotArgs)-1])
	_, statErr := os.Stat(out)
	assert.NoError(t, statErr)
}

func TestToPDFRendererFailure(t *testing.T) {
	fake := &fakeExecutor{runErr: errors.New("exit status 1")}
	r, err := newPDFRenderer("", fake)
	require.NoError(t, err)

	err = ToPDF(r, "Body.", "Title", filepath.Join(t.TempDir(), "x.pdf"), types.ThemeMinimal, "", "")
	require.Error(t, err)
	assert.True(t, types.IsExportUnavailable(err))
}

func TestMarkdownAndHTMLSucceedWithoutRenderer(t *testing.T) {
	// PDF renderer absent: Markdown and HTML export for the same input
	// must still succeed independently.
	_, err := newPDFRenderer("wkhtmltopdf", &fakeExecutor{missing: true})
	require.Error(t, err)

	md := ToMarkdown("# Title\n\nBody.")
	assert.NotEmpty(t, md)

	doc, err := ToHTML("Body.", "Title", types.ThemeWikipedia, "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
