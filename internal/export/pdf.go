// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"io"
	"os/exec"
	"strings"

	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// defaultRendererBin is the HTML-to-PDF tool invoked for PDF export. It
// requires a system-level graphics library and may legitimately be absent;
// its absence degrades PDF export only.
const defaultRendererBin = "wkhtmltopdf"

// Renderer converts an HTML document into a PDF file at outputPath.
type Renderer interface {
	Render(htmlDoc, outputPath string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// pdfRenderer pipes HTML through the wkhtmltopdf binary.
type pdfRenderer struct {
	bin  string
	exec executor
}

// NewPDFRenderer verifies the rendering binary exists on PATH and returns
// a Renderer that invokes it. A missing binary is reported as
// ExportUnavailableError so callers can degrade gracefully.
func NewPDFRenderer(bin string) (Renderer, error) {
	return newPDFRenderer(bin, defaultExec)
}

func newPDFRenderer(bin string, exec executor) (Renderer, error) {
	if bin == "" {
		bin = defaultRendererBin
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, &types.ExportUnavailableError{Renderer: bin, Cause: err}
	}
	return &pdfRenderer{bin: bin, exec: exec}, nil
}

// Render pipes the HTML document to the renderer on stdin and writes the
// PDF to outputPath. Renderer failures surface as ExportUnavailableError.
func (r *pdfRenderer) Render(htmlDoc, outputPath string) error {
	args := []string{"--quiet", "--encoding", "utf-8", "-", outputPath}
	if err := r.exec.RunPiped(r.bin, args, strings.NewReader(htmlDoc), io.Discard); err != nil {
		return &types.ExportUnavailableError{Renderer: r.bin, Cause: err}
	}
	return nil
}
