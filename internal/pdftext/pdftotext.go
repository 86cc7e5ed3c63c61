// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"

	"github.com/wkcheung/cubereport/pkg/types"
)

const defaultBin = "pdftotext"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunPiped(name string, args []string, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunPiped(name string, args []string, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// Pdftotext extracts page text by invoking poppler's pdftotext with
// layout preservation, reading the whole document from stdout and
// splitting it into pages on form feeds.
type Pdftotext struct {
	bin  string
	exec executor
}

// NewPdftotext creates a pdftotext-backed page source. It verifies that
// the binary is on PATH before returning.
func NewPdftotext(cfg types.ConversionConfig) (*Pdftotext, error) {
	bin := cfg.PdftotextPath
	if bin == "" {
		bin = defaultBin
	}
	p := &Pdftotext{bin: bin, exec: defaultExec}
	if _, err := p.exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("%s not available on PATH: %w", bin, err)
	}
	return p, nil
}

// Pages runs pdftotext on the PDF at pdfPath and returns one text block
// per page.
func (p *Pdftotext) Pages(pdfPath string) ([]string, error) {
	var out bytes.Buffer
	args := []string{"-layout", pdfPath, "-"}
	if err := p.exec.RunPiped(p.bin, args, &out); err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", pdfPath, err)
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%s produced no text for %s", p.bin, pdfPath)
	}
	return SplitPages(out.String()), nil
}
