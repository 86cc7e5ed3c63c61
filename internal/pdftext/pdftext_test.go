// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package pdftext

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wkcheung/cubereport/pkg/types"
)

func TestSplitPages(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "two pages with trailing form feed",
			text: "page one\f page two\f",
			want: []string{"page one", " page two"},
		},
		{
			name: "single page no delimiter",
			text: "only page",
			want: []string{"only page"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace-only trailing block dropped",
			text: "page one\f  \n ",
			want: []string{"page one"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPages(tt.text)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.Equal(t, tt.want[i], got[i])
			}
		})
	}
}

// fakeExecutor implements executor with canned output or errors.
type fakeExecutor struct {
	lookPathErr error
	output      string
	runErr      error

	gotName string
	gotArgs []string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.lookPathErr != nil {
		return "", f.lookPathErr
	}
	return "/usr/bin/" + file, nil
}

func (f *fakeExecutor) RunPiped(name string, args []string, stdout io.Writer) error {
	f.gotName = name
	f.gotArgs = args
	if f.runErr != nil {
		return f.runErr
	}
	_, err := io.WriteString(stdout, f.output)
	return err
}

func TestNewPdftotextMissingBinary(t *testing.T) {
	orig := defaultExec
	defaultExec = &fakeExecutor{lookPathErr: errors.New("not found")}
	defer func() { defaultExec = orig }()

	_, err := NewPdftotext(types.ConversionConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdftotext")
}

func TestPdftotextPages(t *testing.T) {
	fake := &fakeExecutor{output: "page one\fpage two\f"}
	p := &Pdftotext{bin: "pdftotext", exec: fake}

	pages, err := p.Pages("report.pdf")
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "page one", pages[0])
	assert.Equal(t, "page two", pages[1])

	assert.Equal(t, "pdftotext", fake.gotName)
	assert.Equal(t, []string{"-layout", "report.pdf", "-"}, fake.gotArgs)
}

func TestPdftotextPagesRunError(t *testing.T) {
	fake := &fakeExecutor{runErr: errors.New("exit status 1")}
	p := &Pdftotext{bin: "pdftotext", exec: fake}

	_, err := p.Pages("report.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report.pdf")
}

func TestPdftotextPagesEmptyOutput(t *testing.T) {
	fake := &fakeExecutor{output: ""}
	p := &Pdftotext{bin: "pdftotext", exec: fake}

	_, err := p.Pages("report.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text")
}

func TestCustomBinaryPath(t *testing.T) {
	orig := defaultExec
	defaultExec = &fakeExecutor{}
	defer func() { defaultExec = orig }()

	p, err := NewPdftotext(types.ConversionConfig{PdftotextPath: "/opt/poppler/bin/pdftotext"})
	require.NoError(t, err)
	assert.Equal(t, "/opt/poppler/bin/pdftotext", p.bin)
}
