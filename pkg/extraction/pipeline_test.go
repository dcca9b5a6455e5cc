package extraction

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// countingExternal records calls so tests can assert the external
// collaborator is only reached on fallback paths.
type countingExternal struct {
	calls int
	text  string
	err   error
}

func (f *countingExternal) ExtractText(_ context.Context, _ []byte, _ string) (string, error) {
	f.calls++
	return f.text, f.err
}

// buildDocx assembles a minimal OOXML container around the given runs.
func buildDocx(t *testing.T, runs ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	var body strings.Builder
	body.WriteString(`<w:document><w:body><w:p w:rsidR="00A">`)
	for _, r := range runs {
		fmt.Fprintf(&body, `<w:r><w:t xml:space="preserve">%s</w:t></w:r>`, r)
	}
	body.WriteString(`</w:p></w:body></w:document>`)
	if _, err := w.Write([]byte(body.String())); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// buildXlsx writes a one-sheet workbook with the given rows.
func buildXlsx(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue("Sheet1", cell, val); err != nil {
				t.Fatal(err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractPlainTextNeverCallsExternal(t *testing.T) {
	ext := &countingExternal{text: "should not be used"}
	p := NewPipeline(ext)

	res, err := p.Extract(context.Background(), []byte("# Quarterly plan\nship v2"), "plan.md", Options{})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Method != MethodPlainText {
		t.Errorf("Method = %s, want %s", res.Method, MethodPlainText)
	}
	if res.Text != "# Quarterly plan\nship v2" {
		t.Errorf("Text = %q", res.Text)
	}
	if ext.calls != 0 {
		t.Errorf("external called %d times, want 0", ext.calls)
	}
}

func TestExtractNativeDocx(t *testing.T) {
	ext := &countingExternal{}
	p := NewPipeline(ext)

	res, err := p.Extract(context.Background(), buildDocx(t, "Hello", "World"), "report.docx", Options{})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Method != MethodNativeParse {
		t.Errorf("Method = %s, want %s", res.Method, MethodNativeParse)
	}
	if res.Text != "Hello World" {
		t.Errorf("Text = %q, want %q", res.Text, "Hello World")
	}
	if ext.calls != 0 {
		t.Errorf("external called %d times, want 0", ext.calls)
	}
}

func TestExtractNativeXlsx(t *testing.T) {
	ext := &countingExternal{}
	p := NewPipeline(ext)

	content := buildXlsx(t, [][]string{
		{"region", "revenue"},
		{"EMEA", "120"},
	})
	res, err := p.Extract(context.Background(), content, "budget.xlsx", Options{})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Method != MethodNativeParse {
		t.Errorf("Method = %s, want %s", res.Method, MethodNativeParse)
	}
	if res.Text != "region\trevenue\nEMEA\t120" {
		t.Errorf("Text = %q", res.Text)
	}
	if ext.calls != 0 {
		t.Errorf("external called %d times, want 0", ext.calls)
	}
}

func TestExtractCorruptedNativeFallsBack(t *testing.T) {
	ext := &countingExternal{text: "recovered text"}
	p := NewPipeline(ext)

	// A .docx that is not a zip: native parser fails, fallback recovers.
	res, err := p.Extract(context.Background(), []byte("definitely not a zip"), "broken.docx", Options{})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Method != MethodExternalFallback {
		t.Errorf("Method = %s, want %s", res.Method, MethodExternalFallback)
	}
	if res.Text != "recovered text" {
		t.Errorf("Text = %q", res.Text)
	}
	if ext.calls != 1 {
		t.Errorf("external called %d times, want 1", ext.calls)
	}
}

func TestExtractForceExternalSkipsNative(t *testing.T) {
	ext := &countingExternal{text: "external wins"}
	p := NewPipeline(ext)

	res, err := p.Extract(context.Background(), buildDocx(t, "native text"), "report.docx", Options{ForceExternal: true})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Method != MethodExternalFallback {
		t.Errorf("Method = %s, want %s", res.Method, MethodExternalFallback)
	}
	if ext.calls != 1 {
		t.Errorf("external called %d times, want 1", ext.calls)
	}
}

func TestExtractLegacyFormatGoesExternal(t *testing.T) {
	ext := &countingExternal{text: "legacy content"}
	p := NewPipeline(ext)

	res, err := p.Extract(context.Background(), []byte{0xd0, 0xcf, 0x11, 0xe0}, "old.doc", Options{})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Method != MethodExternalFallback {
		t.Errorf("Method = %s, want %s", res.Method, MethodExternalFallback)
	}
}

func TestExtractUnsupportedNeverCallsExternal(t *testing.T) {
	ext := &countingExternal{}
	p := NewPipeline(ext)

	res, err := p.Extract(context.Background(), []byte{0x00, 0x01, 0x02}, "meeting.mp3", Options{})
	if err == nil {
		t.Fatal("Extract() expected error for audio file")
	}
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
	var exErr *ExtractionError
	if !errors.As(err, &exErr) {
		t.Errorf("err type = %T, want *ExtractionError", err)
	}
	if res.Method != MethodUnsupported {
		t.Errorf("Method = %s, want %s", res.Method, MethodUnsupported)
	}
	if ext.calls != 0 {
		t.Errorf("external called %d times, want 0", ext.calls)
	}
}

func TestExtractBothPathsExhausted(t *testing.T) {
	ext := &countingExternal{err: errors.New("service down")}
	p := NewPipeline(ext)

	_, err := p.Extract(context.Background(), []byte("not a zip"), "broken.docx", Options{})
	var exErr *ExtractionError
	if !errors.As(err, &exErr) {
		t.Fatalf("err = %v, want *ExtractionError", err)
	}
	if !strings.Contains(exErr.Error(), "native parse failed") {
		t.Errorf("error should mention the native cause, got %q", exErr.Error())
	}
}

func TestExtractTruncation(t *testing.T) {
	p := NewPipeline(nil)

	tests := []struct {
		name          string
		text          string
		max           int
		wantLen       int
		wantTruncated bool
	}{
		{"under limit", "short", 10, 5, false},
		{"exactly at limit", "1234567890", 10, 10, false},
		{"over limit", "12345678901", 10, 10, true},
		{"multibyte runes", strings.Repeat("ü", 12), 10, 10, true},
		{"no limit", strings.Repeat("x", 5000), 0, 5000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := p.Extract(context.Background(), []byte(tt.text), "notes.txt", Options{MaxCharacters: tt.max})
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if got := utf8.RuneCountInString(res.Text); got != tt.wantLen {
				t.Errorf("len = %d, want %d", got, tt.wantLen)
			}
			if res.Truncated != tt.wantTruncated {
				t.Errorf("Truncated = %v, want %v", res.Truncated, tt.wantTruncated)
			}
		})
	}
}

func TestExtractNoExternalConfigured(t *testing.T) {
	p := NewPipeline(nil)

	_, err := p.Extract(context.Background(), []byte{0xd0, 0xcf, 0x11, 0xe0}, "old.doc", Options{})
	var exErr *ExtractionError
	if !errors.As(err, &exErr) {
		t.Fatalf("err = %v, want *ExtractionError", err)
	}
}
