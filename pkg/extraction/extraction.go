// Package extraction converts uploaded file bytes into searchable plain text.
//
// Strategy selection is an explicit state machine: classify the format, decode
// text-like content directly, run a native parser for known binary document
// formats, and fall back to the external AI extractor when no native parser
// applies or the native parser fails. Formats known to be unprocessable
// (audio, video, archives) are rejected without any external call.
package extraction

import (
	"context"
	"errors"
	"fmt"
)

// Method records which strategy produced the text.
type Method string

const (
	MethodPlainText        Method = "PLAIN_TEXT"
	MethodNativeParse      Method = "NATIVE_PARSE"
	MethodExternalFallback Method = "EXTERNAL_FALLBACK"
	MethodUnsupported      Method = "UNSUPPORTED"
)

// Result is the value produced by one extraction. It is folded into the
// document record by the caller, never persisted on its own.
type Result struct {
	Text      string
	Method    Method
	Truncated bool
}

// Options tune one extraction call.
type Options struct {
	// MaxCharacters caps the output length in runes; 0 means unlimited.
	// Truncation is a hard cut, not word-boundary aware, so callers can rely
	// on the exact length.
	MaxCharacters int
	// ForceExternal skips native parsing for formats that have one.
	ForceExternal bool
}

// External is the AI-backed fallback extractor. The implementation owns
// transport concerns; timeouts arrive through the context.
type External interface {
	ExtractText(ctx context.Context, content []byte, hint string) (string, error)
}

// ErrUnsupportedFormat marks formats no strategy can process.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ExtractionError is returned only when every applicable strategy failed to
// produce any text. An empty-but-valid result is not an error.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %q: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
