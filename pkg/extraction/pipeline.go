package extraction

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Pipeline orchestrates the extraction strategies. Concurrent calls are
// independent; the only shared resource is the external endpoint, which its
// implementation rate-limits.
type Pipeline struct {
	external External
}

func NewPipeline(external External) *Pipeline {
	return &Pipeline{external: external}
}

// Extract turns raw file bytes into plain text.
//
// Native parser failure is recoverable: the pipeline transitions to the
// external fallback instead of failing outright. Only exhaustion of both
// paths, or a classifiably-unsupported format, is terminal. Re-running on
// identical input is safe; the external path may return different text
// between calls, which is an accepted property of that path.
func (p *Pipeline) Extract(ctx context.Context, content []byte, filename string, opts Options) (Result, error) {
	class, kind := classify(content, filename)

	switch class {
	case classUnsupported:
		// No strategy applies; fail before any external call is wasted.
		return Result{Method: MethodUnsupported}, &ExtractionError{Filename: filename, Err: ErrUnsupportedFormat}

	case classPlainText:
		text := decodePlain(content)
		return p.finish(text, MethodPlainText, opts), nil

	case classNative:
		if opts.ForceExternal {
			return p.fallback(ctx, content, filename, opts, nil)
		}
		text, err := parseNative(content, kind)
		if err != nil {
			return p.fallback(ctx, content, filename, opts, err)
		}
		return p.finish(text, MethodNativeParse, opts), nil

	default: // classExternal
		return p.fallback(ctx, content, filename, opts, nil)
	}
}

// fallback runs the external collaborator. nativeErr, when non-nil, is the
// native parser failure that routed us here; it is kept in the terminal error
// so the log shows both causes.
func (p *Pipeline) fallback(ctx context.Context, content []byte, filename string, opts Options, nativeErr error) (Result, error) {
	if p.external == nil {
		err := fmt.Errorf("no external extractor configured")
		if nativeErr != nil {
			err = fmt.Errorf("native parse failed (%v) and no external extractor configured", nativeErr)
		}
		return Result{}, &ExtractionError{Filename: filename, Err: err}
	}

	text, err := p.external.ExtractText(ctx, content, filename)
	if err != nil {
		if nativeErr != nil {
			err = fmt.Errorf("native parse failed (%v); external fallback failed: %w", nativeErr, err)
		}
		return Result{}, &ExtractionError{Filename: filename, Err: err}
	}
	return p.finish(text, MethodExternalFallback, opts), nil
}

// finish applies post-processing uniformly regardless of which state produced
// the text.
func (p *Pipeline) finish(text string, method Method, opts Options) Result {
	res := Result{Text: text, Method: method}
	if opts.MaxCharacters > 0 && utf8.RuneCountInString(text) > opts.MaxCharacters {
		runes := []rune(text)
		res.Text = string(runes[:opts.MaxCharacters])
		res.Truncated = true
	}
	return res
}

// decodePlain returns content as a string, replacing invalid UTF-8 sequences
// so the result is always valid text.
func decodePlain(content []byte) string {
	if utf8.Valid(content) {
		return string(content)
	}
	return strings.ToValidUTF8(string(content), "�")
}
