package extraction

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// formatClass is the first state of the pipeline: it names the strategy path
// a file enters with.
type formatClass int

const (
	classPlainText formatClass = iota
	classNative
	classExternal
	classUnsupported
)

// nativeKind selects the in-process parser for classNative formats.
type nativeKind int

const (
	nativeNone nativeKind = iota
	nativeDocx
	nativeXlsx
	nativePDF
)

var plainTextExts = map[string]bool{
	".txt": true, ".md": true, ".markdown": true, ".rst": true,
	".csv": true, ".tsv": true, ".json": true, ".yaml": true, ".yml": true,
	".xml": true, ".html": true, ".htm": true, ".log": true,
	".go": true, ".py": true, ".js": true, ".ts": true, ".java": true,
	".c": true, ".h": true, ".sql": true, ".sh": true,
}

// legacy or parserless document formats; the external collaborator handles
// these. Images are included because the backing model is multimodal.
var externalExts = map[string]bool{
	".doc": true, ".rtf": true, ".odt": true, ".odp": true, ".ods": true,
	".ppt": true, ".pptx": true,
	".png": true, ".jpg": true, ".jpeg": true, ".webp": true, ".gif": true,
	".tif": true, ".tiff": true,
}

var unsupportedExts = map[string]bool{
	".mp3": true, ".wav": true, ".flac": true, ".ogg": true, ".m4a": true,
	".mp4": true, ".avi": true, ".mov": true, ".mkv": true, ".webm": true,
	".zip": true, ".tar": true, ".gz": true, ".rar": true, ".7z": true,
	".exe": true, ".dll": true, ".so": true, ".bin": true,
}

// classify decides the strategy path from the file extension, falling back to
// content sniffing for unknown extensions.
func classify(content []byte, filename string) (formatClass, nativeKind) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".docx":
		return classNative, nativeDocx
	case ".xlsx":
		return classNative, nativeXlsx
	case ".pdf":
		return classNative, nativePDF
	}
	if plainTextExts[ext] {
		return classPlainText, nativeNone
	}
	if externalExts[ext] {
		return classExternal, nativeNone
	}
	if unsupportedExts[ext] {
		return classUnsupported, nativeNone
	}

	// Unknown extension: sniff the content.
	mime := mimetype.Detect(content)
	switch {
	case mime.Is("application/pdf"):
		return classNative, nativePDF
	case strings.HasPrefix(mime.String(), "text/"),
		mime.Is("application/json"),
		mime.Is("application/xml"):
		return classPlainText, nativeNone
	case strings.HasPrefix(mime.String(), "audio/"),
		strings.HasPrefix(mime.String(), "video/"):
		return classUnsupported, nativeNone
	case strings.HasPrefix(mime.String(), "image/"):
		return classExternal, nativeNone
	}

	// Unclassifiable binary: let the external collaborator try.
	return classExternal, nativeNone
}
