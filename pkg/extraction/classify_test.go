package extraction

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		content   []byte
		wantClass formatClass
		wantKind  nativeKind
	}{
		{"markdown", "readme.md", []byte("# hi"), classPlainText, nativeNone},
		{"csv", "data.csv", []byte("a,b\n1,2"), classPlainText, nativeNone},
		{"json", "cfg.json", []byte(`{"a":1}`), classPlainText, nativeNone},
		{"source code", "main.go", []byte("package main"), classPlainText, nativeNone},
		{"docx", "doc.docx", []byte("PK"), classNative, nativeDocx},
		{"xlsx", "sheet.xlsx", []byte("PK"), classNative, nativeXlsx},
		{"pdf", "doc.pdf", []byte("%PDF-"), classNative, nativePDF},
		{"legacy doc", "old.doc", []byte{0xd0, 0xcf}, classExternal, nativeNone},
		{"rtf", "memo.rtf", []byte(`{\rtf1`), classExternal, nativeNone},
		{"image", "scan.png", []byte{0x89, 0x50}, classExternal, nativeNone},
		{"audio", "call.mp3", []byte{0xff, 0xfb}, classUnsupported, nativeNone},
		{"video", "demo.mp4", []byte{0x00}, classUnsupported, nativeNone},
		{"archive", "backup.zip", []byte("PK"), classUnsupported, nativeNone},
		{"no extension text sniff", "NOTES", []byte("plain text body here"), classPlainText, nativeNone},
		{"no extension pdf sniff", "upload", []byte("%PDF-1.7 stream"), classNative, nativePDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, kind := classify(tt.content, tt.filename)
			if class != tt.wantClass {
				t.Errorf("class = %d, want %d", class, tt.wantClass)
			}
			if kind != tt.wantKind {
				t.Errorf("kind = %d, want %d", kind, tt.wantKind)
			}
		})
	}
}
