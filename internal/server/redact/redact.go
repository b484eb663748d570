// Package redact implements the development stand-in for the real
// redaction engine: it validates the input and returns a marked copy
// under the canonical output name.
package redact

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/inkveil/inkveil/internal/common"
)

var pdfMagic = []byte("%PDF-")

// marker is appended after the document body. PDF readers ignore
// trailing comment lines, so the copy stays openable.
var marker = []byte("\n% processed by inkveil dev server\n")

// OutputName returns the canonical artifact name for an input filename.
func OutputName(name string) string {
	base := filepath.Base(name)
	if strings.HasPrefix(strings.ToLower(base), common.RedactedPrefix) {
		return base
	}
	return common.RedactedPrefix + base
}

// Process validates one uploaded document and produces its artifact.
// The returned name is the canonical output name the client correlates
// against.
func Process(name string, data []byte) (string, []byte, error) {
	if !bytes.HasPrefix(data, pdfMagic) {
		return "", nil, fmt.Errorf("%s: %w", name, common.ErrorUnsupportedFileType)
	}

	out := make([]byte, 0, len(data)+len(marker))
	out = append(out, data...)
	out = append(out, marker...)

	return OutputName(name), out, nil
}
