package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadDocument reads a quiz document from disk and returns its decoded
// text. The format is chosen by file extension: .docx files go through
// paragraph extraction, everything else is treated as UTF-8 text.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return ExtractDocxText(data)
	default:
		return DecodeText(data)
	}
}
