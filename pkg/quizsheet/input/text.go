// Package input adapts uploaded document bytes into decoded text for
// the parser. It is the only place that knows about file formats.
package input

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeError indicates input bytes could not be decoded as text.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode failed: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeText decodes raw bytes as UTF-8 text. A leading byte order
// mark is stripped. Undecodable binary content yields a DecodeError.
func DecodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", &DecodeError{Reason: "input is not valid UTF-8 text"}
	}
	return string(data), nil
}
