package input

import (
	"errors"
	"testing"
)

func TestDecodeText(t *testing.T) {
	text, err := DecodeText([]byte("What is DNS?\nA. Domain Name System\n"))
	if err != nil {
		t.Fatalf("DecodeText failed: %v", err)
	}
	if text != "What is DNS?\nA. Domain Name System\n" {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestDecodeTextStripsBOM(t *testing.T) {
	text, err := DecodeText([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'})
	if err != nil {
		t.Fatalf("DecodeText failed: %v", err)
	}
	if text != "hi" {
		t.Errorf("expected BOM stripped, got %q", text)
	}
}

func TestDecodeTextRejectsBinary(t *testing.T) {
	_, err := DecodeText([]byte{0xFF, 0xFE, 0x00, 0x41})
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %T", err)
	}
}
