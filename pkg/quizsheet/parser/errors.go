package parser

import "fmt"

// MalformedBlockError describes a question block that fails the
// parsing grammar.
type MalformedBlockError struct {
	// Block is the 1-based block number in input order.
	Block int
	// Raw is the block's original text.
	Raw string
	// Reason is a human-readable description of the failure.
	Reason string
}

func (e *MalformedBlockError) Error() string {
	return fmt.Sprintf("block %d: %s", e.Block, e.Reason)
}

// NewMalformedBlockError creates a MalformedBlockError for a block.
func NewMalformedBlockError(block Block, format string, args ...any) *MalformedBlockError {
	return &MalformedBlockError{
		Block:  block.Index,
		Raw:    block.Raw(),
		Reason: fmt.Sprintf(format, args...),
	}
}
