package models

// Diagnostic reports a question block that failed to parse.
type Diagnostic struct {
	// Block is the 1-based block number in input order.
	Block int `json:"block"`
	// Reason is a human-readable description of the failure.
	Reason string `json:"reason"`
}
