package models

// Table represents the built output dataset: a header row plus one row
// per question, all cells as strings.
type Table struct {
	// Header contains the column names in output order.
	Header []string `json:"header"`
	// Rows contains one row per question, in input order.
	Rows [][]string `json:"rows"`
}

// Preview represents a review-oriented view of the same rows, intended
// for on-screen display before export.
type Preview struct {
	// Header contains the preview column names.
	Header []string `json:"header"`
	// Rows contains at most the configured number of rows.
	Rows [][]string `json:"rows"`
	// Total is the number of questions the preview was built from.
	Total int `json:"total"`
	// Truncated reports whether rows were dropped to honor the limit.
	Truncated bool `json:"truncated"`
}
