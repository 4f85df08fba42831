package model

import (
	"fmt"
	"strings"
)

// MergeMode is the policy for combining an imported holdings set with the
// previously stored set.
type MergeMode string

const (
	// MergeReplace discards the existing snapshot entirely.
	MergeReplace MergeMode = "replace"
	// MergeAccumulate sums quantities per symbol, taking prices and
	// 24h-change figures from the incoming record.
	MergeAccumulate MergeMode = "accumulate"
)

// ParseMergeMode parses a merge mode string. Empty input defaults to replace.
func ParseMergeMode(s string) (MergeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "replace":
		return MergeReplace, nil
	case "accumulate":
		return MergeAccumulate, nil
	default:
		return "", fmt.Errorf("invalid merge mode %q (use 'replace' or 'accumulate')", s)
	}
}

// ImportResult is the outcome of one import batch.
type ImportResult struct {
	ImportID         string    `json:"importId"`
	Success          bool      `json:"success"`
	Holdings         []Holding `json:"holdings,omitempty"` // committed snapshot after merge
	Errors           []string  `json:"errors,omitempty"`   // fatal and row-level errors, in order
	DetectedExchange string    `json:"detectedExchange,omitempty"`
	Rows             int       `json:"rows"` // data rows seen in the source file
}
