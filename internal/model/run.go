package model

import (
	"time"

	"huffman_coding_go/pkg/stats"
)

// Run is one full encode cycle: the input text, the artifacts derived from
// it, and the round-trip verification verdict. The ID is a content hash of
// the text, so re-submitting the same input addresses the same run.
type Run struct {
	ID          string            `json:"id"`
	Text        string            `json:"text"`
	Frequencies map[string]int    `json:"frequencies"`
	Codes       map[string]string `json:"codes"`
	Encoded     string            `json:"encoded"`
	Stats       stats.Report      `json:"stats"`
	Verified    bool              `json:"verified"`
	CreatedAt   time.Time         `json:"created_at"`
}
