// Package huffman builds prefix-free binary codes from symbol frequencies
// and encodes/decodes text with them. The whole pipeline is a pure function
// of the input text: frequencies -> tree -> code table -> bit stream.
package huffman

import "errors"

// Symbols are runes; the code table maps each rune to its '0'/'1' path.
type (
	FrequencyTable map[rune]int
	CodeTable      map[rune]string
)

var (
	ErrEmptyInput      = errors.New("empty input")
	ErrSymbolNotFound  = errors.New("symbol not found in code table")
	ErrTruncatedStream = errors.New("truncated stream")
	ErrInvalidBit      = errors.New("invalid bit")
)

// CountFrequencies tallies each distinct rune of text. Empty text yields an
// empty table; BuildTree rejects that downstream.
func CountFrequencies(text string) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, s := range text {
		freqs[s]++
	}
	return freqs
}

// Build runs the three build steps in order and returns all intermediate
// artifacts. Fails with ErrEmptyInput when text is empty.
func Build(text string) (FrequencyTable, *Node, CodeTable, error) {
	freqs := CountFrequencies(text)
	root, err := BuildTree(freqs)
	if err != nil {
		return nil, nil, nil, err
	}
	return freqs, root, GenerateCodes(root), nil
}
