// Package stats computes the compression figures reported alongside a
// coding run: fixed-width original size vs. variable-length encoded size.
package stats

import (
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report compares a text against its encoded bit stream. OriginalBits
// assumes 8 bits per symbol; Ratio is the saved share in percent.
type Report struct {
	OriginalBits int     `json:"original_bits"`
	EncodedBits  int     `json:"encoded_bits"`
	SavedBits    int     `json:"saved_bits"`
	Ratio        float64 `json:"ratio"`
}

func Compute(text, stream string) Report {
	r := Report{
		OriginalBits: utf8.RuneCountInString(text) * 8,
		EncodedBits:  len(stream),
	}
	r.SavedBits = r.OriginalBits - r.EncodedBits
	if r.OriginalBits > 0 {
		r.Ratio = float64(r.SavedBits) / float64(r.OriginalBits) * 100
	}
	return r
}

var printer = message.NewPrinter(language.English)

// Format renders the report the way the CLI prints it, with grouped digits
// for large inputs.
func (r Report) Format() string {
	return printer.Sprintf("Original length (8 bits/symbol): %d bits\n", r.OriginalBits) +
		printer.Sprintf("Encoded length (Huffman):        %d bits\n", r.EncodedBits) +
		printer.Sprintf("Space saved:                     %d bits\n", r.SavedBits) +
		printer.Sprintf("Compression ratio:               %.2f%%", r.Ratio)
}
