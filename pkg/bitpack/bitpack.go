// Package bitpack turns the coder's '0'/'1' streams into packed bytes and
// back. The bit count travels alongside the bytes since the final byte is
// zero-padded.
package bitpack

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// Pack writes stream MSB-first into bytes. Returns the packed bytes and the
// number of meaningful bits.
func Pack(stream string) ([]byte, int, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(stream); i++ {
		var err error
		switch stream[i] {
		case '0':
			err = w.WriteBool(false)
		case '1':
			err = w.WriteBool(true)
		default:
			return nil, 0, fmt.Errorf("offset %d: byte %q is not a bit", i, stream[i])
		}
		if err != nil {
			return nil, 0, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), len(stream), nil
}

// Unpack reads nbits bits MSB-first from data and renders them as '0'/'1'.
func Unpack(data []byte, nbits int) (string, error) {
	if nbits < 0 || nbits > len(data)*8 {
		return "", fmt.Errorf("bit count %d out of range for %d bytes", nbits, len(data))
	}
	r := bitio.NewReader(bytes.NewReader(data))
	var sb strings.Builder
	sb.Grow(nbits)
	for i := 0; i < nbits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String(), nil
}
