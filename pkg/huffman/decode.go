package huffman

import (
	"fmt"
	"strings"
)

// Decode replays stream against the tree: a cursor starts at the root,
// moves left on '0' and right on '1', and emits the leaf's symbol before
// resetting to the root. The stream must end with the cursor at the root;
// ending mid-descent is ErrTruncatedStream. An empty stream decodes to "".
//
// When the root itself is a leaf each bit stands for one symbol and must be
// '0', matching the fixed code GenerateCodes assigns.
func Decode(stream string, root *Node) (string, error) {
	if root == nil {
		return "", ErrEmptyInput
	}

	if root.Leaf() {
		for i := 0; i < len(stream); i++ {
			if stream[i] != '0' {
				return "", fmt.Errorf("offset %d: byte %q: %w", i, stream[i], ErrInvalidBit)
			}
		}
		return strings.Repeat(string(root.Symbol), len(stream)), nil
	}

	var sb strings.Builder
	cur := root
	for i := 0; i < len(stream); i++ {
		switch stream[i] {
		case '0':
			cur = cur.Left
		case '1':
			cur = cur.Right
		default:
			return "", fmt.Errorf("offset %d: byte %q: %w", i, stream[i], ErrInvalidBit)
		}
		if cur.Leaf() {
			sb.WriteRune(cur.Symbol)
			cur = root
		}
	}
	if cur != root {
		return "", fmt.Errorf("stream ends mid-symbol: %w", ErrTruncatedStream)
	}
	return sb.String(), nil
}
