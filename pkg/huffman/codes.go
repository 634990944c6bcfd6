package huffman

import (
	"fmt"
	"strings"
)

// GenerateCodes walks the tree depth-first, appending '0' on left descents
// and '1' on right descents, and records each leaf's path. A leaf root
// (single-symbol alphabet) has a zero-length path, so it gets the fixed
// one-bit code "0"; Decode applies the same convention.
func GenerateCodes(root *Node) CodeTable {
	codes := make(CodeTable)
	if root == nil {
		return codes
	}
	if root.Leaf() {
		codes[root.Symbol] = "0"
		return codes
	}

	var walk func(n *Node, path string)
	walk = func(n *Node, path string) {
		if n.Leaf() {
			codes[n.Symbol] = path
			return
		}
		walk(n.Left, path+"0")
		walk(n.Right, path+"1")
	}
	walk(root, "")
	return codes
}

// Encode concatenates the code of each rune of text in order. A rune absent
// from the table means the table was built from different input; that is
// reported as ErrSymbolNotFound naming the rune.
func Encode(text string, table CodeTable) (string, error) {
	var sb strings.Builder
	for _, s := range text {
		code, ok := table[s]
		if !ok {
			return "", fmt.Errorf("symbol %q: %w", s, ErrSymbolNotFound)
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}
