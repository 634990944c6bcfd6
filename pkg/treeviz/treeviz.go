// Package treeviz renders a code tree as Graphviz DOT source. It only reads
// the tree; turning the DOT into an image is left to the dot binary.
package treeviz

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"huffman_coding_go/pkg/huffman"
)

// DOT emits the tree top-down: leaves as boxes labelled 'symbol': freq,
// internal nodes as ellipses labelled freq=n, edges labelled 0 (left) and
// 1 (right).
func DOT(root *huffman.Node) string {
	var sb strings.Builder
	sb.WriteString("digraph huffman {\n")
	sb.WriteString("\trankdir=TB;\n")

	counter := 0
	var add func(n *huffman.Node) string
	add = func(n *huffman.Node) string {
		id := fmt.Sprintf("n%d", counter)
		counter++
		if n.Leaf() {
			fmt.Fprintf(&sb, "\t%s [label=%q shape=box];\n", id, fmt.Sprintf("'%s': %d", symbolLabel(n.Symbol), n.Freq))
			return id
		}
		fmt.Fprintf(&sb, "\t%s [label=%q shape=ellipse];\n", id, fmt.Sprintf("freq=%d", n.Freq))
		left := add(n.Left)
		fmt.Fprintf(&sb, "\t%s -> %s [label=\"0\"];\n", id, left)
		right := add(n.Right)
		fmt.Fprintf(&sb, "\t%s -> %s [label=\"1\"];\n", id, right)
		return id
	}
	if root != nil {
		add(root)
	}

	sb.WriteString("}\n")
	return sb.String()
}

func symbolLabel(s rune) string {
	if unicode.IsPrint(s) && s != ' ' {
		return string(s)
	}
	return fmt.Sprintf("U+%04X", s)
}

var unsafeChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// Filename derives the cached visualization name from the input text,
// replacing filesystem-hostile characters and truncating long inputs.
func Filename(inputText string) string {
	name := unsafeChars.ReplaceAllString(inputText, "_")
	if name == "" {
		name = "huffman_tree"
	}
	if r := []rune(name); len(r) > 30 {
		name = string(r[:27]) + "..."
	}
	return name + ".dot"
}

// Render writes the DOT file for root under dir, named after inputText.
// An existing file for the same input is reused rather than rewritten.
func Render(root *huffman.Node, dir, inputText string) (path string, reused bool, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create %s: %w", dir, err)
	}
	path = filepath.Join(dir, Filename(inputText))
	if _, err := os.Stat(path); err == nil {
		return path, true, nil
	}
	if err := os.WriteFile(path, []byte(DOT(root)), 0o644); err != nil {
		return "", false, fmt.Errorf("write %s: %w", path, err)
	}
	return path, false, nil
}
