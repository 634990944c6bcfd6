package huffman

import (
	"container/heap"
	"sort"
)

// Node is one node of the code tree. Leaves carry a symbol and its count;
// internal nodes carry the sum of their children's counts and always own
// exactly two children.
type Node struct {
	Symbol rune
	Freq   int
	Left   *Node
	Right  *Node

	seq int // heap tie-break, see BuildTree
}

// Leaf reports whether n carries a symbol.
func (n *Node) Leaf() bool { return n.Left == nil && n.Right == nil }

type nodeQueue []*Node

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].Freq != q[j].Freq {
		return q[i].Freq < q[j].Freq
	}
	return q[i].seq < q[j].seq
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any)   { *q = append(*q, x.(*Node)) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// BuildTree merges the two lowest-frequency nodes until a single root
// remains. The first pop becomes the left child, the second the right.
//
// Tie-break policy: leaves enter the queue in ascending symbol order and
// every node carries a monotonically increasing sequence number; equal
// frequencies are ordered by that number. Tree shape is therefore a pure
// function of the frequency table.
func BuildTree(freqs FrequencyTable) (*Node, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyInput
	}

	symbols := make([]rune, 0, len(freqs))
	for s := range freqs {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	pq := make(nodeQueue, 0, len(freqs))
	for i, s := range symbols {
		pq = append(pq, &Node{Symbol: s, Freq: freqs[s], seq: i})
	}
	heap.Init(&pq)

	seq := len(pq)
	for pq.Len() > 1 {
		left := heap.Pop(&pq).(*Node)
		right := heap.Pop(&pq).(*Node)
		heap.Push(&pq, &Node{
			Freq:  left.Freq + right.Freq,
			Left:  left,
			Right: right,
			seq:   seq,
		})
		seq++
	}
	// Single distinct symbol: the lone leaf is the root, no merge happens.
	return heap.Pop(&pq).(*Node), nil
}
