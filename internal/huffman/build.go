package huffman

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Build builds an optimal code tree for the given symbol frequencies.
//
// freqs[i] is the frequency of Symbol(i).
// Symbols with a frequency of zero are left out of the tree.
// Build fails with ErrInvalidInput if all frequencies are zero,
// or if any frequency is negative.
//
// If only one symbol has a non-zero frequency,
// it is assigned the one-bit code "0".
//
// Build is deterministic: the same frequencies always produce the same tree.
func Build(freqs []int) (*Tree, error) {
	// This is the textbook Huffman algorithm with a priority queue [1].
	// Ties between nodes of the same frequency are broken by the order in
	// which the nodes were created: leaves in ascending symbol order,
	// followed by branches in the order they were combined.
	//
	// [1]: https://en.wikipedia.org/wiki/Huffman_coding#Basic_technique

	nodes := make(nodeHeap, 0, len(freqs))
	for i, f := range freqs {
		if f < 0 {
			return nil, fmt.Errorf("symbol %d has negative frequency %d: %w", i, f, ErrInvalidInput)
		}
		if f > 0 {
			nodes = append(nodes, &weighted{
				Node: &Leaf{Symbol: Symbol(i)},
				Freq: f,
				Seq:  len(nodes),
			})
		}
	}

	switch len(nodes) {
	case 0:
		return nil, fmt.Errorf("no symbols with a non-zero frequency: %w", ErrInvalidInput)
	case 1:
		// special-case:
		// A lone leaf would have an empty code, which cannot be
		// told apart in a stream. Hang it off a branch instead.
		return newTree(&Internal{Left: nodes[0].Node}), nil
	}

	numLeaves := len(nodes)
	seq := numLeaves
	heap.Init(&nodes)
	for len(nodes) > 1 {
		left := heap.Pop(&nodes).(*weighted)
		right := heap.Pop(&nodes).(*weighted)

		freq := left.Freq + right.Freq
		if freq < left.Freq {
			return nil, fmt.Errorf("total frequency overflows: %w", ErrInvalidInput)
		}

		heap.Push(&nodes, &weighted{
			Node: &Internal{Left: left.Node, Right: right.Node},
			Freq: freq,
			Seq:  seq,
		})
		seq++
	}

	// n leaves always take n-1 merges.
	assert.Assertf(seq == 2*numLeaves-1, "%d nodes created for %d leaves", seq, numLeaves)

	root, ok := nodes[0].Node.(*Internal)
	assert.Assertf(ok, "root of %d leaves is %T", numLeaves, nodes[0].Node)
	return newTree(root), nil
}

type weighted struct {
	Node Node

	// Frequency of the leaf, or the combined frequency of the leaves
	// under a branch.
	Freq int

	// Creation order of the node. Unique within a Build.
	Seq int
}

type nodeHeap []*weighted

func (ns nodeHeap) Len() int { return len(ns) }

func (ns nodeHeap) Less(i, j int) bool {
	if ns[i].Freq != ns[j].Freq {
		return ns[i].Freq < ns[j].Freq
	}
	return ns[i].Seq < ns[j].Seq
}

func (ns nodeHeap) Swap(i, j int) {
	ns[i], ns[j] = ns[j], ns[i]
}

func (ns *nodeHeap) Push(e interface{}) {
	*ns = append(*ns, e.(*weighted))
}

func (ns *nodeHeap) Pop() interface{} {
	n := len(*ns) - 1
	v := (*ns)[n]
	(*ns)[n] = nil
	*ns = (*ns)[:n]
	return v
}

var _ heap.Interface = (*nodeHeap)(nil)
