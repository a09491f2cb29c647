package huff

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Node is one node of a code tree. A node with no children is a leaf and
// carries a symbol; an internal node always has exactly two children and
// carries only the combined weight of its subtrees (its Symbol is -1).
//
// Trees are built once, bottom-up, and never modified afterwards.
type Node struct {
	Symbol int
	Weight uint64
	Left   *Node
	Right  *Node

	// order is the node's insertion sequence number in the merge queue,
	// used to break weight ties.
	order int
}

// IsLeaf reports whether the node has no children.
func (node *Node) IsLeaf() bool {
	return node.Left == nil && node.Right == nil
}

// nodeQueue is a min-heap of nodes ordered by weight. Equal weights resolve
// by insertion order, so a given frequency table always produces the same
// tree shape.
type nodeQueue []*Node

func (queue nodeQueue) Len() int {
	return len(queue)
}

func (queue nodeQueue) Less(i, j int) bool {
	if queue[i].Weight != queue[j].Weight {
		return queue[i].Weight < queue[j].Weight
	}
	return queue[i].order < queue[j].order
}

func (queue nodeQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
}

func (queue *nodeQueue) Push(x any) {
	*queue = append(*queue, x.(*Node))
}

func (queue *nodeQueue) Pop() any {
	old := *queue
	node := old[len(old)-1]
	*queue = old[:len(old)-1]
	return node
}

// BuildTree constructs an optimal code tree from a frequency table: one leaf
// per symbol with a nonzero count, greedily merging the two lowest-weight
// nodes until a single root remains.
//
// Every table produced by [CollectFrequencies] contains the end-of-stream
// symbol, so the result is never nil. If that symbol is the only one with a
// nonzero count (an empty input), the root is that single leaf and its code
// is the empty bit path.
func BuildTree(counts FrequencyTable) *Node {
	assert.Assertf(
		counts[EOFSymbol] > 0,
		"end-of-stream symbol has count %d, want nonzero", counts[EOFSymbol])

	queue := make(nodeQueue, 0, NumSymbols)
	for symbol, count := range counts {
		if count == 0 {
			continue
		}
		queue = append(queue, &Node{
			Symbol: symbol,
			Weight: uint64(count),
			order:  len(queue),
		})
	}
	nextOrder := len(queue)

	heap.Init(&queue)
	for queue.Len() > 1 {
		left := heap.Pop(&queue).(*Node)
		right := heap.Pop(&queue).(*Node)
		heap.Push(&queue, &Node{
			Symbol: -1,
			Weight: left.Weight + right.Weight,
			Left:   left,
			Right:  right,
			order:  nextOrder,
		})
		nextOrder++
	}
	return heap.Pop(&queue).(*Node)
}
