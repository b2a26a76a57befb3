package huffman

import (
	"container/heap"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/stegram/grammar"
)

// ErrUnknownSymbol is returned when a table is requested for a symbol
// the grammar does not define.
var ErrUnknownSymbol = errors.New("huffman: unknown symbol")

// Codec lazily builds and caches one prefix-code table per grammar
// symbol. The cache is append-only: a built table is never invalidated
// or rebuilt for the lifetime of the Codec.
type Codec struct {
	g *grammar.Grammar

	mu    sync.RWMutex
	cache map[string]map[string]string // symbol -> alternative -> codeword
}

// NewCodec returns a Codec bound to the given immutable grammar.
func NewCodec(g *grammar.Grammar) *Codec {
	return &Codec{
		g:     g,
		cache: make(map[string]map[string]string),
	}
}

// Table returns the alternative→codeword mapping for symbol, building
// and caching it on first request. Single-alternative symbols map to the
// empty codeword. The returned map is a copy; mutating it does not
// affect the cache.
func (c *Codec) Table(symbol string) (map[string]string, error) {
	c.mu.RLock()
	table, ok := c.cache[symbol]
	c.mu.RUnlock()
	if !ok {
		alts, exists := c.g.Alternatives(symbol)
		if !exists {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
		}
		table = build(alts)
		c.mu.Lock()
		// another reader may have built it meanwhile; identical result either way
		if prior, raced := c.cache[symbol]; raced {
			table = prior
		} else {
			c.cache[symbol] = table
		}
		c.mu.Unlock()
	}

	out := make(map[string]string, len(table))
	for alt, code := range table {
		out[alt] = code
	}
	return out, nil
}

// node is one pending subtree during Huffman merging. seq preserves
// declaration order for leaves and creation order for merged nodes,
// giving the tie-break that makes the construction deterministic.
type node struct {
	weight      float64
	seq         int
	alt         string // leaf payload; empty for merged nodes
	left, right *node
}

// nodeHeap is a min-heap over (weight, seq).
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// build constructs the canonical prefix code for the given ordered
// weighted alternatives. The first-popped (lower-weight, earlier-declared)
// subtree of every merge receives the '0' prefix; the second receives '1'.
func build(alts []grammar.Alternative) map[string]string {
	table := make(map[string]string, len(alts))
	if len(alts) == 1 {
		table[alts[0].Text] = ""
		return table
	}

	h := make(nodeHeap, 0, len(alts))
	for i, a := range alts {
		h = append(h, &node{weight: a.Weight, seq: i, alt: a.Text})
	}
	heap.Init(&h)

	seq := len(alts)
	for h.Len() > 1 {
		first := heap.Pop(&h).(*node)
		second := heap.Pop(&h).(*node)
		heap.Push(&h, &node{
			weight: first.weight + second.weight,
			seq:    seq,
			left:   first,
			right:  second,
		})
		seq++
	}

	assign(h[0], "", table)
	return table
}

// assign walks the merge tree depth-first, emitting '0' on left (first
// popped) branches and '1' on right branches.
func assign(n *node, prefix string, table map[string]string) {
	if n.left == nil && n.right == nil {
		table[n.alt] = prefix
		return
	}
	assign(n.left, prefix+"0", table)
	assign(n.right, prefix+"1", table)
}
