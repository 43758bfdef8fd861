// https://github.com/tidwall/mxcif
//
// Copyright 2026 Joshua J Baker. All rights reserved.

// Package mxcif implements an MX-CIF quadtree: a dynamic spatial index of
// axis-aligned rectangles that supports O(1) removal and relocation of items
// whose bounds change.
package mxcif

import "errors"

var (
	ErrInvalidBounds = errors.New("min cannot be greater than max")
	ErrInvalidDepth  = errors.New("max depth cannot be less than zero")
	ErrStaleHandle   = errors.New("item is not in the tree")
	ErrInserted      = errors.New("item is already in a tree")
)

const (
	kindLeaf   = 0 // no quads
	kindBranch = 1 // exactly four quads
)

const root = 0

type node[T any] struct {
	rect   rect
	depth  int // remaining subdivision budget
	parent int32
	kind   int8
	quads  [4]int32
	items  []*Item[T]
}

// Tree is an MX-CIF quadtree over a fixed rectangular region.
//
// Each item is stored in the deepest node whose bounds contain the item
// entirely. Items that do not fit in the tree bounds at all are stored at
// the root. Such items are returned by any Enclosed or Overlapped query whose
// region covers the whole tree, even if they lie outside that region.
//
// Tree is not safe for concurrent use. It's your responsibility to manage
// access using a lock, such as with a sync.RWMutex.
type Tree[T any] struct {
	nodes    []node[T]
	free     []int32
	maxDepth int
	count    int
}

// New returns an empty tree covering rect that subdivides at most maxDepth
// levels below the root.
func New[T any](rect [4]float64, maxDepth int) (*Tree[T], error) {
	r := rect4(rect)
	if !r.valid() {
		return nil, ErrInvalidBounds
	}
	if maxDepth < 0 {
		return nil, ErrInvalidDepth
	}
	tr := &Tree[T]{maxDepth: maxDepth}
	tr.nodes = append(tr.nodes, node[T]{rect: r, depth: maxDepth, parent: -1})
	return tr, nil
}

// alloc returns the index of a fresh leaf node. Reuses freed nodes first.
// Appending may move the arena, so pointers into tr.nodes must not be held
// across a call.
func (tr *Tree[T]) alloc(r rect, depth int, parent int32) int32 {
	nd := node[T]{rect: r, depth: depth, parent: parent}
	if i := len(tr.free) - 1; i >= 0 {
		n := tr.free[i]
		tr.free = tr.free[:i]
		tr.nodes[n] = nd
		return n
	}
	tr.nodes = append(tr.nodes, nd)
	return int32(len(tr.nodes) - 1)
}

func (tr *Tree[T]) release(n int32) {
	tr.nodes[n] = node[T]{parent: -1}
	tr.free = append(tr.free, n)
}

func (tr *Tree[T]) subdivide(n int32) {
	quads := calcQuads(tr.nodes[n].rect)
	depth := tr.nodes[n].depth - 1
	var idx [4]int32
	for i := range 4 {
		idx[i] = tr.alloc(quads[i], depth, n)
	}
	tr.nodes[n].quads = idx
	tr.nodes[n].kind = kindBranch
}

// collapse frees the quads of n. They must all be empty leaves.
func (tr *Tree[T]) collapse(n int32) {
	if tr.nodes[n].kind != kindBranch {
		return
	}
	for _, q := range tr.nodes[n].quads {
		tr.release(q)
	}
	tr.nodes[n].quads = [4]int32{}
	tr.nodes[n].kind = kindLeaf
}

// empty returns true when n has no items and no quad holds anything.
// A branch below the root is never left empty, so an empty subtree can be
// detected from n and its immediate quads.
func (tr *Tree[T]) empty(n int32) bool {
	nd := &tr.nodes[n]
	if len(nd.items) > 0 {
		return false
	}
	if nd.kind == kindBranch {
		for _, q := range nd.quads {
			qn := &tr.nodes[q]
			if qn.kind == kindBranch || len(qn.items) > 0 {
				return false
			}
		}
	}
	return true
}

// cleanup prunes n and its ancestors for as long as they are empty.
func (tr *Tree[T]) cleanup(n int32) {
	for n >= 0 && tr.empty(n) {
		tr.collapse(n)
		n = tr.nodes[n].parent
	}
}

func (tr *Tree[T]) push(n int32, item *Item[T]) {
	nd := &tr.nodes[n]
	item.tr = tr
	item.node = n
	item.index = int32(len(nd.items))
	nd.items = append(nd.items, item)
	tr.count++
}

// pick returns the first quad of n that fully contains r, or -1.
func (tr *Tree[T]) pick(n int32, r rect) int32 {
	for _, q := range tr.nodes[n].quads {
		if rectContains(tr.nodes[q].rect, r) {
			return q
		}
	}
	return -1
}

// place stores the item in the deepest node at or below n that contains r.
// The caller guarantees that n contains r.
func (tr *Tree[T]) place(n int32, item *Item[T], r rect) {
	for {
		if tr.nodes[n].kind == kindLeaf && tr.nodes[n].depth > 0 {
			tr.subdivide(n)
		}
		if tr.nodes[n].kind != kindBranch {
			break
		}
		q := tr.pick(n, r)
		if q < 0 {
			break
		}
		n = q
	}
	tr.push(n, item)
}

func (tr *Tree[T]) insert(item *Item[T]) {
	r := rect4(item.Rect).normalize()
	item.Rect = r.array()
	if !rectContains(tr.nodes[root].rect, r) {
		tr.push(root, item)
		return
	}
	tr.place(root, item, r)
}

// Insert adds an item to the tree.
// Returns ErrInserted if the item is already in a tree.
func (tr *Tree[T]) Insert(item *Item[T]) error {
	if item.tr != nil {
		return ErrInserted
	}
	tr.insert(item)
	return nil
}

// owns returns true when the item handle points at a live slot of this tree.
func (tr *Tree[T]) owns(item *Item[T]) bool {
	if item.tr != tr || item.node < 0 || int(item.node) >= len(tr.nodes) {
		return false
	}
	items := tr.nodes[item.node].items
	return item.index >= 0 && int(item.index) < len(items) &&
		items[item.index] == item
}

func (tr *Tree[T]) remove(item *Item[T]) {
	n, i := item.node, item.index
	nd := &tr.nodes[n]
	last := int32(len(nd.items) - 1)
	if i != last {
		nd.items[i] = nd.items[last]
		nd.items[i].index = i
	}
	nd.items[last] = nil
	nd.items = nd.items[:last]
	tr.count--
	item.stale()
	tr.cleanup(n)
}

// Remove removes an item from the tree in constant time, not counting the
// pruning of emptied nodes.
// Returns ErrStaleHandle if the item is not in this tree.
func (tr *Tree[T]) Remove(item *Item[T]) error {
	if !tr.owns(item) {
		return ErrStaleHandle
	}
	tr.remove(item)
	return nil
}

// settled returns true when a fresh insert of r would land on node n.
func (tr *Tree[T]) settled(n int32, r rect) bool {
	if !rectContains(tr.nodes[root].rect, r) {
		return n == root
	}
	nd := &tr.nodes[n]
	if !rectContains(nd.rect, r) {
		return false
	}
	if nd.kind == kindLeaf && nd.depth > 0 {
		return false
	}
	if nd.kind == kindBranch && tr.pick(n, r) >= 0 {
		return false
	}
	for n != root {
		parent := tr.nodes[n].parent
		if tr.pick(parent, r) != n {
			return false
		}
		n = parent
	}
	return true
}

// Reinsert relocates an item after its Rect has changed. An item whose new
// bounds still belong to the same node keeps its place.
// Returns ErrStaleHandle if the item is not in this tree.
func (tr *Tree[T]) Reinsert(item *Item[T]) error {
	if !tr.owns(item) {
		return ErrStaleHandle
	}
	r := rect4(item.Rect).normalize()
	item.Rect = r.array()
	if tr.settled(item.node, r) {
		return nil
	}
	tr.remove(item)
	tr.insert(item)
	return nil
}

// Clear removes all items from the tree. Every removed item can be inserted
// again.
func (tr *Tree[T]) Clear() {
	tr.Scan(func(item *Item[T]) bool {
		item.stale()
		return true
	})
	rt := tr.nodes[root]
	tr.nodes = tr.nodes[:1]
	tr.nodes[root] = node[T]{rect: rt.rect, depth: rt.depth, parent: -1}
	tr.free = nil
	tr.count = 0
}

// Len returns the number of items in the tree.
func (tr *Tree[T]) Len() int {
	return tr.count
}

// Bounds returns the region covered by the tree.
func (tr *Tree[T]) Bounds() [4]float64 {
	return tr.nodes[root].rect.array()
}

// MaxDepth returns the subdivision budget the tree was created with.
func (tr *Tree[T]) MaxDepth() int {
	return tr.maxDepth
}
