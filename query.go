// https://github.com/tidwall/mxcif
//
// Copyright 2026 Joshua J Baker. All rights reserved.
package mxcif

func (tr *Tree[T]) scan(n int32, iter func(item *Item[T]) bool) bool {
	nd := &tr.nodes[n]
	for _, item := range nd.items {
		if !iter(item) {
			return false
		}
	}
	if nd.kind == kindBranch {
		for _, q := range nd.quads {
			if !tr.scan(q, iter) {
				return false
			}
		}
	}
	return true
}

// search visits the items of the subtree at n that match. Subtrees whose
// bounds are inside the query region are visited without testing items.
func (tr *Tree[T]) search(n int32, r rect, match func(a, b rect) bool,
	iter func(item *Item[T]) bool,
) bool {
	nd := &tr.nodes[n]
	if !rectIntersects(nd.rect, r) {
		return true
	}
	if rectContains(r, nd.rect) {
		return tr.scan(n, iter)
	}
	for _, item := range nd.items {
		if !match(r, rect4(item.Rect)) {
			continue
		}
		if !iter(item) {
			return false
		}
	}
	if nd.kind == kindBranch {
		for _, q := range nd.quads {
			if !tr.search(q, r, match, iter) {
				return false
			}
		}
	}
	return true
}

// Scan iterates over every item in the tree. Return false from iter to stop.
func (tr *Tree[T]) Scan(iter func(item *Item[T]) bool) {
	tr.scan(root, iter)
}

// SearchEnclosed iterates over the items that fit entirely within rect.
// Return false from iter to stop.
func (tr *Tree[T]) SearchEnclosed(rect [4]float64,
	iter func(item *Item[T]) bool,
) {
	tr.search(root, rect4(rect).normalize(), rectContains, iter)
}

// SearchOverlapped iterates over the items that share any area or boundary
// with rect. Return false from iter to stop.
func (tr *Tree[T]) SearchOverlapped(rect [4]float64,
	iter func(item *Item[T]) bool,
) {
	tr.search(root, rect4(rect).normalize(), rectIntersects, iter)
}

func collect[T any](search func(iter func(item *Item[T]) bool)) []*Item[T] {
	var items []*Item[T]
	search(func(item *Item[T]) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Items returns every item in the tree, in no particular order.
func (tr *Tree[T]) Items() []*Item[T] {
	return collect(tr.Scan)
}

// Enclosed returns the items that fit entirely within rect, in no particular
// order.
func (tr *Tree[T]) Enclosed(rect [4]float64) []*Item[T] {
	return collect(func(iter func(item *Item[T]) bool) {
		tr.SearchEnclosed(rect, iter)
	})
}

// Overlapped returns the items that share any area or boundary with rect, in
// no particular order.
func (tr *Tree[T]) Overlapped(rect [4]float64) []*Item[T] {
	return collect(func(iter func(item *Item[T]) bool) {
		tr.SearchOverlapped(rect, iter)
	})
}

// Under returns the items whose bounds contain the point, edges included.
func (tr *Tree[T]) Under(x, y float64) []*Item[T] {
	return tr.Overlapped([4]float64{x, y, x, y})
}

func (tr *Tree[T]) depth(n int32) int {
	nd := &tr.nodes[n]
	if nd.kind != kindBranch {
		return 0
	}
	var d int
	for _, q := range nd.quads {
		d = max(d, tr.depth(q))
	}
	return d + 1
}

func (tr *Tree[T]) nodeCount(n int32) int {
	nd := &tr.nodes[n]
	count := 1
	if nd.kind == kindBranch {
		for _, q := range nd.quads {
			count += tr.nodeCount(q)
		}
	}
	return count
}

// Depth returns the number of subdivided levels currently in the tree.
// An unsubdivided tree has a depth of zero.
func (tr *Tree[T]) Depth() int {
	return tr.depth(root)
}

// NodeCount returns the number of live nodes, the root included.
func (tr *Tree[T]) NodeCount() int {
	return tr.nodeCount(root)
}

// LeafBounds returns the bounds of every unsubdivided node. Together they
// tile the tree bounds, which makes them suitable for drawing the grid.
func (tr *Tree[T]) LeafBounds() [][4]float64 {
	var leaves [][4]float64
	var walk func(n int32)
	walk = func(n int32) {
		nd := &tr.nodes[n]
		if nd.kind != kindBranch {
			leaves = append(leaves, nd.rect.array())
			return
		}
		for _, q := range nd.quads {
			walk(q)
		}
	}
	walk(root)
	return leaves
}
