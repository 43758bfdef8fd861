// https://github.com/tidwall/mxcif
//
// Copyright 2026 Joshua J Baker. All rights reserved.
package mxcif

import (
	"math"

	"github.com/tidwall/tinyqueue"
)

type queueItem[T any] struct {
	node int32
	item *Item[T] // nil for nodes
	dist float64  // squared
}

func (a *queueItem[T]) Less(b tinyqueue.Item) bool {
	return a.dist < b.(*queueItem[T]).dist
}

// Nearest iterates over all items ordered by their distance from the point
// x, y, closest first. The distance to an item that contains the point is
// zero. Return false from iter to stop.
func (tr *Tree[T]) Nearest(x, y float64,
	iter func(item *Item[T], dist float64) bool,
) {
	p := point{x, y}
	queue := tinyqueue.New(nil)
	queue.Push(&queueItem[T]{node: root, dist: tr.nodes[root].rect.distSq(p)})
	for queue.Len() > 0 {
		qi := queue.Pop().(*queueItem[T])
		if qi.item != nil {
			if !iter(qi.item, math.Sqrt(qi.dist)) {
				return
			}
			continue
		}
		nd := &tr.nodes[qi.node]
		for _, item := range nd.items {
			dist := rect4(item.Rect).distSq(p)
			queue.Push(&queueItem[T]{item: item, dist: dist})
		}
		if nd.kind == kindBranch {
			for _, q := range nd.quads {
				qn := &tr.nodes[q]
				if qn.kind == kindLeaf && len(qn.items) == 0 {
					continue
				}
				queue.Push(&queueItem[T]{node: q, dist: qn.rect.distSq(p)})
			}
		}
	}
}
