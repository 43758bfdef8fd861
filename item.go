// https://github.com/tidwall/mxcif
//
// Copyright 2026 Joshua J Baker. All rights reserved.
package mxcif

// Item is a rectangle stored in a Tree.
//
// Rect may be changed by the caller at any time to move or resize the item.
// The tree only notices the change on Reinsert, which must be called before
// the item is queried again. The tree normalizes Rect in place on Insert and
// Reinsert.
type Item[T any] struct {
	Rect [4]float64
	Data T

	// handle, owned by the tree
	tr    *Tree[T]
	node  int32
	index int32
}

// NewItem returns a new item that is not yet in any tree.
// Returns ErrInvalidBounds if min is greater than max on either axis.
func NewItem[T any](rect [4]float64, data T) (*Item[T], error) {
	if !rect4(rect).valid() {
		return nil, ErrInvalidBounds
	}
	return &Item[T]{Rect: rect, Data: data, node: -1, index: -1}, nil
}

// Inserted returns true if the item is currently stored in a tree.
func (item *Item[T]) Inserted() bool {
	return item.tr != nil
}

func (item *Item[T]) stale() {
	item.tr = nil
	item.node = -1
	item.index = -1
}
