// https://github.com/tidwall/mxcif
//
// Copyright 2026 Joshua J Baker. All rights reserved.
package mxcif

import (
	"math"
	"math/rand/v2"
	"sort"
	"testing"
)

func TestNearest(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	bounds := [4]float64{0, 0, 1000, 1000}
	tr := mustNew(t, bounds, 6)
	var items []*Item[int]
	for i := range 1000 {
		item := randItem(rng, bounds, 15)
		item.Data = i
		items = append(items, item)
		mustInsert(t, tr, item)
	}
	// out of bounds items take part as well
	far := mustItem(t, [4]float64{1100, 1100, 1110, 1110})
	items = append(items, far)
	mustInsert(t, tr, far)

	for range 50 {
		x, y := rng.Float64()*1200-100, rng.Float64()*1200-100
		expect := make([]float64, len(items))
		for i, item := range items {
			expect[i] = math.Sqrt(rect4(item.Rect).distSq(point{x, y}))
		}
		sort.Float64s(expect)
		var got []float64
		tr.Nearest(x, y, func(item *Item[int], dist float64) bool {
			got = append(got, dist)
			return true
		})
		if len(got) != len(expect) {
			t.Fatalf("got %d items, expect %d", len(got), len(expect))
		}
		for i := range got {
			if got[i] != expect[i] {
				t.Fatalf("%d: dist == %v, expect %v", i, got[i], expect[i])
			}
		}
	}
}

func TestNearestStops(t *testing.T) {
	tr := mustNew(t, [4]float64{0, 0, 100, 100}, 4)
	a := mustItem(t, [4]float64{10, 10, 20, 20})
	b := mustItem(t, [4]float64{50, 50, 60, 60})
	c := mustItem(t, [4]float64{80, 80, 90, 90})
	mustInsert(t, tr, a, b, c)
	var got []*Item[int]
	tr.Nearest(55, 55, func(item *Item[int], dist float64) bool {
		got = append(got, item)
		return len(got) < 2
	})
	if len(got) != 2 || got[0] != b || got[1] != c {
		t.Fatalf("got %v", got)
	}
	var n int
	mustNew(t, [4]float64{0, 0, 1, 1}, 2).Nearest(0, 0,
		func(item *Item[int], dist float64) bool {
			n++
			return true
		})
	if n != 0 {
		t.Fatal("expected no items")
	}
}
