// https://github.com/tidwall/mxcif
//
// Copyright 2026 Joshua J Baker. All rights reserved.

// Command mxcif-bench fills a tree with random rectangles and times each
// tree operation over them.
package main

import (
	"flag"
	"math/rand/v2"
	"os"

	"github.com/golang/glog"
	"github.com/tidwall/lotsa"
	"github.com/tidwall/mxcif"
)

var (
	n        = flag.Int("n", 100000, "Number of rectangles")
	maxDepth = flag.Int("depth", 8, "Maximum tree depth")
	size     = flag.Float64("size", 2, "Maximum rectangle width and height")
	seed     = flag.Uint64("seed", 0, "Random seed")
	moves    = flag.Float64("moves", 10, "Maximum distance an item moves on reinsert")
)

var bounds = [4]float64{-180, -90, 180, 90}

func randRect(rng *rand.Rand) [4]float64 {
	x := bounds[0] + rng.Float64()*(bounds[2]-bounds[0]-*size)
	y := bounds[1] + rng.Float64()*(bounds[3]-bounds[1]-*size)
	return [4]float64{x, y, x + rng.Float64()**size, y + rng.Float64()**size}
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if err := run(); err != nil {
		glog.Fatalf("failed to run: %v", err)
	}
}

func run() error {
	tr, err := mxcif.New[int](bounds, *maxDepth)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewPCG(*seed, 0))
	items := make([]*mxcif.Item[int], *n)
	for i := range items {
		if items[i], err = mxcif.NewItem(randRect(rng), i); err != nil {
			return err
		}
	}
	glog.Infof("bench with %d items, depth %d", *n, *maxDepth)
	lotsa.Output = os.Stdout

	print("insert     ")
	lotsa.Ops(*n, 1, func(i, _ int) {
		if err := tr.Insert(items[i]); err != nil {
			glog.Fatalf("insert %d: %v", i, err)
		}
	})
	glog.Infof("tree depth %d, %d nodes", tr.Depth(), tr.NodeCount())

	var hits int
	print("point      ")
	lotsa.Ops(*n, 1, func(i, _ int) {
		r := items[i].Rect
		hits += len(tr.Under((r[0]+r[2])/2, (r[1]+r[3])/2))
	})
	glog.Infof("point queries found %d items", hits)

	hits = 0
	print("overlapped ")
	lotsa.Ops(*n, 1, func(i, _ int) {
		tr.SearchOverlapped(items[i].Rect, func(_ *mxcif.Item[int]) bool {
			hits++
			return true
		})
	})
	glog.Infof("overlap queries found %d items", hits)

	hits = 0
	print("enclosed   ")
	lotsa.Ops(*n, 1, func(i, _ int) {
		r := items[i].Rect
		q := [4]float64{r[0] - *size, r[1] - *size, r[2] + *size, r[3] + *size}
		tr.SearchEnclosed(q, func(_ *mxcif.Item[int]) bool {
			hits++
			return true
		})
	})
	glog.Infof("enclose queries found %d items", hits)

	hits = 0
	print("nearest    ")
	lotsa.Ops(*n/100, 1, func(i, _ int) {
		r := items[i].Rect
		tr.Nearest(r[0], r[1], func(_ *mxcif.Item[int], _ float64) bool {
			hits++
			return hits%10 != 0
		})
	})
	glog.Infof("nearest queries visited %d items", hits)

	print("reinsert   ")
	lotsa.Ops(*n, 1, func(i, _ int) {
		item := items[i]
		dx := (rng.Float64()*2 - 1) * *moves
		dy := (rng.Float64()*2 - 1) * *moves
		item.Rect = [4]float64{
			item.Rect[0] + dx, item.Rect[1] + dy,
			item.Rect[2] + dx, item.Rect[3] + dy,
		}
		if err := tr.Reinsert(item); err != nil {
			glog.Fatalf("reinsert %d: %v", i, err)
		}
	})
	glog.Infof("tree depth %d, %d nodes, %d leaves", tr.Depth(),
		tr.NodeCount(), len(tr.LeafBounds()))

	print("remove     ")
	lotsa.Ops(*n, 1, func(i, _ int) {
		if err := tr.Remove(items[i]); err != nil {
			glog.Fatalf("remove %d: %v", i, err)
		}
	})
	glog.Infof("tree depth %d, %d nodes, %d items", tr.Depth(),
		tr.NodeCount(), tr.Len())

	for _, item := range items {
		if err := tr.Insert(item); err != nil {
			return err
		}
	}
	tr.Clear()
	glog.Infof("cleared, %d nodes", tr.NodeCount())
	return nil
}
