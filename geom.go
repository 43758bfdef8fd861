// https://github.com/tidwall/mxcif
//
// Copyright 2026 Joshua J Baker. All rights reserved.
package mxcif

type point struct {
	x, y float64
}

type rect struct {
	min, max point
}

func rect4(r [4]float64) rect {
	return rect{point{r[0], r[1]}, point{r[2], r[3]}}
}

func (r rect) array() [4]float64 {
	return [4]float64{r.min.x, r.min.y, r.max.x, r.max.y}
}

func (r rect) valid() bool {
	return r.min.x <= r.max.x && r.min.y <= r.max.y
}

func (r rect) normalize() rect {
	if r.min.x > r.max.x {
		r.min.x, r.max.x = r.max.x, r.min.x
	}
	if r.min.y > r.max.y {
		r.min.y, r.max.y = r.max.y, r.min.y
	}
	return r
}

// rectContains returns true when b fits entirely within a.
func rectContains(a, b rect) bool {
	if b.min.x < a.min.x || b.max.x > a.max.x {
		return false
	}
	if b.min.y < a.min.y || b.max.y > a.max.y {
		return false
	}
	return true
}

func rectIntersects(a, b rect) bool {
	if b.min.x > a.max.x || b.max.x < a.min.x {
		return false
	}
	if b.min.y > a.max.y || b.max.y < a.min.y {
		return false
	}
	return true
}

// calcQuads splits r at its midpoint. The order of the quads is stable and
// the tree relies on it when choosing between quads that share an edge.
func calcQuads(r rect) [4]rect {
	mid := point{(r.min.x + r.max.x) / 2, (r.min.y + r.max.y) / 2}
	return [4]rect{
		{point{r.min.x, r.min.y}, point{mid.x, mid.y}},
		{point{mid.x, r.min.y}, point{r.max.x, mid.y}},
		{point{r.min.x, mid.y}, point{mid.x, r.max.y}},
		{point{mid.x, mid.y}, point{r.max.x, r.max.y}},
	}
}

// distSq returns the squared distance from p to the nearest point of r.
func (r rect) distSq(p point) float64 {
	dx := axisDist(p.x, r.min.x, r.max.x)
	dy := axisDist(p.y, r.min.y, r.max.y)
	return dx*dx + dy*dy
}

func axisDist(k, min, max float64) float64 {
	if k < min {
		return min - k
	}
	if k <= max {
		return 0
	}
	return k - max
}

// Fits returns true if inner fits entirely within outer. Touching edges
// count as fitting.
func Fits(inner, outer [4]float64) bool {
	return rectContains(rect4(outer), rect4(inner))
}

// Overlaps returns true if a and b share any area or boundary. A shared edge
// or corner is an overlap.
func Overlaps(a, b [4]float64) bool {
	return rectIntersects(rect4(a), rect4(b))
}

// Normalize swaps the min and max of each axis that is inverted.
func Normalize(r [4]float64) [4]float64 {
	return rect4(r).normalize().array()
}
