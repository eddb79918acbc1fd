package edgeheap

import "math"

// TripleIcf returns the contribution of the triple (uv, uw, vw) to
// icf(uw), given the numeric weights a = w(uv) and b = w(vw): forcing uw
// permanent pays for the lighter of two positive adjacent edges.
//
//	TripleIcf(a, b) = min(max(0, a), max(0, b))
//
// Permanent/Forbidden neighbors enter as ±Inf and saturate the min/max
// arithmetic without special cases.
func TripleIcf(a, b float64) float64 {
	return math.Min(math.Max(0, a), math.Max(0, b))
}

// TripleIcp returns the contribution of the triple (uv, uw, vw) to
// icp(uw), given a = w(uv) and b = w(vw):
//
//	a < 0 < b → min(-a, b)   uv already cut; pay the cheaper repair
//	b < 0 < a → min(a, -b)   vw already cut; symmetric
//	a, b > 0  → min(a, b)    both present; one of them must go
//	otherwise → 0
func TripleIcp(a, b float64) float64 {
	switch {
	case a < 0 && b > 0:
		return math.Min(-a, b)
	case a > 0 && b < 0:
		return math.Min(a, -b)
	case a > 0 && b > 0:
		return math.Min(a, b)
	default:
		return 0
	}
}
