package geom

import "math"

// rayEps keeps edge hits at the ray origin from being re-selected.
const rayEps = 1e-9

// RayRectIntersect returns the nearest point where a ray starting at origin
// with the given direction leaves rect. The four edge candidates are tested
// and the smallest positive parametric distance wins. Degenerate rays with
// no forward candidate get a deterministic out-of-view fallback so callers
// never have to handle a miss.
func RayRectIntersect(origin Vec, dir float64, rect Rect) Vec {
	dx := math.Cos(dir)
	dy := math.Sin(dir)

	best := math.Inf(1)
	if dx > rayEps {
		best = math.Min(best, (rect.Max.X-origin.X)/dx)
	} else if dx < -rayEps {
		best = math.Min(best, (rect.Min.X-origin.X)/dx)
	}
	if dy > rayEps {
		best = math.Min(best, (rect.Max.Y-origin.Y)/dy)
	} else if dy < -rayEps {
		best = math.Min(best, (rect.Min.Y-origin.Y)/dy)
	}

	if math.IsInf(best, 1) || best <= 0 {
		// Out-of-view fallback, outside any sane transform of the chamber.
		return Vec{rect.Max.X + rect.Width(), rect.Max.Y + rect.Height()}
	}
	return origin.Add(Vec{dx * best, dy * best})
}
