package game

// RectsOverlapPadded reports axis-aligned overlap of two rectangles
// after shrinking both inward by pad on every side. The padding is the
// forgiveness margin: grazing contact does not count as a hit.
func RectsOverlapPadded(ax, ay, aw, ah, bx, by, bw, bh, pad float64) bool {
	return ax+pad < bx+bw-pad &&
		ax+aw-pad > bx+pad &&
		ay+pad < by+bh-pad &&
		ay+ah-pad > by+pad
}

// CircleIntersectsRect reports whether a circle overlaps a rectangle,
// using closest-point clamping. Exact test, no padding: pickups are
// collected only on true overlap.
func CircleIntersectsRect(cx, cy, radius, rx, ry, rw, rh float64) bool {
	closestX := clampFloat(cx, rx, rx+rw)
	closestY := clampFloat(cy, ry, ry+rh)

	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy < radius*radius
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
