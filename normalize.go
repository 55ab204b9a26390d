package gesture

// Bounds is the bounding box of the input surface in surface pixels.
type Bounds struct {
	Left, Top, Width, Height float64
}

// BoundsProvider reports the current bounds of the input surface. It is
// queried on every raw event so a resized surface is picked up immediately.
type BoundsProvider func() Bounds

// StaticBounds returns a BoundsProvider that always reports b.
func StaticBounds(b Bounds) BoundsProvider {
	return func() Bounds { return b }
}

// Normalizer maps a raw surface-space event into normalized device
// coordinates. Implementations must be pure.
type Normalizer func(ev RawPointerEvent, b Bounds) (x, y float64)

// Normalize is the default Normalizer. The surface maps onto [-1, 1] on both
// axes with the origin at its center and Y pointing up. Points outside the
// surface are clamped to the edge; a degenerate axis maps to 0.
func Normalize(ev RawPointerEvent, b Bounds) (x, y float64) {
	if b.Width > 0 {
		x = clamp((ev.ClientX-b.Left)/b.Width*2-1, -1, 1)
	}
	if b.Height > 0 {
		y = clamp((ev.ClientY-b.Top)/b.Height*-2+1, -1, 1)
	}
	return x, y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
