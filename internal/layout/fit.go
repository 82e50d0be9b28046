package layout

// CoverFit computes the draw rectangle that makes a srcW x srcH image
// completely fill target while preserving its aspect ratio. The
// overflowing axis is cropped symmetrically: if the source is wider than
// the target the height is matched and the width overflows centered, and
// vice versa. The returned box never letterboxes.
func CoverFit(srcW, srcH int, target Box) Box {
	if srcW <= 0 || srcH <= 0 || target.W <= 0 || target.H <= 0 {
		return target
	}
	srcAspect := float64(srcW) / float64(srcH)
	boxAspect := target.W / target.H

	var w, h float64
	if srcAspect > boxAspect {
		h = target.H
		w = h * srcAspect
	} else {
		w = target.W
		h = w / srcAspect
	}
	return Box{
		X: target.X - (w-target.W)/2,
		Y: target.Y - (h-target.H)/2,
		W: w,
		H: h,
	}
}

// ContainFit computes the draw rectangle that fits a srcW x srcH image
// inside a circle of the given diameter centered on (cx, cy). The longer
// source dimension is scaled to exactly the diameter; nothing is cropped.
func ContainFit(srcW, srcH int, cx, cy, diameter float64) Box {
	if srcW <= 0 || srcH <= 0 || diameter <= 0 {
		return Box{X: cx, Y: cy}
	}
	var w, h float64
	if srcW >= srcH {
		w = diameter
		h = diameter * float64(srcH) / float64(srcW)
	} else {
		h = diameter
		w = diameter * float64(srcW) / float64(srcH)
	}
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}
