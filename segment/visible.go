package segment

// VisibleExtent returns how much of seg has been swept once progress has
// reached the given angle.
func VisibleExtent(seg ArcSegment, progress int) float64 {
	p := float64(progress)

	if p <= seg.StartAngle {
		return 0
	}

	if p >= seg.EndAngle() {
		return seg.SweepExtent
	}

	return p - seg.StartAngle
}

// Visible clips every segment to progress and drops the ones with nothing
// to draw yet. The returned segments keep their original color index.
func Visible(segs []ArcSegment, progress int) []ArcSegment {
	vs := make([]ArcSegment, 0, len(segs))

	for _, seg := range segs {
		extent := VisibleExtent(seg, progress)
		if extent <= 0 {
			continue
		}

		seg.SweepExtent = extent
		vs = append(vs, seg)
	}

	return vs
}
