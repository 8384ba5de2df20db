package segment

import (
	"fmt"
	"math"
)

// ComputeSegments lays out values around the ring. Each segment gets its
// share of 100 minus one gap, and the first segment starts one gap in, so
// the ring never closes even for a single value.
func ComputeSegments(values []int64, gapDegrees float64, palette Palette, strokeWidth float64,
	roundedCaps bool) ([]ArcSegment, error) {
	if palette.Len() == 0 {
		return nil, ErrEmptyPalette
	}

	var total int64

	for idx, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("%w: value[%d]=%d is negative", ErrInvalidInput, idx, v)
		}

		if v > math.MaxInt64-total {
			return nil, fmt.Errorf("%w: total overflows at value[%d]", ErrInvalidInput, idx)
		}

		total += v
	}

	if total == 0 {
		return []ArcSegment{}, nil
	}

	segs := make([]ArcSegment, 0, len(values))
	cursor := gapDegrees

	for idx, v := range values {
		extent := float64(v)*100/float64(total) - gapDegrees
		if extent < 0 {
			extent = 0
		}

		segs = append(segs, ArcSegment{
			StartAngle:  cursor,
			SweepExtent: extent,
			ColorIndex:  palette.Index(idx),
			StrokeWidth: strokeWidth,
			RoundedCaps: roundedCaps,
		})

		cursor += extent + gapDegrees
	}

	return segs, nil
}

func ComputeSegmentsForPoints(points []DataPoint, gapDegrees float64, palette Palette, strokeWidth float64,
	roundedCaps bool) ([]ArcSegment, error) {
	return ComputeSegments(Values(points), gapDegrees, palette, strokeWidth, roundedCaps)
}
