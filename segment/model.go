package segment

import "image/color"

type DataPoint struct {
	Value int64  `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// ArcSegment is one laid out slice of the ring. Angles use the same
// percent-of-circle unit as the gap.
type ArcSegment struct {
	StartAngle  float64
	SweepExtent float64
	ColorIndex  int
	StrokeWidth float64
	RoundedCaps bool
}

func (seg ArcSegment) EndAngle() float64 {
	return seg.StartAngle + seg.SweepExtent
}

func Values(points []DataPoint) []int64 {
	vs := make([]int64, len(points))
	for idx, point := range points {
		vs[idx] = point.Value
	}

	return vs
}

func Total(points []DataPoint) (total int64) {
	for _, point := range points {
		total += point.Value
	}

	return
}

//
//
//

type Palette []color.RGBA

func NewPalette(colors []color.RGBA) (Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}

	return append(Palette{}, colors...), nil
}

func (p Palette) Len() int {
	return len(p)
}

func (p Palette) Index(i int) int {
	if len(p) == 0 {
		return 0
	}

	i %= len(p)
	if i < 0 {
		i += len(p)
	}

	return i
}

func (p Palette) Color(i int) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{}
	}

	return p[p.Index(i)]
}
