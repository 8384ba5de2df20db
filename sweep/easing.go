package sweep

import "math"

type Easing func(fraction float64) float64

func Linear(fraction float64) float64 {
	return fraction
}

// FastOutSlowIn is the material standard curve, cubic-bezier(0.4, 0, 0.2, 1).
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// CubicBezier returns the timing curve through (0,0), (x1,y1), (x2,y2), (1,1).
// x1 and x2 must be in [0, 1] for the curve to be a function of time.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 {
		return ((ax*t+bx)*t + cx) * t
	}

	sampleY := func(t float64) float64 {
		return ((ay*t+by)*t + cy) * t
	}

	sampleDX := func(t float64) float64 {
		return (3*ax*t+2*bx)*t + cx
	}

	const epsilon = 1e-7

	solveT := func(x float64) float64 {
		t := x

		for i := 0; i < 8; i++ {
			dx := sampleX(t) - x
			if math.Abs(dx) < epsilon {
				return t
			}

			d := sampleDX(t)
			if math.Abs(d) < 1e-6 {
				break
			}

			t -= dx / d
		}

		lo, hi := 0.0, 1.0
		t = x

		for lo < hi {
			v := sampleX(t)
			if math.Abs(v-x) < epsilon {
				return t
			}

			if x > v {
				lo = t
			} else {
				hi = t
			}

			next := (hi-lo)/2 + lo
			if next == t {
				break
			}

			t = next
		}

		return t
	}

	return func(fraction float64) float64 {
		if fraction <= 0 {
			return 0
		}

		if fraction >= 1 {
			return 1
		}

		return sampleY(solveT(fraction))
	}
}
