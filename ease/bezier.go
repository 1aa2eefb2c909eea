package ease

// CubicBezier builds a Curve from a cubic Bézier restricted to start at
// (0,0) and end at (1,1), the same parameterization CSS transitions use.
// (x0,y0) and (x1,y1) are the two control points.
//
// For a given progress x the curve parameter is recovered with a few
// Newton iterations, then y is evaluated at that parameter.
func CubicBezier(x0, y0, x1, y1 float64) Curve {
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}

		t := x
		for i := 0; i < 5; i++ {
			t2 := t * t
			t3 := t2 * t
			d := 1 - t
			d2 := d * d

			nx := 3*d2*t*x0 + 3*d*t2*x1 + t3
			dxdt := 3*d2*x0 + 6*d*t*(x1-x0) + 3*t2*(1-x1)
			if dxdt == 0 {
				break
			}

			t -= (nx - x) / dxdt
			if t <= 0 || t >= 1 {
				break
			}
		}
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}

		t2 := t * t
		t3 := t2 * t
		d := 1 - t
		d2 := d * d
		return 3*d2*t*y0 + 3*d*t2*y1 + t3
	}
}
