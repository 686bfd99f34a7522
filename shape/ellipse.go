package shape

import (
	"fmt"
	"math"

	"github.com/gogpu/ggui"
)

// Cov is a 2×2 covariance matrix, row-major.
type Cov [2][2]float64

// axes returns the principal axes of c scaled by the square roots of
// their eigenvalues. The off-diagonal terms are averaged, so c is treated
// as symmetric.
func (c Cov) axes() (u, v ggui.Point, err error) {
	a, d := c[0][0], c[1][1]
	b := (c[0][1] + c[1][0]) / 2
	theta := math.Atan2(2*b, a-d) / 2
	sin, cos := math.Sincos(theta)
	e1 := a*cos*cos + 2*b*sin*cos + d*sin*sin
	e2 := a*sin*sin - 2*b*sin*cos + d*cos*cos
	if !(e1 > 0 && e2 > 0) {
		return u, v, fmt.Errorf("%w: eigenvalues %g, %g", ErrNotPositiveDefinite, e1, e2)
	}
	s1, s2 := math.Sqrt(e1), math.Sqrt(e2)
	return ggui.Pt(cos*s1, sin*s1), ggui.Pt(-sin*s2, cos*s2), nil
}

func ellipsePoints(mean ggui.Point, cov Cov, sd float64, segments int) ([]ggui.Point, error) {
	u, v, err := cov.axes()
	if err != nil {
		return nil, err
	}
	pts := make([]ggui.Point, segments)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		pts[i] = mean.Add(u.Mul(sin * sd)).Add(v.Mul(cos * sd))
	}
	return pts, nil
}

// Ellipse strokes the sd-sigma contour of a 2D normal distribution with
// the given mean and covariance, as a closed polyline.
func Ellipse(mean ggui.Point, cov Cov, sd float64, col ggui.Color, opts ...Option) Shape {
	o := newOptions(opts)
	pts, err := ellipsePoints(mean, cov, sd, o.segments)
	if err != nil {
		return failed(err)
	}
	return Polyline(pts, col, append(opts[:len(opts):len(opts)], Closed())...)
}

// Ellipses is like Ellipse for several distributions with one style.
func Ellipses(means []ggui.Point, covs []Cov, sd float64, col ggui.Color, opts ...Option) Shape {
	if len(means) != len(covs) {
		return failed(fmt.Errorf("%w: %d means, %d covariances", ErrMismatchedInput, len(means), len(covs)))
	}
	o := newOptions(opts)
	lines := make([][]ggui.Point, len(means))
	for i := range means {
		pts, err := ellipsePoints(means[i], covs[i], sd, o.segments)
		if err != nil {
			return failed(fmt.Errorf("ellipse %d: %w", i, err))
		}
		lines[i] = pts
	}
	return Polylines(lines, col, append(opts[:len(opts):len(opts)], Closed())...)
}
