package vortex

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/maseology/mmaths"
)

// Sheet is a discretized vortex sheet: an ordered run of regularized blobs
// carrying the half-weighted trapezoidal derivative of the cumulative
// circulation Gammas, all sharing one core radius Delta. Gammas and the blob
// positions are index-parallel.
type Sheet struct {
	B      Blobs
	Gammas []float64
	Delta  float64
}

// NewSheet builds a sheet from node positions and cumulative circulation
// values. The two must have equal length.
func NewSheet(zs []complex128, gammas []float64, delta float64) (*Sheet, error) {
	if len(zs) != len(gammas) {
		return nil, fmt.Errorf("vortex: sheet has %d positions but %d circulation values", len(zs), len(gammas))
	}
	if len(zs) == 0 {
		return nil, fmt.Errorf("vortex: empty sheet")
	}
	s := &Sheet{
		B:      make(Blobs, len(zs)),
		Gammas: append([]float64(nil), gammas...),
		Delta:  delta,
	}
	for i, z := range zs {
		s.B[i] = Blob{Z: z, Gamma: trapezoidalWeight(gammas, i), Delta: delta}
	}
	return s, nil
}

// trapezoidalWeight is the half-weighted derivative of the cumulative
// circulation at node i; the weights telescope so the blob strengths sum to
// Gammas[last]-Gammas[first].
func trapezoidalWeight(gammas []float64, i int) float64 {
	n := len(gammas)
	switch {
	case n == 1:
		return 0.
	case i == 0:
		return (gammas[1] - gammas[0]) / 2.
	case i == n-1:
		return (gammas[n-1] - gammas[n-2]) / 2.
	default:
		return (gammas[i+1] - gammas[i-1]) / 2.
	}
}

func (s *Sheet) Len() int          { return len(s.B) }
func (s *Sheet) At(i int) Element  { return s.B[i] }
func (s *Sheet) NewBuffer() Buffer { return make(VelBuf, len(s.B)) }

func (s *Sheet) Set(i int, e Element) { s.B.Set(i, e) }

// Circulation is the net circulation carried by the sheet.
func (s *Sheet) Circulation() float64 {
	return s.Gammas[len(s.Gammas)-1] - s.Gammas[0]
}

func (s *Sheet) Impulse() complex128 { return s.B.Impulse() }

// VelocityAt delegates to the blob constituents; the sheet adds no panel
// smoothing of its own.
func (s *Sheet) VelocityAt(z complex128) complex128 { return s.B.VelocityAt(z) }

// Arclength sums the separations of consecutive nodes.
func (s *Sheet) Arclength() float64 {
	l := 0.
	for i := 1; i < len(s.B); i++ {
		l += cmplx.Abs(s.B[i].Z - s.B[i-1].Z)
	}
	return l
}

// Summary reports the sheet diagnostics in CSV format
func (s *Sheet) Summary() string {
	return fmt.Sprintf("%d,%v,%v,%v", len(s.B), s.Arclength(), s.Circulation(), s.Delta)
}

// Crossed reports whether the straight path z0-z1 crosses the sheet
// polyline, and where. Callers use it to catch elements punching through the
// sheet in a single step.
func (s *Sheet) Crossed(z0, z1 complex128) (complex128, bool) {
	pA := mmaths.Point{X: real(z0), Y: imag(z0)}
	pB := mmaths.Point{X: real(z1), Y: imag(z1)}
	path := mmaths.LineSegment{P0: pA, P1: pB}
	for i := 1; i < len(s.B); i++ {
		p0 := mmaths.Point{X: real(s.B[i-1].Z), Y: imag(s.B[i-1].Z)}
		p1 := mmaths.Point{X: real(s.B[i].Z), Y: imag(s.B[i].Z)}
		seg := mmaths.LineSegment{P0: p0, P1: p1}
		xy, f := seg.Intersection2D(&path)
		if math.IsNaN(f) {
			continue
		}
		return complex(xy.X, xy.Y), true
	}
	return cmplx.NaN(), false
}
