package vortex

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ErrUnsatisfiable reports a degenerate edge configuration for which no
// vorticity flux can satisfy the requested suction targets. The caller owns
// recovery (e.g. falling back to a single-edge solve).
var ErrUnsatisfiable = errors.New("vortex: unsatisfiable edge configuration")

// SuctionParameter evaluates the generalized Kutta residual at the body's
// edge: the total circle-plane relative velocity at the edge pre-image,
// projected onto the local tangent and scaled by the map's edge factor. A
// value near zero means the flow leaves that edge smoothly. The body's
// images must be current (EnforceNoFlowThrough). Ambient freestreams enter
// through the body's captured relative stream, never at face value.
func SuctionParameter(edge int, b *ConformalBody, ambient Group, t float64) float64 {
	zv := b.Map.Vertex(edge)
	v := b.relStream + b.VelocityAt(zv)
	if ambient != nil {
		v += ambientPointVelocity(ambient, zv)
	}
	return b.Map.EdgeFactor(edge) * real(complex(0, -1)*cmplx.Conj(zv)*v)
}

// ambientPointVelocity sums the point-element contributions at z, skipping
// freestreams (their effect on the boundary lives in the body's relative
// stream and doublet image).
func ambientPointVelocity(g Group, z complex128) complex128 {
	var w complex128
	for i, n := 0, g.Len(); i < n; i++ {
		if _, ok := g.At(i).(Freestream); ok {
			continue
		}
		w += g.At(i).VelocityAt(z)
	}
	return w
}

// VorticityFlux solves for the circulation flux through one edge: the share
// of the candidate element's strength that brings the edge suction parameter
// to sign(sigma)*target. A target of zero is the classical Kutta condition;
// an infinite target disables shedding at the edge. The body is not
// disturbed: sensitivities come from a snapshot enforced as if stationary
// with only a unit-strength candidate present.
func VorticityFlux(b *ConformalBody, edge int, ambient Group, candidate Element, t, target float64) (float64, error) {
	sigma := SuctionParameter(edge, b, ambient, t)
	if math.Abs(target) > math.Abs(sigma) {
		return 0., nil // edge already within bound
	}
	dsig, err := unitSensitivity(b, edge, candidate, t)
	if err != nil {
		return 0., err
	}
	if dsig == 0. {
		return 0., fmt.Errorf("edge %d is insensitive to the candidate element: %w", edge, ErrUnsatisfiable)
	}
	k := (sign(sigma)*target - sigma) / dsig
	return k * candidate.Circulation(), nil
}

// VorticityFlux2 solves the coupled two-edge flux problem. Each edge already
// within its target bound drops out of the system with zero flux; if both
// remain, the 2x2 sensitivity system is solved, and a singular system is an
// unsatisfiable configuration.
func VorticityFlux2(b *ConformalBody, edge1, edge2 int, ambient Group, cand1, cand2 Element, t, target1, target2 float64) (float64, float64, error) {
	sigma1 := SuctionParameter(edge1, b, ambient, t)
	sigma2 := SuctionParameter(edge2, b, ambient, t)
	within1 := math.Abs(target1) > math.Abs(sigma1)
	within2 := math.Abs(target2) > math.Abs(sigma2)

	switch {
	case within1 && within2:
		return 0., 0., nil
	case within1:
		k2, err := VorticityFlux(b, edge2, ambient, cand2, t, target2)
		return 0., k2, err
	case within2:
		k1, err := VorticityFlux(b, edge1, ambient, cand1, t, target1)
		return k1, 0., err
	}

	d11, err := unitSensitivity(b, edge1, cand1, t)
	if err != nil {
		return 0., 0., err
	}
	d12, err := unitSensitivity(b, edge1, cand2, t)
	if err != nil {
		return 0., 0., err
	}
	d21, err := unitSensitivity(b, edge2, cand1, t)
	if err != nil {
		return 0., 0., err
	}
	d22, err := unitSensitivity(b, edge2, cand2, t)
	if err != nil {
		return 0., 0., err
	}

	a := mat.NewDense(2, 2, []float64{d11, d12, d21, d22})
	norm := math.Hypot(d11, d12) * math.Hypot(d21, d22)
	if norm == 0. || math.Abs(mat.Det(a)) <= detTol*norm {
		return 0., 0., fmt.Errorf("singular edge-pair sensitivity for edges %d,%d: %w", edge1, edge2, ErrUnsatisfiable)
	}
	rhs := mat.NewVecDense(2, []float64{
		sign(sigma1)*target1 - sigma1,
		sign(sigma2)*target2 - sigma2,
	})
	var k mat.VecDense
	if err := k.SolveVec(a, rhs); err != nil {
		return 0., 0., fmt.Errorf("edge-pair solve for edges %d,%d: %w", edge1, edge2, ErrUnsatisfiable)
	}
	return k.AtVec(0) * cand1.Circulation(), k.AtVec(1) * cand2.Circulation(), nil
}

// unitSensitivity is the change of edge suction per unit candidate strength:
// a deep snapshot of the body is re-enforced as if stationary with only the
// unit candidate present, and its suction parameter re-evaluated.
func unitSensitivity(b *ConformalBody, edge int, candidate Element, t float64) (float64, error) {
	unit, err := unitStrength(candidate)
	if err != nil {
		return 0., err
	}
	probe := Elements{unit}
	trial := b.Snapshot()
	trial.EnforceNoFlowThrough(nil, probe, t)
	return SuctionParameter(edge, trial, probe, t), nil
}

func sign(x float64) float64 {
	if x < 0. {
		return -1.
	}
	return 1.
}

// unitStrength returns a copy of e carrying unit circulation.
func unitStrength(e Element) (Element, error) {
	switch c := e.(type) {
	case Vortex:
		c.Gamma = 1.
		return c, nil
	case Blob:
		c.Gamma = 1.
		return c, nil
	}
	return nil, fmt.Errorf("vortex: flux candidate must carry circulation, got %T", e)
}
