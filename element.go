package vortex

import (
	"math"
	"math/cmplx"
)

// Inducer is anything that contributes velocity to the flow field.
type Inducer interface {
	// VelocityAt returns the complex velocity u+iv induced at z.
	VelocityAt(z complex128) complex128
}

// Element is a singular (or regularized) point-like flow element
type Element interface {
	Inducer
	Pos() complex128
	Circulation() float64
	Impulse() complex128
	SelfVelocity() complex128
	Advected(vel complex128, dt float64) Element
}

// Vortex is a singular point vortex of circulation Gamma
type Vortex struct {
	Z     complex128
	Gamma float64
}

func (v Vortex) Pos() complex128          { return v.Z }
func (v Vortex) Circulation() float64     { return v.Gamma }
func (v Vortex) Impulse() complex128      { return complex(0, -v.Gamma) * v.Z }
func (v Vortex) SelfVelocity() complex128 { return 0 }

func (v Vortex) VelocityAt(z complex128) complex128 {
	d := z - v.Z
	if d == 0 {
		return 0
	}
	return complex(0, v.Gamma*oo2pi) / cmplx.Conj(d)
}

func (v Vortex) Advected(vel complex128, dt float64) Element {
	v.Z += vel * complex(dt, 0.)
	return v
}

// Blob is a point vortex regularized over core radius Delta
type Blob struct {
	Z            complex128
	Gamma, Delta float64
}

func (b Blob) Pos() complex128          { return b.Z }
func (b Blob) Circulation() float64     { return b.Gamma }
func (b Blob) Impulse() complex128      { return complex(0, -b.Gamma) * b.Z }
func (b Blob) SelfVelocity() complex128 { return 0 }

func (b Blob) VelocityAt(z complex128) complex128 {
	d := z - b.Z
	r2 := real(d)*real(d) + imag(d)*imag(d) + b.Delta*b.Delta
	if r2 == 0. {
		return 0
	}
	return complex(0, b.Gamma*oo2pi) * d / complex(r2, 0.)
}

func (b Blob) Advected(vel complex128, dt float64) Element {
	b.Z += vel * complex(dt, 0.)
	return b
}

// Doublet carries a complex strength S (translational singularity)
type Doublet struct {
	Z complex128
	S complex128
}

func (d Doublet) Pos() complex128          { return d.Z }
func (d Doublet) Circulation() float64     { return 0. }
func (d Doublet) Impulse() complex128      { return 0 }
func (d Doublet) SelfVelocity() complex128 { return 0 }

func (d Doublet) VelocityAt(z complex128) complex128 {
	dz := z - d.Z
	if dz == 0 {
		return 0
	}
	c := cmplx.Conj(dz)
	return -d.S / (complex(math.Pi, 0.) * c * c)
}

func (d Doublet) Advected(vel complex128, dt float64) Element {
	d.Z += vel * complex(dt, 0.)
	return d
}

// Freestream is a uniform flow of velocity U. It has no position; it
// advects to itself.
type Freestream struct{ U complex128 }

func (f Freestream) Pos() complex128                      { return cmplx.Inf() }
func (f Freestream) Circulation() float64                 { return 0. }
func (f Freestream) Impulse() complex128                  { return 0 }
func (f Freestream) SelfVelocity() complex128             { return 0 }
func (f Freestream) VelocityAt(complex128) complex128     { return f.U }
func (f Freestream) Advected(complex128, float64) Element { return f }

func isFinite(z complex128) bool {
	return !cmplx.IsInf(z) && !cmplx.IsNaN(z)
}
