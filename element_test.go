package vortex

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVortexKernel(t *testing.T) {
	v := Vortex{Z: 0, Gamma: 2. * math.Pi}
	// unit-distance probe: |v| = Gamma/(2 pi r) = 1, rotated +90 deg from the radial
	w := v.VelocityAt(1 + 0i)
	assert.InDelta(t, 0., real(w), 1e-14)
	assert.InDelta(t, 1., imag(w), 1e-14)

	// kernel vanishes at the vortex position
	assert.Equal(t, complex128(0), v.VelocityAt(v.Z))
}

func TestBlobKernelRecoversVortex(t *testing.T) {
	z := 0.3 - 0.7i
	v := Vortex{Z: z, Gamma: 1.4}
	b := Blob{Z: z, Gamma: 1.4, Delta: 0.}
	for _, probe := range []complex128{1 + 1i, -2 + 0.1i, 0.5i} {
		assert.InDelta(t, real(v.VelocityAt(probe)), real(b.VelocityAt(probe)), 1e-14)
		assert.InDelta(t, imag(v.VelocityAt(probe)), imag(b.VelocityAt(probe)), 1e-14)
	}

	// regularization caps the blob velocity near its core
	b.Delta = 0.1
	assert.Less(t, cmplx.Abs(b.VelocityAt(z+1e-6)), cmplx.Abs(v.VelocityAt(z+1e-6)))
	assert.Equal(t, complex128(0), b.VelocityAt(z))
}

func TestDoubletKernel(t *testing.T) {
	// a doublet of strength pi*conj(U) at the origin cancels a uniform
	// stream U on the unit circle boundary (circle theorem)
	u := cmplx.Exp(0.4i)
	d := Doublet{S: complex(math.Pi, 0) * cmplx.Conj(u)}
	for _, theta := range []float64{0., 0.9, 2.2, -1.3} {
		zeta := cmplx.Exp(complex(0, theta))
		w := u + d.VelocityAt(zeta)
		radial := real(cmplx.Conj(zeta) * w)
		assert.InDelta(t, 0., radial, 1e-13)
	}
}

func TestFreestream(t *testing.T) {
	f := Freestream{U: 2 - 1i}
	assert.Equal(t, complex(2, -1), f.VelocityAt(100+3i))
	assert.False(t, isFinite(f.Pos()))
	assert.Equal(t, Element(f), f.Advected(5+5i, 1.))
}

func TestImpulse(t *testing.T) {
	v := Vortex{Z: 1 + 2i, Gamma: 3.}
	assert.Equal(t, complex(6, -3), v.Impulse())
	b := Blob{Z: 1 + 2i, Gamma: 3., Delta: 0.1}
	assert.Equal(t, v.Impulse(), b.Impulse())
}

func TestAdvectedIsACopy(t *testing.T) {
	v := Vortex{Z: 0, Gamma: 1.}
	n := v.Advected(1+1i, 0.5).(Vortex)
	assert.Equal(t, complex(0.5, 0.5), n.Z)
	assert.Equal(t, complex128(0), v.Z)
	assert.Equal(t, 1., n.Gamma)
}
