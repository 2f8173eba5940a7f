package vortex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupAggregates(t *testing.T) {
	vs := Vortices{
		{Z: 1, Gamma: 1.},
		{Z: 1i, Gamma: 2.},
	}
	assert.Equal(t, 3., vs.Circulation())
	assert.Equal(t, vs[0].Impulse()+vs[1].Impulse(), vs.Impulse())
	probe := 3 + 3i
	assert.Equal(t, vs[0].VelocityAt(probe)+vs[1].VelocityAt(probe), vs.VelocityAt(probe))
}

func TestSystemIndexing(t *testing.T) {
	a, b := testVortices()
	sys := NewSystem(a, b)
	require.Equal(t, len(a)+len(b), sys.Len())
	assert.Equal(t, Element(a[2]), sys.At(2))
	assert.Equal(t, Element(b[0]), sys.At(3))
	assert.Equal(t, a.Circulation()+b.Circulation(), sys.Circulation())
	assert.Equal(t, a.Impulse()+b.Impulse(), sys.Impulse())

	sys.Set(3, Vortex{Z: 9, Gamma: 9.})
	assert.Equal(t, complex(9, 0), b[0].Z)

	assert.Panics(t, func() { sys.At(sys.Len()) })
}

func TestSystemBufferIndexing(t *testing.T) {
	a, b := testVortices()
	sys := NewSystem(a, b)
	buf := sys.NewBuffer().(*SystemBuffer)
	require.Equal(t, sys.Len(), buf.Len())
	require.Equal(t, 2, buf.NumParts())

	buf.Add(4, 1+1i)
	assert.Equal(t, complex(1, 1), buf.Part(1).At(1))
	assert.Equal(t, complex(1, 1), buf.At(4))

	buf.Reset()
	assert.Equal(t, complex128(0), buf.At(4))
}

func TestCollectionKindMismatchFailsFast(t *testing.T) {
	vs := make(Vortices, 1)
	assert.Panics(t, func() { vs.Set(0, Blob{}) })
	bs := make(Blobs, 1)
	assert.Panics(t, func() { bs.Set(0, Vortex{}) })
}
