package vortex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVortices() (Vortices, Vortices) {
	a := Vortices{
		{Z: 0 + 0i, Gamma: 1.},
		{Z: 1 + 0i, Gamma: -0.5},
		{Z: 0.2 + 0.7i, Gamma: 2.},
	}
	b := Vortices{
		{Z: -1 - 1i, Gamma: 0.3},
		{Z: 2 + 2i, Gamma: -1.2},
	}
	return a, b
}

func TestInduceVelocityIntoAccumulates(t *testing.T) {
	a, b := testVortices()
	buf := a.NewBuffer()
	InduceVelocityInto(buf, a, b)
	once := append(VelBuf(nil), buf.(VelBuf)...)
	InduceVelocityInto(buf, a, b)
	for i := range once {
		assert.Equal(t, 2.*once[i], buf.At(i))
	}

	buf.Reset()
	for i := 0; i < buf.Len(); i++ {
		assert.Equal(t, complex128(0), buf.At(i))
	}
}

func TestMutuallyInduceMatchesTwoPasses(t *testing.T) {
	a, b := testVortices()

	bufA, bufB := a.NewBuffer(), b.NewBuffer()
	MutuallyInduce(bufA, bufB, a, b)

	refA, refB := a.NewBuffer(), b.NewBuffer()
	InduceVelocityInto(refA, a, b)
	InduceVelocityInto(refB, b, a)

	for i := 0; i < bufA.Len(); i++ {
		assert.Equal(t, refA.At(i), bufA.At(i))
	}
	for i := 0; i < bufB.Len(); i++ {
		assert.Equal(t, refB.At(i), bufB.At(i))
	}
}

func TestMutuallyInduceMixedKinds(t *testing.T) {
	a, _ := testVortices()
	bl := Blobs{
		{Z: -0.5 + 0.5i, Gamma: 1., Delta: 0.05},
		{Z: 0.5 - 0.5i, Gamma: -1., Delta: 0.05},
	}
	bufA, bufB := a.NewBuffer(), bl.NewBuffer()
	MutuallyInduce(bufA, bufB, a, bl)

	refA, refB := a.NewBuffer(), bl.NewBuffer()
	InduceVelocityInto(refA, a, bl)
	InduceVelocityInto(refB, bl, a)
	for i := 0; i < bufA.Len(); i++ {
		assert.Equal(t, refA.At(i), bufA.At(i))
	}
	for i := 0; i < bufB.Len(); i++ {
		assert.Equal(t, refB.At(i), bufB.At(i))
	}
}

func TestSelfInduceFlat(t *testing.T) {
	a, _ := testVortices()
	buf := a.NewBuffer()
	SelfInduce(buf, a)

	// reference: every element feels every other element plus its self-term
	for i, vi := range a {
		var want complex128
		for j, vj := range a {
			if i == j {
				continue
			}
			want += vj.VelocityAt(vi.Z)
		}
		want += vi.SelfVelocity()
		assert.InDelta(t, real(want), real(buf.At(i)), 1e-13)
		assert.InDelta(t, imag(want), imag(buf.At(i)), 1e-13)
	}
}

func TestSelfInduceVorticesMatchesGenericPairs(t *testing.T) {
	a, _ := testVortices()
	a = append(a, Vortex{Z: a[0].Z, Gamma: 0.8}) // coincident pair

	buf := a.NewBuffer()
	SelfInduce(buf, a)

	// the same vortices behind the mixed-collection view take the generic
	// unordered-pair loop; the shared-evaluation path must match it bitwise
	mixed := make(Elements, len(a))
	for i, v := range a {
		mixed[i] = v
	}
	ref := mixed.NewBuffer()
	SelfInduce(ref, mixed)

	for i := 0; i < buf.Len(); i++ {
		assert.Equal(t, ref.At(i), buf.At(i))
	}
}

func TestSelfInduceSystem(t *testing.T) {
	a, b := testVortices()
	bl := Blobs{
		{Z: -0.5 + 0.5i, Gamma: 1., Delta: 0.05},
		{Z: 0.5 - 0.5i, Gamma: -1., Delta: 0.05},
	}
	sys := NewSystem(a, b, bl)
	buf := sys.NewBuffer()
	require.IsType(t, &SystemBuffer{}, buf)
	SelfInduce(buf, sys)

	// flattened reference over the concatenated elements
	n := sys.Len()
	for i := 0; i < n; i++ {
		zi := sys.At(i).Pos()
		var want complex128
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			want += sys.At(j).VelocityAt(zi)
		}
		assert.InDelta(t, real(want), real(buf.At(i)), 1e-13, "slot %d", i)
		assert.InDelta(t, imag(want), imag(buf.At(i)), 1e-13, "slot %d", i)
	}
}

func TestFreestreamInSystem(t *testing.T) {
	a, _ := testVortices()
	sys := NewSystem(a, Elements{Freestream{U: 1 + 0i}})
	buf := sys.NewBuffer()
	SelfInduce(buf, sys)

	// every vortex feels the stream; the stream slot stays untouched
	for i := range a {
		var want complex128 = 1
		for j := range a {
			if i == j {
				continue
			}
			want += a[j].VelocityAt(a[i].Z)
		}
		assert.InDelta(t, real(want), real(buf.At(i)), 1e-13)
	}
	assert.Equal(t, complex128(0), buf.At(len(a)))
}

func TestShapeMismatchFailsFast(t *testing.T) {
	a, b := testVortices()
	assert.Panics(t, func() { InduceVelocityInto(b.NewBuffer(), a, b) })
	assert.Panics(t, func() { SelfInduce(make(VelBuf, 1), a) })
	assert.Panics(t, func() {
		InduceVelocityInto(make(VelBuf, 5), NewSystem(a, b), a)
	})
	assert.Panics(t, func() {
		sys := NewSystem(a, b)
		InduceVelocityInto(NewSystem(a).NewBuffer(), sys, a)
	})
}

func TestInduceVelocityAll(t *testing.T) {
	a, b := testVortices()
	buf := InduceVelocityAll(a, b)
	require.Equal(t, a.Len(), buf.Len())
	for i := range a {
		assert.Equal(t, b.VelocityAt(a[i].Z), buf.At(i))
	}
}
