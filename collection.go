package vortex

import "fmt"

// Group is an ordered collection of elements that acts as a single source.
// Indices correspond 1:1 with the slots of the Buffer its NewBuffer returns.
type Group interface {
	Inducer
	Len() int
	At(i int) Element
	Set(i int, e Element)
	Circulation() float64
	Impulse() complex128
	NewBuffer() Buffer
}

// Buffer accumulates per-element velocities. Add never overwrites, so
// several sources can be superposed without re-zeroing between passes.
type Buffer interface {
	Len() int
	At(i int) complex128
	Add(i int, v complex128)
	Reset()
}

// VelBuf is the velocity buffer for a flat element collection.
type VelBuf []complex128

func (b VelBuf) Len() int                { return len(b) }
func (b VelBuf) At(i int) complex128     { return b[i] }
func (b VelBuf) Add(i int, v complex128) { b[i] += v }
func (b VelBuf) Reset() {
	for i := range b {
		b[i] = 0
	}
}

// Vortices is a homogeneous collection of point vortices
type Vortices []Vortex

func (vs Vortices) Len() int          { return len(vs) }
func (vs Vortices) At(i int) Element  { return vs[i] }
func (vs Vortices) NewBuffer() Buffer { return make(VelBuf, len(vs)) }

func (vs Vortices) Set(i int, e Element) {
	v, ok := e.(Vortex)
	if !ok {
		panic(fmt.Sprintf("vortex: slot %d expects a Vortex, got %T", i, e))
	}
	vs[i] = v
}

func (vs Vortices) Circulation() float64 {
	c := 0.
	for _, v := range vs {
		c += v.Gamma
	}
	return c
}

func (vs Vortices) Impulse() complex128 {
	var p complex128
	for _, v := range vs {
		p += v.Impulse()
	}
	return p
}

func (vs Vortices) VelocityAt(z complex128) complex128 {
	var w complex128
	for _, v := range vs {
		w += v.VelocityAt(z)
	}
	return w
}

// Blobs is a homogeneous collection of regularized vortices
type Blobs []Blob

func (bs Blobs) Len() int          { return len(bs) }
func (bs Blobs) At(i int) Element  { return bs[i] }
func (bs Blobs) NewBuffer() Buffer { return make(VelBuf, len(bs)) }

func (bs Blobs) Set(i int, e Element) {
	b, ok := e.(Blob)
	if !ok {
		panic(fmt.Sprintf("vortex: slot %d expects a Blob, got %T", i, e))
	}
	bs[i] = b
}

func (bs Blobs) Circulation() float64 {
	c := 0.
	for _, b := range bs {
		c += b.Gamma
	}
	return c
}

func (bs Blobs) Impulse() complex128 {
	var p complex128
	for _, b := range bs {
		p += b.Impulse()
	}
	return p
}

func (bs Blobs) VelocityAt(z complex128) complex128 {
	var w complex128
	for _, b := range bs {
		w += b.VelocityAt(z)
	}
	return w
}

// Elements is an ordered mixed-kind collection
type Elements []Element

func (es Elements) Len() int             { return len(es) }
func (es Elements) At(i int) Element     { return es[i] }
func (es Elements) Set(i int, e Element) { es[i] = e }
func (es Elements) NewBuffer() Buffer    { return make(VelBuf, len(es)) }

func (es Elements) Circulation() float64 {
	c := 0.
	for _, e := range es {
		c += e.Circulation()
	}
	return c
}

func (es Elements) Impulse() complex128 {
	var p complex128
	for _, e := range es {
		p += e.Impulse()
	}
	return p
}

func (es Elements) VelocityAt(z complex128) complex128 {
	var w complex128
	for _, e := range es {
		w += e.VelocityAt(z)
	}
	return w
}
