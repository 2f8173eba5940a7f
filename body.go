package vortex

import (
	"math"
	"math/cmplx"
)

// ConformalBody is a rigid body reached through a conformal map. Ambient
// elements interacting with it live in circle-plane coordinates. Img holds
// the image elements that enforce no-flow-through; it is derived state,
// rebuilt from scratch on every enforcement call and never patched
// incrementally.
type ConformalBody struct {
	Map      ConformalMap
	C        complex128 // centroid, physical plane
	Alpha    float64    // orientation
	Cdot     complex128
	AlphaDot float64
	Img      Elements

	// relStream is the circle-plane relative uniform velocity (ambient
	// freestreams minus body translation, pulled back through the map),
	// captured at the last enforcement.
	relStream complex128
}

// NewConformalBody places a body with the given map, centroid and
// orientation. Call EnforceNoFlowThrough before evaluating velocities.
func NewConformalBody(m ConformalMap, c complex128, alpha float64) *ConformalBody {
	return &ConformalBody{Map: m, C: c, Alpha: alpha}
}

// EnforceNoFlowThrough overwrites the body kinematics from motion and
// rebuilds the image collection for the given ambient system: one image per
// ambient singular element at 1/conj(z), circulation kinds sign-flipped and
// doublets kept, plus one doublet at the circle-plane origin standing in for
// the relative uniform stream. motion may be nil (stationary), ambient may
// be nil (quiescent fluid).
func (b *ConformalBody) EnforceNoFlowThrough(motion RigidMotion, ambient Group, t float64) {
	if motion != nil {
		b.Cdot, b.AlphaDot = motion.Kinematics(t)
	} else {
		b.Cdot, b.AlphaDot = 0, 0.
	}
	b.Img = b.Img[:0]
	var ufree complex128
	if ambient != nil {
		ufree = b.appendImages(ambient)
	}
	b.relStream = pullbackStream(ufree-b.Cdot, b.Alpha, b.Map.InfinityCoefficient())
	if b.relStream != 0 {
		b.Img = append(b.Img, Doublet{S: complex(math.Pi, 0.) * cmplx.Conj(b.relStream)})
	}
}

// appendImages walks g and appends one image per point element, returning
// the accumulated freestream velocity. The sign rule is keyed on the kind of
// singularity: circulation carriers flip, translational (doublet) strengths
// do not. Nested bodies contribute their own images as ordinary vortices.
func (b *ConformalBody) appendImages(g Group) complex128 {
	var ufree complex128
	for i, n := 0, g.Len(); i < n; i++ {
		switch e := g.At(i).(type) {
		case Freestream:
			ufree += e.U
		case Doublet:
			b.Img = append(b.Img, Doublet{Z: imagePoint(e.Z), S: e.S})
		case Blob:
			b.Img = append(b.Img, Blob{Z: imagePoint(e.Z), Gamma: -e.Gamma, Delta: e.Delta})
		default:
			b.Img = append(b.Img, Vortex{Z: imagePoint(e.Pos()), Gamma: -e.Circulation()})
		}
	}
	return ufree
}

// imagePoint reflects a circle-plane position across the unit circle.
func imagePoint(z complex128) complex128 {
	return 1. / cmplx.Conj(z)
}

// Snapshot returns an independent copy of the body's mutable state
// (kinematics, images, captured stream). The map is shared; it is immutable.
func (b *ConformalBody) Snapshot() *ConformalBody {
	nb := *b
	nb.Img = append(Elements(nil), b.Img...)
	return &nb
}

// VelocityAt is the lab-frame velocity the body's images induce at a
// circle-plane position.
func (b *ConformalBody) VelocityAt(z complex128) complex128 {
	return b.Img.VelocityAt(z)
}

func (b *ConformalBody) Len() int          { return len(b.Img) }
func (b *ConformalBody) At(i int) Element  { return b.Img[i] }
func (b *ConformalBody) NewBuffer() Buffer { return make(VelBuf, len(b.Img)) }

func (b *ConformalBody) Set(int, Element) {
	panic("vortex: body images are derived state; rebuild them with EnforceNoFlowThrough")
}

func (b *ConformalBody) Circulation() float64 { return b.Img.Circulation() }
func (b *ConformalBody) Impulse() complex128  { return b.Img.Impulse() }
