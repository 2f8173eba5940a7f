package vortex

import "math/cmplx"

// ConformalMap is the exterior circle map a body is reached through. The map
// is constructed elsewhere; this core only consumes its evaluations and the
// local-behavior data baked into it.
type ConformalMap interface {
	// Evaluate maps a circle-plane coordinate to the physical plane.
	Evaluate(zeta complex128) complex128
	// Derivative returns the order-th derivative of the map at zeta.
	Derivative(zeta complex128, order int) complex128
	// NumVertices is the number of designated sharp edges.
	NumVertices() int
	// Vertex returns the circle-plane pre-image of edge i (|zeta| = 1).
	Vertex(i int) complex128
	// EdgeFactor is the suction scale of edge i, fixed by the map's interior
	// angle and vertex separations there.
	EdgeFactor(i int) float64
	// InfinityCoefficient is the leading coefficient a of z ~ a*zeta near
	// infinity, used to pull a uniform stream back to the circle plane.
	InfinityCoefficient() complex128
}

// RigidMotion supplies a body's instantaneous kinematics.
type RigidMotion interface {
	Kinematics(t float64) (cdot complex128, alphadot float64)
}

// ConstantMotion is a RigidMotion with fixed translational and angular
// velocity. The zero value is a stationary body.
type ConstantMotion struct {
	Cdot     complex128
	AlphaDot float64
}

func (m ConstantMotion) Kinematics(float64) (complex128, float64) {
	return m.Cdot, m.AlphaDot
}

// pullbackStream transplants a physical-plane uniform velocity w onto the
// circle plane of a map with orientation alpha and large-zeta coefficient a.
func pullbackStream(w complex128, alpha float64, a complex128) complex128 {
	return w * cmplx.Exp(complex(0, -alpha)) * cmplx.Conj(a)
}
