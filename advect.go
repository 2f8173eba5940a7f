package vortex

import "fmt"

// AdvectElement takes one pure Euler step, returning the next-state copy.
func AdvectElement(e Element, vel complex128, dt float64) Element {
	return e.Advected(vel, dt)
}

// Advect Euler-steps every element of src into dst using the velocities in
// buf. src is never mutated unless dst and src are the same collection,
// which is safe since each slot updates independently. Shapes must match.
func Advect(dst, src Group, buf Buffer, dt float64) {
	checkShape(buf, src)
	if dst.Len() != src.Len() {
		panic(fmt.Sprintf("vortex: advection destination length %d does not match source length %d", dst.Len(), src.Len()))
	}
	ss, srcSheet := src.(*Sheet)
	ds, dstSheet := dst.(*Sheet)
	sd, dstSys := dst.(*System)
	if s, ok := src.(*System); ok {
		if !dstSys || sd.NumParts() != s.NumParts() {
			panic("vortex: advection destination does not match source system arity")
		}
		sb := buf.(*SystemBuffer)
		for k := 0; k < s.NumParts(); k++ {
			if _, ok := s.Part(k).(*ConformalBody); ok {
				continue // bodies carry derived state; their kinematics are integrated elsewhere
			}
			Advect(sd.Part(k), s.Part(k), sb.Part(k), dt)
		}
		return
	}
	for i, n := 0, src.Len(); i < n; i++ {
		dst.Set(i, src.At(i).Advected(buf.At(i), dt))
	}
	if srcSheet && dstSheet && ds != ss {
		ds.Delta = ss.Delta
		ds.Gammas = append(ds.Gammas[:0], ss.Gammas...)
	}
}
