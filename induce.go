package vortex

import (
	"fmt"
	"math/cmplx"
)

// InduceVelocity returns the velocity src induces at z. Pure; src is not
// mutated.
func InduceVelocity(z complex128, src Inducer) complex128 {
	return src.VelocityAt(z)
}

// InduceElementVelocity returns the velocity src induces at e's position.
func InduceElementVelocity(e Element, src Inducer) complex128 {
	if !isFinite(e.Pos()) {
		return 0
	}
	return src.VelocityAt(e.Pos())
}

// InduceVelocityAll allocates a fresh shape-matched buffer for tgt and fills
// it with the velocity src induces on each of tgt's elements.
func InduceVelocityAll(tgt Group, src Inducer) Buffer {
	buf := tgt.NewBuffer()
	InduceVelocityInto(buf, tgt, src)
	return buf
}

// InduceVelocityInto accumulates the velocity src induces on each element of
// tgt into buf. It adds, never overwrites, so successive calls superpose
// sources. buf must have come from tgt.NewBuffer (or match its shape).
func InduceVelocityInto(buf Buffer, tgt Group, src Inducer) {
	checkShape(buf, tgt)
	if s, ok := tgt.(*System); ok {
		sb := buf.(*SystemBuffer)
		for k := 0; k < s.NumParts(); k++ {
			InduceVelocityInto(sb.Part(k), s.Part(k), src)
		}
		return
	}
	for i, n := 0, tgt.Len(); i < n; i++ {
		z := tgt.At(i).Pos()
		if !isFinite(z) {
			continue
		}
		buf.Add(i, src.VelocityAt(z))
	}
}

// MutuallyInduce computes a→b and b→a in one step. The homogeneous
// point-vortex case shares one kernel evaluation per pair through the
// antisymmetry of the kernel; every other pairing falls back to two
// independent accumulation passes. Results are identical either way.
func MutuallyInduce(bufA, bufB Buffer, a, b Group) {
	if va, ok := a.(Vortices); ok {
		if vb, ok := b.(Vortices); ok {
			checkShape(bufA, a)
			checkShape(bufB, b)
			mutualVortices(bufA, bufB, va, vb)
			return
		}
	}
	InduceVelocityInto(bufA, a, b)
	InduceVelocityInto(bufB, b, a)
}

func mutualVortices(bufA, bufB Buffer, a, b Vortices) {
	for i, va := range a {
		for j, vb := range b {
			d := va.Z - vb.Z
			if d == 0 {
				continue
			}
			// one separation per pair; the two contributions differ only by
			// strength and an exact negation, so this is bit-identical to
			// two independent passes
			c := cmplx.Conj(d)
			bufA.Add(i, complex(0, vb.Gamma*oo2pi)/c)
			bufB.Add(j, complex(0, va.Gamma*oo2pi)/-c)
		}
	}
}

// SelfInduce accumulates the velocity a collection induces on itself. Flat
// collections get each element's self-term plus one pass over unordered
// pairs; a homogeneous point-vortex collection shares one kernel evaluation
// per pair the same way MutuallyInduce does. A System recurses into its
// parts and then mutually induces each unordered part pair, so nothing is
// counted twice.
func SelfInduce(buf Buffer, g Group) {
	checkShape(buf, g)
	if s, ok := g.(*System); ok {
		sb := buf.(*SystemBuffer)
		for k := 0; k < s.NumParts(); k++ {
			SelfInduce(sb.Part(k), s.Part(k))
		}
		for k := 0; k < s.NumParts(); k++ {
			for l := k + 1; l < s.NumParts(); l++ {
				MutuallyInduce(sb.Part(k), sb.Part(l), s.Part(k), s.Part(l))
			}
		}
		return
	}
	if vs, ok := g.(Vortices); ok {
		selfVortices(buf, vs)
		return
	}
	n := g.Len()
	for i := 0; i < n; i++ {
		buf.Add(i, g.At(i).SelfVelocity())
	}
	for i := 0; i < n; i++ {
		ei := g.At(i)
		zi := ei.Pos()
		for j := i + 1; j < n; j++ {
			ej := g.At(j)
			zj := ej.Pos()
			if isFinite(zi) {
				buf.Add(i, ej.VelocityAt(zi))
			}
			if isFinite(zj) {
				buf.Add(j, ei.VelocityAt(zj))
			}
		}
	}
}

// selfVortices pairs vortices the same way mutualVortices does, one shared
// separation per unordered pair. Point vortices have no self-term.
func selfVortices(buf Buffer, vs Vortices) {
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			d := vs[i].Z - vs[j].Z
			if d == 0 {
				continue
			}
			c := cmplx.Conj(d)
			buf.Add(i, complex(0, vs[j].Gamma*oo2pi)/c)
			buf.Add(j, complex(0, vs[i].Gamma*oo2pi)/-c)
		}
	}
}

// checkShape verifies buf was shape-matched to g, recursively across tuple
// boundaries. A mismatch is a precondition violation and fails fast.
func checkShape(buf Buffer, g Group) {
	if s, ok := g.(*System); ok {
		sb, ok := buf.(*SystemBuffer)
		if !ok {
			panic(fmt.Sprintf("vortex: system requires a SystemBuffer, got %T", buf))
		}
		if sb.NumParts() != s.NumParts() {
			panic(fmt.Sprintf("vortex: buffer has %d parts, system has %d", sb.NumParts(), s.NumParts()))
		}
		for k := 0; k < s.NumParts(); k++ {
			checkShape(sb.Part(k), s.Part(k))
		}
		return
	}
	if buf.Len() != g.Len() {
		panic(fmt.Sprintf("vortex: buffer length %d does not match collection length %d", buf.Len(), g.Len()))
	}
}
