package vortex

import "fmt"

// System is a fixed-arity composite of named element groups (e.g. a body and
// an ambient vortex array) treated as one source. It is itself a Group whose
// element order is the concatenation of its parts, so buffers, induction and
// advection compose over it uniformly.
type System struct {
	parts []Group
}

// NewSystem builds a composite over the given groups, in order.
func NewSystem(parts ...Group) *System {
	return &System{parts: parts}
}

func (s *System) NumParts() int    { return len(s.parts) }
func (s *System) Part(i int) Group { return s.parts[i] }

func (s *System) Len() int {
	n := 0
	for _, g := range s.parts {
		n += g.Len()
	}
	return n
}

func (s *System) At(i int) Element {
	k, j := s.locate(i)
	return s.parts[k].At(j)
}

func (s *System) Set(i int, e Element) {
	k, j := s.locate(i)
	s.parts[k].Set(j, e)
}

func (s *System) locate(i int) (int, int) {
	for k, g := range s.parts {
		if i < g.Len() {
			return k, i
		}
		i -= g.Len()
	}
	panic(fmt.Sprintf("vortex: element index %d out of range", i))
}

func (s *System) Circulation() float64 {
	c := 0.
	for _, g := range s.parts {
		c += g.Circulation()
	}
	return c
}

func (s *System) Impulse() complex128 {
	var p complex128
	for _, g := range s.parts {
		p += g.Impulse()
	}
	return p
}

func (s *System) VelocityAt(z complex128) complex128 {
	var w complex128
	for _, g := range s.parts {
		w += g.VelocityAt(z)
	}
	return w
}

// NewBuffer returns a SystemBuffer shape-matched part by part.
func (s *System) NewBuffer() Buffer {
	sb := &SystemBuffer{parts: make([]Buffer, len(s.parts)), offs: make([]int, len(s.parts))}
	n := 0
	for k, g := range s.parts {
		sb.parts[k] = g.NewBuffer()
		sb.offs[k] = n
		n += g.Len()
	}
	sb.n = n
	return sb
}

// SystemBuffer is the recursive velocity buffer of a System: one sub-buffer
// per part, addressable either per part or through flattened indices.
type SystemBuffer struct {
	parts []Buffer
	offs  []int
	n     int
}

func (sb *SystemBuffer) Len() int          { return sb.n }
func (sb *SystemBuffer) NumParts() int     { return len(sb.parts) }
func (sb *SystemBuffer) Part(k int) Buffer { return sb.parts[k] }

func (sb *SystemBuffer) At(i int) complex128 {
	k, j := sb.locate(i)
	return sb.parts[k].At(j)
}

func (sb *SystemBuffer) Add(i int, v complex128) {
	k, j := sb.locate(i)
	sb.parts[k].Add(j, v)
}

func (sb *SystemBuffer) Reset() {
	for _, b := range sb.parts {
		b.Reset()
	}
}

func (sb *SystemBuffer) locate(i int) (int, int) {
	for k := len(sb.offs) - 1; k >= 0; k-- {
		if i >= sb.offs[k] {
			return k, i - sb.offs[k]
		}
	}
	panic(fmt.Sprintf("vortex: buffer index %d out of range", i))
}
