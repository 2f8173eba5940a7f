package vortex

import "math"

const (
	oo2pi  = 0.5 / math.Pi
	detTol = 1e-12 // relative singularity threshold for the edge-pair solve
)
