package main

import (
	"fmt"

	vx "github.com/potentialflow/vortex"
)

func main() {
	// two co-rotating vortex pairs leapfrogging downstream
	sys := vx.NewSystem(
		vx.Vortices{
			{Z: 0 + 0.5i, Gamma: -1.},
			{Z: 0 - 0.5i, Gamma: 1.},
		},
		vx.Blobs{
			{Z: 1 + 0.5i, Gamma: -1., Delta: 0.05},
			{Z: 1 - 0.5i, Gamma: 1., Delta: 0.05},
		},
	)

	nsteps, dt := 2000, 0.01
	paths := make([][]complex128, sys.Len())
	for i := range paths {
		paths[i] = append(paths[i], sys.At(i).Pos())
	}

	buf := sys.NewBuffer()
	for n := 0; n < nsteps; n++ {
		buf.Reset()
		vx.SelfInduce(buf, sys)
		vx.Advect(sys, sys, buf, dt)
		for i := range paths {
			paths[i] = append(paths[i], sys.At(i).Pos())
		}
	}

	fmt.Printf("circulation %v  impulse %v\n", sys.Circulation(), sys.Impulse())

	vx.SaveGeojson("pathlines.geojson", paths)
	if err := vx.SaveVTK("pathlines.vtk", paths); err != nil {
		fmt.Println(err)
	}
	vx.ExportVelocityFieldCSV("field.csv", sys, -2., 8., -2., 2., 101)
	if err := vx.PlotSpeedField("field.png", sys, -2., 8., -2., 2., 151); err != nil {
		fmt.Println(err)
	}
}
