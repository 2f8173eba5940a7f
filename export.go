package vortex

import (
	"fmt"
	"log"
	"math/cmplx"

	"github.com/maseology/mmio"
	geojson "github.com/paulmach/go.geojson"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveGeojson writes element pathlines as geojson point features
func SaveGeojson(fp string, paths [][]complex128) {
	fc := geojson.NewFeatureCollection()
	for i, pth := range paths {
		for j, z := range pth {
			f := geojson.NewPointFeature([]float64{real(z), imag(z)})
			f.SetProperty("pid", i)
			f.SetProperty("vid", j)
			fc.AddFeature(f)
		}
	}
	rawJSON, err := fc.MarshalJSON()
	if err != nil {
		log.Fatalf("MarshalJSON error: %v", err)
	}
	mmio.WriteString(fp, string(rawJSON)+"\n")
}

// ExportVelocityFieldCSV samples the velocity src induces on a d-by-d grid
// over [xn,xx]x[yn,yx] and writes it as x,y,u,v,speed rows for viewing
func ExportVelocityFieldCSV(fp string, src Inducer, xn, xx, yn, yx float64, d int) {
	csvw := mmio.NewCSVwriter(fp)
	csvw.WriteHead("x,y,u,v,speed")
	for i := 0; i < d; i++ {
		fy := float64(i)/float64(d-1)*(yx-yn) + yn
		for j := 0; j < d; j++ {
			fx := float64(j)/float64(d-1)*(xx-xn) + xn
			v := src.VelocityAt(complex(fx, fy))
			csvw.WriteLine(fx, fy, real(v), imag(v), cmplx.Abs(v))
		}
	}
	csvw.Close()
}

// SaveVTK writes pathlines as legacy ASCII VTK polylines
func SaveVTK(fp string, paths [][]complex128) error {
	txtw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return err
	}
	defer txtw.Close()

	np := 0
	for _, pth := range paths {
		np += len(pth)
	}
	txtw.WriteLine("# vtk DataFile Version 3.0")
	txtw.WriteLine("vortex element pathlines")
	txtw.WriteLine("ASCII")
	txtw.WriteLine("DATASET POLYDATA")
	txtw.WriteLine(fmt.Sprintf("POINTS %d float", np))
	for _, pth := range paths {
		for _, z := range pth {
			txtw.WriteLine(fmt.Sprintf("%v %v 0.0", real(z), imag(z)))
		}
	}
	txtw.WriteLine(fmt.Sprintf("LINES %d %d", len(paths), np+len(paths)))
	o := 0
	for _, pth := range paths {
		ln := fmt.Sprint(len(pth))
		for j := range pth {
			ln += fmt.Sprintf(" %d", o+j)
		}
		txtw.WriteLine(ln)
		o += len(pth)
	}
	return nil
}

// fieldGrid adapts a sampled speed field to the plotter grid interface.
type fieldGrid struct {
	xs, ys []float64
	vals   []float64 // row-major, len(xs)*len(ys)
}

func (g fieldGrid) Dims() (int, int)   { return len(g.xs), len(g.ys) }
func (g fieldGrid) X(c int) float64    { return g.xs[c] }
func (g fieldGrid) Y(r int) float64    { return g.ys[r] }
func (g fieldGrid) Z(c, r int) float64 { return g.vals[r*len(g.xs)+c] }

// PlotSpeedField renders the induced speed |v| over [xn,xx]x[yn,yx] on a
// d-by-d grid to a png
func PlotSpeedField(fp string, src Inducer, xn, xx, yn, yx float64, d int) error {
	g := fieldGrid{
		xs:   make([]float64, d),
		ys:   make([]float64, d),
		vals: make([]float64, d*d),
	}
	for j := 0; j < d; j++ {
		g.xs[j] = float64(j)/float64(d-1)*(xx-xn) + xn
	}
	for i := 0; i < d; i++ {
		g.ys[i] = float64(i)/float64(d-1)*(yx-yn) + yn
	}
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			g.vals[i*d+j] = cmplx.Abs(src.VelocityAt(complex(g.xs[j], g.ys[i])))
		}
	}

	p := plot.New()
	p.Title.Text = "induced speed"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewHeatMap(g, palette.Heat(12, 1)))
	return p.Save(6*vg.Inch, 6*vg.Inch, fp)
}
