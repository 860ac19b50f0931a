// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package result collects the per-node and per-element outputs of an
// analysis into report tables, and writes them to disk as JSON, CSV, or (for
// the element stress field) a PNG scatter plot. Grounded on out.results.go's
// point/alias table idiom, simplified to this engine's single-load-case,
// single-output-time case (no time series, no extrapolation).
package result

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/go-fea/gofea2d/internal/mesh"
	"github.com/go-fea/gofea2d/internal/solve"
	"github.com/go-fea/gofea2d/internal/stress"
)

// NodeRow is one row of the node report: position, displacement, reaction.
type NodeRow struct {
	Id int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Ux float64 `json:"ux"`
	Uy float64 `json:"uy"`
	Fx float64 `json:"fx"`
	Fy float64 `json:"fy"`
}

// ElementRow is one row of the element report: node connectivity and
// recovered constant stress.
type ElementRow struct {
	Id       int     `json:"id"`
	N1       int     `json:"n1"`
	N2       int     `json:"n2"`
	N3       int     `json:"n3"`
	Sx       float64 `json:"sx"`
	Sy       float64 `json:"sy"`
	Txy      float64 `json:"txy"`
	VonMises float64 `json:"vonmises"`
	Cx       float64 `json:"cx"` // centroid, for plotting
	Cy       float64 `json:"cy"`
}

// Table is the complete, ready-to-serialise report for one analysis.
type Table struct {
	Nodes    []NodeRow
	Elements []ElementRow
}

// Build gathers a Table from the solved displacement/force vectors and the
// recovered element stresses.
func Build(m *mesh.Mesh, res *solve.Result, elems []stress.Element) *Table {
	t := &Table{
		Nodes:    make([]NodeRow, len(m.Nodes)),
		Elements: make([]ElementRow, len(elems)),
	}
	for i, n := range m.Nodes {
		ex := mesh.DofEq(n.Id, 0)
		ey := mesh.DofEq(n.Id, 1)
		t.Nodes[i] = NodeRow{Id: n.Id, X: n.X, Y: n.Y, Ux: res.U[ex], Uy: res.U[ey], Fx: res.F[ex], Fy: res.F[ey]}
	}
	for i, e := range elems {
		el := m.Elements[i]
		x1, y1, x2, y2, x3, y3 := el.Coords(m)
		t.Elements[i] = ElementRow{
			Id: e.ElementID, N1: el.N1, N2: el.N2, N3: el.N3,
			Sx: e.Sx, Sy: e.Sy, Txy: e.Txy, VonMises: e.VonMises(),
			Cx: (x1 + x2 + x3) / 3.0, Cy: (y1 + y2 + y3) / 3.0,
		}
	}
	return t
}

// WriteJSON marshals the table to an indented JSON file.
func (t *Table) WriteJSON(path string) error {
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// WriteNodesCSV writes the node table in the column order Id,X,Y,Ux,Uy,Fx,Fy.
func (t *Table) WriteNodesCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"id", "x", "y", "ux", "uy", "fx", "fy"}); err != nil {
		return err
	}
	for _, n := range t.Nodes {
		row := []string{
			strconv.Itoa(n.Id),
			fmt.Sprintf("%g", n.X), fmt.Sprintf("%g", n.Y),
			fmt.Sprintf("%g", n.Ux), fmt.Sprintf("%g", n.Uy),
			fmt.Sprintf("%g", n.Fx), fmt.Sprintf("%g", n.Fy),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteElementsCSV writes the element table in the column order
// Id,N1,N2,N3,Sx,Sy,Txy,VonMises.
func (t *Table) WriteElementsCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"id", "n1", "n2", "n3", "sx", "sy", "txy", "vonmises"}); err != nil {
		return err
	}
	for _, e := range t.Elements {
		row := []string{
			strconv.Itoa(e.Id), strconv.Itoa(e.N1), strconv.Itoa(e.N2), strconv.Itoa(e.N3),
			fmt.Sprintf("%g", e.Sx), fmt.Sprintf("%g", e.Sy),
			fmt.Sprintf("%g", e.Txy), fmt.Sprintf("%g", e.VonMises),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// vmBands is the number of colour bins PlotVonMises buckets elements into —
// gonum's Scatter only takes one fixed glyph colour per series (see
// diagram.ExportSectionDiagram), so a heat-map effect needs one series per
// band rather than per-point colouring.
const vmBands = 8

// PlotVonMises renders a scatter plot of element centroids, banded into
// vmBands colours by equivalent stress magnitude (low=blue, high=red) —
// grounded on diagram.ExportSectionDiagram's plotter.NewScatter + p.Save
// idiom.
func (t *Table) PlotVonMises(path string) error {
	p := plot.New()
	p.Title.Text = "von Mises stress"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	maxVM := 0.0
	for _, e := range t.Elements {
		if e.VonMises > maxVM {
			maxVM = e.VonMises
		}
	}
	if maxVM == 0 {
		maxVM = 1.0
	}

	banded := make([]plotter.XYs, vmBands)
	for _, e := range t.Elements {
		band := int(vmBands * e.VonMises / maxVM)
		if band >= vmBands {
			band = vmBands - 1
		}
		banded[band] = append(banded[band], plotter.XY{X: e.Cx, Y: e.Cy})
	}

	for band, pts := range banded {
		if len(pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Radius = vg.Points(3)
		sc.GlyphStyle.Color = rampColor(float64(band) / float64(vmBands-1))
		p.Add(sc)
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// rampColor maps frac in [0,1] onto a blue-to-red heat ramp.
func rampColor(frac float64) color.RGBA {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	r := uint8(255 * frac)
	b := uint8(255 * (1 - frac))
	return color.RGBA{R: r, G: 0, B: b, A: 255}
}
