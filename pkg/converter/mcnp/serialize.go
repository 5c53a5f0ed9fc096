// Package mcnp serializes a finalized conversion result into MCNP-style
// cell and surface cards.
package mcnp

import (
	"fmt"
	"strings"

	"github.com/brepcsg/brepcsg/pkg/converter"
	"github.com/brepcsg/brepcsg/pkg/converter/cell"
	"github.com/brepcsg/brepcsg/pkg/converter/format"
	"github.com/brepcsg/brepcsg/pkg/converter/geometry"
	"github.com/brepcsg/brepcsg/pkg/converter/log"
	"github.com/brepcsg/brepcsg/pkg/converter/surface"
)

var geometryOrigin = geometry.Point{}

const (
	cellsFile    = "cells"
	surfacesFile = "surfaces"
)

// NumericFormat sets the number of significant digits per surface kind.
type NumericFormat struct {
	Plane    int `json:"plane"`
	Cylinder int `json:"cylinder"`
	Cone     int `json:"cone"`
	Sphere   int `json:"sphere"`
	Torus    int `json:"torus"`
}

// DefaultNumericFormat ...
var DefaultNumericFormat = NumericFormat{
	Plane:    12,
	Cylinder: 12,
	Cone:     12,
	Sphere:   12,
	Torus:    12,
}

// Serialize renders the result into one text blob per output file.
func Serialize(result converter.Result, nf NumericFormat) map[string]string {
	log.Debug("[serializer] %d cells, %d surfaces", len(result.Cells), len(result.Surfaces))
	files := map[string]string{}

	for fileName, serializeFunc := range map[string]func() string{
		cellsFile:    func() string { return serializeCells(result.Cells, result.BoundingBox) },
		surfacesFile: func() string { return serializeSurfaces(result.Surfaces, nf) },
	} {
		files[fileName] = serializeFunc()
	}
	return files
}

// boxColumnWidth is the column width of the universe box header values.
const boxColumnWidth = 10

func serializeCells(cells []*cell.Entity, box geometry.Box) string {
	var sb strings.Builder
	sb.WriteString("c universe box" + boxColumns(box) + "\n")
	for _, c := range cells {
		if c.IsDelimiter {
			fmt.Fprintf(&sb, "c %s\n", c.Comment)
			continue
		}
		line := fmt.Sprintf("%d %s", c.Label, c.Definition.String())
		if c.Comment != "" {
			line += " $ " + c.Comment
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

// boxColumns renders the box corners in fixed-width columns so deck headers
// line up between runs.
func boxColumns(box geometry.Box) string {
	var sb strings.Builder
	for _, v := range []float64{
		box.Min.X, box.Min.Y, box.Min.Z,
		box.Max.X, box.Max.Y, box.Max.Z,
	} {
		sb.WriteString(format.FloatToFixedWidthString(v, boxColumnWidth))
	}
	return sb.String()
}

func serializeSurfaces(surfaces []surface.Surface, nf NumericFormat) string {
	var sb strings.Builder
	for _, s := range surfaces {
		fmt.Fprintf(&sb, "%d %s\n", s.ID, surfaceCard(s.Geometry.GeometryType, nf))
	}
	return sb.String()
}

// surfaceCard renders the mnemonic and parameters of one surface. Planes use
// the general P card (unit normal plus offset); curved surfaces carry their
// parametric coefficients.
func surfaceCard(g surface.GeometryType, nf NumericFormat) string {
	switch s := g.(type) {
	case surface.Plane:
		n := s.Normal.Normalized()
		return "P" + formatParams(nf.Plane,
			n.X, n.Y, n.Z, n.Dot(s.Position.Sub(geometryOrigin)))
	case surface.Cylinder:
		a := s.Axis.Normalized()
		return "C" + formatParams(nf.Cylinder,
			s.Center.X, s.Center.Y, s.Center.Z, a.X, a.Y, a.Z, s.Radius)
	case surface.Cone:
		a := s.Axis.Normalized()
		return "K" + formatParams(nf.Cone,
			s.Apex.X, s.Apex.Y, s.Apex.Z, a.X, a.Y, a.Z, s.HalfAngle)
	case surface.Sphere:
		return "S" + formatParams(nf.Sphere,
			s.Center.X, s.Center.Y, s.Center.Z, s.Radius)
	case surface.Torus:
		a := s.Axis.Normalized()
		return "T" + formatParams(nf.Torus,
			s.Center.X, s.Center.Y, s.Center.Z, a.X, a.Y, a.Z,
			s.MajorRadius, s.MinorRadius)
	default:
		return "c unsupported surface"
	}
}

func formatParams(precision int, params ...float64) string {
	var sb strings.Builder
	for _, p := range params {
		sb.WriteString(" " + format.FloatToPrecisionString(p, precision))
	}
	return sb.String()
}
