// Package surface provides the canonical registry of geometric surfaces and
// their tolerance-based deduplication.
package surface

import (
	"encoding/json"

	"github.com/brepcsg/brepcsg/pkg/converter/geometry"
	"github.com/brepcsg/brepcsg/pkg/converter/utils"
)

// ID is the global surface number referenced (signed) by cell definitions.
type ID int64

var surfaceKind = struct {
	plane    string
	cylinder string
	cone     string
	sphere   string
	torus    string
}{
	plane:    "plane",
	cylinder: "cylinder",
	cone:     "cone",
	sphere:   "sphere",
	torus:    "torus",
}

var surfaceKindMapping = map[string]func() interface{}{
	surfaceKind.plane:    func() interface{} { return &Plane{} },
	surfaceKind.cylinder: func() interface{} { return &Cylinder{} },
	surfaceKind.cone:     func() interface{} { return &Cone{} },
	surfaceKind.sphere:   func() interface{} { return &Sphere{} },
	surfaceKind.torus:    func() interface{} { return &Torus{} },
}

// Surface is a registered geometric surface with its global number.
type Surface struct {
	ID       ID       `json:"id"`
	Geometry Geometry `json:"geometry"`
}

// Geometry wraps one of the primitive surface descriptions.
type Geometry struct {
	GeometryType
}

// GeometryType ...
type GeometryType interface{}

// MarshalJSON ...
func (g Geometry) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.GeometryType)
}

// UnmarshalJSON ...
func (g *Geometry) UnmarshalJSON(b []byte) error {
	geom, err := utils.TypeBasedUnmarshallJSON(b, surfaceKindMapping)
	if err != nil {
		return err
	}
	g.GeometryType = geom
	return nil
}

// Plane is the half-space boundary n·(p - position) = 0.
type Plane struct {
	Position geometry.Point `json:"position"`
	Normal   geometry.Vec3D `json:"normal"`
}

// MarshalJSON json.Marshaller implementation.
func (p Plane) MarshalJSON() ([]byte, error) {
	type Alias Plane
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  surfaceKind.plane,
		Alias: Alias(p),
	})
}

// Cylinder is an infinite circular cylinder around the given axis.
type Cylinder struct {
	Center geometry.Point `json:"center"`
	Axis   geometry.Vec3D `json:"axis"`
	Radius float64        `json:"radius"`
}

// MarshalJSON json.Marshaller implementation.
func (c Cylinder) MarshalJSON() ([]byte, error) {
	type Alias Cylinder
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  surfaceKind.cylinder,
		Alias: Alias(c),
	})
}

// Cone is the full infinite two-nappe cone around the given axis. The target
// transport codes model it the same way, which is why cone-bearing cells need
// auxiliary planes to single out one nappe.
type Cone struct {
	Apex      geometry.Point `json:"apex"`
	Axis      geometry.Vec3D `json:"axis"`
	HalfAngle float64        `json:"halfAngle"`
}

// MarshalJSON json.Marshaller implementation.
func (c Cone) MarshalJSON() ([]byte, error) {
	type Alias Cone
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  surfaceKind.cone,
		Alias: Alias(c),
	})
}

// Sphere ...
type Sphere struct {
	Center geometry.Point `json:"center"`
	Radius float64        `json:"radius"`
}

// MarshalJSON json.Marshaller implementation.
func (s Sphere) MarshalJSON() ([]byte, error) {
	type Alias Sphere
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  surfaceKind.sphere,
		Alias: Alias(s),
	})
}

// Torus is a circular torus around the given axis.
type Torus struct {
	Center      geometry.Point `json:"center"`
	Axis        geometry.Vec3D `json:"axis"`
	MajorRadius float64        `json:"majorRadius"`
	MinorRadius float64        `json:"minorRadius"`
}

// MarshalJSON json.Marshaller implementation.
func (t Torus) MarshalJSON() ([]byte, error) {
	type Alias Torus
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  surfaceKind.torus,
		Alias: Alias(t),
	})
}

// KindOf returns the kind name of a surface geometry, or "" for an unknown
// type.
func KindOf(g GeometryType) string {
	switch g.(type) {
	case Plane:
		return surfaceKind.plane
	case Cylinder:
		return surfaceKind.cylinder
	case Cone:
		return surfaceKind.cone
	case Sphere:
		return surfaceKind.sphere
	case Torus:
		return surfaceKind.torus
	default:
		return ""
	}
}
