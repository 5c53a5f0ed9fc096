package geometry

// Box is an axis-aligned box. It serves as the universe for void generation
// and as the local region for building comparison tables.
type Box struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Enlarge returns the box grown by padding on every side.
func (b Box) Enlarge(padding float64) Box {
	return Box{
		Min: Point{X: b.Min.X - padding, Y: b.Min.Y - padding, Z: b.Min.Z - padding},
		Max: Point{X: b.Max.X + padding, Y: b.Max.Y + padding, Z: b.Max.Z + padding},
	}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Point{
			X: minFloat(b.Min.X, o.Min.X),
			Y: minFloat(b.Min.Y, o.Min.Y),
			Z: minFloat(b.Min.Z, o.Min.Z),
		},
		Max: Point{
			X: maxFloat(b.Max.X, o.Max.X),
			Y: maxFloat(b.Max.Y, o.Max.Y),
			Z: maxFloat(b.Max.Z, o.Max.Z),
		},
	}
}

// Center ...
func (b Box) Center() Point {
	return Point{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Sample returns the point at fractional coordinates (u, v, w) in [0, 1]³.
func (b Box) Sample(u, v, w float64) Point {
	return Point{
		X: b.Min.X + u*(b.Max.X-b.Min.X),
		Y: b.Min.Y + v*(b.Max.Y-b.Min.Y),
		Z: b.Min.Z + w*(b.Max.Z-b.Min.Z),
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
