package surface

// Tolerances control when two surfaces extracted from different solids are
// considered the same registry entry. Distances are in model units, angles in
// radians. Distance and Angle back any per-kind value left unset.
type Tolerances struct {
	Distance         float64 `json:"distance"`
	Angle            float64 `json:"angle"`
	PlaneDistance    float64 `json:"planeDistance"`
	PlaneAngle       float64 `json:"planeAngle"`
	CylinderDistance float64 `json:"cylinderDistance"`
	CylinderAngle    float64 `json:"cylinderAngle"`
	SphereDistance   float64 `json:"sphereDistance"`
	ConeDistance     float64 `json:"coneDistance"`
	ConeAngle        float64 `json:"coneAngle"`
	TorusDistance    float64 `json:"torusDistance"`
	TorusAngle       float64 `json:"torusAngle"`
}

// DefaultTolerances ...
var DefaultTolerances = Tolerances{
	Distance:         1e-4,
	Angle:            1e-4,
	PlaneDistance:    1e-4,
	PlaneAngle:       1e-4,
	CylinderDistance: 1e-4,
	CylinderAngle:    1e-4,
	SphereDistance:   1e-4,
	ConeDistance:     1e-4,
	ConeAngle:        1e-4,
	TorusDistance:    1e-4,
	TorusAngle:       1e-4,
}

func (t Tolerances) distance(v float64) float64 {
	if v > 0 {
		return v
	}
	return t.Distance
}

func (t Tolerances) angle(v float64) float64 {
	if v > 0 {
		return v
	}
	return t.Angle
}
