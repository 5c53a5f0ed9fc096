package surface

import "math"

// sameSurface reports whether two geometries of the same kind coincide within
// tolerance. The second result reports an orientation-reversed match (plane
// normals anti-parallel), so callers can flip the half-space sign.
func sameSurface(a, b GeometryType, tol Tolerances) (match, reversed bool) {
	switch ga := a.(type) {
	case Plane:
		gb, ok := b.(Plane)
		if !ok {
			return false, false
		}
		return samePlane(ga, gb, tol)
	case Cylinder:
		gb, ok := b.(Cylinder)
		if !ok {
			return false, false
		}
		return sameCylinder(ga, gb, tol), false
	case Cone:
		gb, ok := b.(Cone)
		if !ok {
			return false, false
		}
		return sameCone(ga, gb, tol), false
	case Sphere:
		gb, ok := b.(Sphere)
		if !ok {
			return false, false
		}
		return sameSphere(ga, gb, tol), false
	case Torus:
		gb, ok := b.(Torus)
		if !ok {
			return false, false
		}
		return sameTorus(ga, gb, tol), false
	default:
		return false, false
	}
}

func samePlane(a, b Plane, tol Tolerances) (match, reversed bool) {
	na := a.Normal.Normalized()
	nb := b.Normal.Normalized()
	if !na.IsParallel(nb, tol.angle(tol.PlaneAngle)) {
		return false, false
	}
	// signed offsets along a's normal
	if math.Abs(na.Dot(b.Position.Sub(a.Position))) > tol.distance(tol.PlaneDistance) {
		return false, false
	}
	return true, !na.IsSameDirection(nb, tol.angle(tol.PlaneAngle))
}

func sameCylinder(a, b Cylinder, tol Tolerances) bool {
	dist := tol.distance(tol.CylinderDistance)
	aa := a.Axis.Normalized()
	ab := b.Axis.Normalized()
	if !aa.IsParallel(ab, tol.angle(tol.CylinderAngle)) {
		return false
	}
	if math.Abs(a.Radius-b.Radius) > dist {
		return false
	}
	// distance between the two axis lines
	d := b.Center.Sub(a.Center)
	return d.Sub(aa.Scale(d.Dot(aa))).Norm() <= dist
}

func sameCone(a, b Cone, tol Tolerances) bool {
	aa := a.Axis.Normalized()
	ab := b.Axis.Normalized()
	if !aa.IsParallel(ab, tol.angle(tol.ConeAngle)) {
		return false
	}
	if math.Abs(a.HalfAngle-b.HalfAngle) > tol.angle(tol.ConeAngle) {
		return false
	}
	return b.Apex.Sub(a.Apex).Norm() <= tol.distance(tol.ConeDistance)
}

func sameSphere(a, b Sphere, tol Tolerances) bool {
	dist := tol.distance(tol.SphereDistance)
	if math.Abs(a.Radius-b.Radius) > dist {
		return false
	}
	return b.Center.Sub(a.Center).Norm() <= dist
}

func sameTorus(a, b Torus, tol Tolerances) bool {
	dist := tol.distance(tol.TorusDistance)
	aa := a.Axis.Normalized()
	ab := b.Axis.Normalized()
	if !aa.IsParallel(ab, tol.angle(tol.TorusAngle)) {
		return false
	}
	if math.Abs(a.MajorRadius-b.MajorRadius) > dist {
		return false
	}
	if math.Abs(a.MinorRadius-b.MinorRadius) > dist {
		return false
	}
	return b.Center.Sub(a.Center).Norm() <= dist
}
