package geometry

// Ray represents a ray in 3D space with an origin and a direction
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a new ray with a normalized direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
	}
}

// PointAt returns the point at parameter t along the ray
func (r Ray) PointAt(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
