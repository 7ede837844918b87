package geometry

// Sphere represents a sphere with a center point and radius
type Sphere struct {
	Center Vector3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center Vector3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// ContainsPoint returns true if the point lies inside or on the sphere
func (s Sphere) ContainsPoint(p Vector3) bool {
	d := p.Sub(s.Center)
	return d.Dot(d) <= s.Radius*s.Radius
}
