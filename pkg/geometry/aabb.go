package geometry

import "math"

// MeshBuilder accepts triangular faces, e.g. for export. A nil normal means
// the receiver computes the face normal from the winding order.
type MeshBuilder interface {
	AddFace(v0, v1, v2 Vector3, normal *Vector3)
}

// AABB is an axis-aligned bounding box described by a center point and a
// half-extent vector. The min and max corners are derived from those two
// fields and cached; every mutator re-derives them, so the cached corners
// are always consistent with the current center and extent.
//
// Half-extents are not validated; a negative component produces a
// degenerate inverted box.
type AABB struct {
	center Vector3
	extent Vector3
	min    Vector3
	max    Vector3
}

// NewAABB creates a box from a center point and a uniform half-extent
func NewAABB(center Vector3, extent float64) *AABB {
	return NewAABBFromExtent(center, NewVector3(extent, extent, extent))
}

// NewAABBFromExtent creates a box from a center point and a per-axis
// half-extent vector
func NewAABBFromExtent(center, extent Vector3) *AABB {
	box := &AABB{center: center, extent: extent}
	box.updateBounds()
	return box
}

// AABBFromMinMax creates a box spanning two opposite corner points.
// The corners may be given in any order; they are normalized internally.
func AABBFromMinMax(a, b Vector3) *AABB {
	min := a.Min(b)
	max := a.Max(b)
	return NewAABBFromExtent(min.Lerp(max, 0.5), max.Sub(min).Mul(0.5))
}

// updateBounds recomputes the cached min/max corners. Must be called after
// every change to center or extent.
func (b *AABB) updateBounds() {
	b.min = b.center.Sub(b.extent)
	b.max = b.center.Add(b.extent)
}

// Center returns the center point of the box
func (b *AABB) Center() Vector3 {
	return b.center
}

// Extent returns the half-extent vector of the box
func (b *AABB) Extent() Vector3 {
	return b.extent
}

// Min returns the minimum corner of the box
func (b *AABB) Min() Vector3 {
	return b.min
}

// Max returns the maximum corner of the box
func (b *AABB) Max() Vector3 {
	return b.max
}

// Size returns the full dimensions of the box (twice the half-extent)
func (b *AABB) Size() Vector3 {
	return b.extent.Mul(2)
}

// Diagonal returns the length of the box diagonal
func (b *AABB) Diagonal() float64 {
	return b.Size().Length()
}

// Volume returns the volume of the box
func (b *AABB) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}

// Copy returns an independent copy of the box
func (b *AABB) Copy() *AABB {
	return NewAABBFromExtent(b.center, b.extent)
}

// SetCenter repositions the box
func (b *AABB) SetCenter(x, y, z float64) {
	b.center = NewVector3(x, y, z)
	b.updateBounds()
}

// SetCenterVec repositions the box at the given point
func (b *AABB) SetCenterVec(p Vector3) {
	b.center = p
	b.updateBounds()
}

// SetExtent replaces the half-extent of the box
func (b *AABB) SetExtent(extent Vector3) {
	b.extent = extent
	b.updateBounds()
}

// IncludePoint grows the box in place so that it encloses the given point.
// Including a point already inside the box leaves it unchanged.
func (b *AABB) IncludePoint(p Vector3) {
	min := b.min.Min(p)
	max := b.max.Max(p)
	b.center = min.Lerp(max, 0.5)
	b.extent = max.Sub(min).Mul(0.5)
	b.updateBounds()
}

// ContainsPoint returns true if the point lies within the box on all three
// axes, boundary included
func (b *AABB) ContainsPoint(p Vector3) bool {
	return p.X >= b.min.X && p.X <= b.max.X &&
		p.Y >= b.min.Y && p.Y <= b.max.Y &&
		p.Z >= b.min.Z && p.Z <= b.max.Z
}

// IntersectsBox returns true if the two boxes overlap. Touching faces count
// as overlap.
func (b *AABB) IntersectsBox(other *AABB) bool {
	t := other.center.Sub(b.center)
	return math.Abs(t.X) <= b.extent.X+other.extent.X &&
		math.Abs(t.Y) <= b.extent.Y+other.extent.Y &&
		math.Abs(t.Z) <= b.extent.Z+other.extent.Z
}

// IntersectsSphere returns true if the box intersects a sphere with the
// given center and radius. Per axis, only the shortfall outside the box
// contributes to the squared distance.
func (b *AABB) IntersectsSphere(center Vector3, radius float64) bool {
	d := 0.0

	if center.X < b.min.X {
		s := center.X - b.min.X
		d += s * s
	} else if center.X > b.max.X {
		s := center.X - b.max.X
		d += s * s
	}

	if center.Y < b.min.Y {
		s := center.Y - b.min.Y
		d += s * s
	} else if center.Y > b.max.Y {
		s := center.Y - b.max.Y
		d += s * s
	}

	if center.Z < b.min.Z {
		s := center.Z - b.min.Z
		d += s * s
	} else if center.Z > b.max.Z {
		s := center.Z - b.max.Z
		d += s * s
	}

	return d <= radius*radius
}

// IntersectsRay calculates the first intersection of the ray with the box
// within the distance interval [minDist, maxDist]. It returns the entry
// point and true, or a zero vector and false when the ray misses.
//
// The slab test selects the near and far plane per axis from the sign of
// the reciprocal direction, so axis-parallel rays (reciprocal components of
// ±Inf) are handled without special cases, as described in Williams et al.,
// "An Efficient and Robust Ray-Box Intersection Algorithm", JGT 10(1), 2005.
func (b *AABB) IntersectsRay(ray Ray, minDist, maxDist float64) (Vector3, bool) {
	invDir := ray.Direction.Reciprocal()
	signX := invDir.X < 0
	signY := invDir.Y < 0
	signZ := invDir.Z < 0

	var tmin, tmax float64
	if signX {
		tmin = (b.max.X - ray.Origin.X) * invDir.X
		tmax = (b.min.X - ray.Origin.X) * invDir.X
	} else {
		tmin = (b.min.X - ray.Origin.X) * invDir.X
		tmax = (b.max.X - ray.Origin.X) * invDir.X
	}

	var tymin, tymax float64
	if signY {
		tymin = (b.max.Y - ray.Origin.Y) * invDir.Y
		tymax = (b.min.Y - ray.Origin.Y) * invDir.Y
	} else {
		tymin = (b.min.Y - ray.Origin.Y) * invDir.Y
		tymax = (b.max.Y - ray.Origin.Y) * invDir.Y
	}

	if tmin > tymax || tymin > tmax {
		return Vector3{}, false
	}
	if tymin > tmin {
		tmin = tymin
	}
	if tymax < tmax {
		tmax = tymax
	}

	var tzmin, tzmax float64
	if signZ {
		tzmin = (b.max.Z - ray.Origin.Z) * invDir.Z
		tzmax = (b.min.Z - ray.Origin.Z) * invDir.Z
	} else {
		tzmin = (b.min.Z - ray.Origin.Z) * invDir.Z
		tzmax = (b.max.Z - ray.Origin.Z) * invDir.Z
	}

	if tmin > tzmax || tzmin > tmax {
		return Vector3{}, false
	}
	if tzmin > tmin {
		tmin = tzmin
	}
	if tzmax < tmax {
		tmax = tzmax
	}

	if tmin < maxDist && tmax > minDist {
		return ray.PointAt(tmin), true
	}
	return Vector3{}, false
}

// NormalForPoint estimates the outward surface normal at a point on or near
// the box surface. The normal is the signed unit axis with the smallest
// penetration depth; on ties the earlier axis wins (x over y, y over z).
func (b *AABB) NormalForPoint(p Vector3) Vector3 {
	local := p.Sub(b.center)
	depth := b.extent.Sub(local.Abs())
	s := local.Sign()

	normal := NewVector3(s.X, 0, 0)
	minDepth := depth.X
	if depth.Y < minDepth {
		minDepth = depth.Y
		normal = NewVector3(0, s.Y, 0)
	}
	if depth.Z < minDepth {
		normal = NewVector3(0, 0, s.Z)
	}
	return normal
}

// ToMesh emits the box as a closed mesh of 8 vertices and 12 triangles.
// Every face is wound counter-clockwise seen from outside the box, so
// right-hand-rule normals face outward. The face normals are left to the
// builder.
func (b *AABB) ToMesh(m MeshBuilder) {
	// front
	a := NewVector3(b.min.X, b.max.Y, b.max.Z)
	bb := NewVector3(b.max.X, b.max.Y, b.max.Z)
	c := NewVector3(b.max.X, b.min.Y, b.max.Z)
	d := NewVector3(b.min.X, b.min.Y, b.max.Z)
	m.AddFace(a, d, bb, nil)
	m.AddFace(bb, d, c, nil)
	// back
	e := NewVector3(b.min.X, b.max.Y, b.min.Z)
	f := NewVector3(b.max.X, b.max.Y, b.min.Z)
	g := NewVector3(b.max.X, b.min.Y, b.min.Z)
	h := NewVector3(b.min.X, b.min.Y, b.min.Z)
	m.AddFace(f, g, e, nil)
	m.AddFace(e, g, h, nil)
	// top
	m.AddFace(e, a, f, nil)
	m.AddFace(f, a, bb, nil)
	// bottom
	m.AddFace(g, d, h, nil)
	m.AddFace(g, c, d, nil)
	// left
	m.AddFace(e, h, a, nil)
	m.AddFace(a, h, d, nil)
	// right
	m.AddFace(bb, g, f, nil)
	m.AddFace(bb, c, g, nil)
}
