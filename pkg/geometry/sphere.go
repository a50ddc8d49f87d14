package geometry

import (
	"math"

	"github.com/ilandmann/pathtracer/pkg/core"
	"github.com/ilandmann/pathtracer/pkg/material"
)

// Sphere is a static or linearly-moving sphere (spec.md §4.3). When
// Center2 equals Center1 the sphere is static; otherwise its center
// interpolates linearly from Center1 at shutter time 0 to Center2 at
// shutter time 1.
type Sphere struct {
	Center1, Center2 core.Vec3
	Radius            float64
	Material          material.Material
}

// NewSphere builds a static sphere.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center1: center, Center2: center, Radius: radius, Material: mat}
}

// NewMovingSphere builds a sphere whose center moves from center1 to
// center2 over the shutter interval.
func NewMovingSphere(center1, center2 core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center1: center1, Center2: center2, Radius: radius, Material: mat}
}

// centerAt returns the sphere's center at the given ray shutter time.
func (s *Sphere) centerAt(time float64) core.Vec3 {
	if s.Center1 == s.Center2 {
		return s.Center1
	}
	return s.Center1.Add(s.Center2.Subtract(s.Center1).Multiply(time))
}

// sphereUV computes (u, v) from a point on the unit sphere (spec.md §4.3).
func sphereUV(outwardNormal core.Vec3) (u, v float64) {
	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi
	return phi / (2.0 * math.Pi), theta / math.Pi
}

// Hit implements Hittable.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	center := s.centerAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return material.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(outwardNormal)

	hit := material.HitRecord{
		T:        root,
		Point:    point,
		Material: s.Material,
		U:        u,
		V:        v,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox implements Hittable.
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box1 := core.NewAABBFromPoints(s.Center1.Subtract(radius), s.Center1.Add(radius))
	if s.Center1 == s.Center2 {
		return box1
	}
	box2 := core.NewAABBFromPoints(s.Center2.Subtract(radius), s.Center2.Add(radius))
	return box1.Union(box2)
}
