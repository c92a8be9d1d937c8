package gm

import "math"

// Ray is a half line starting at Origin going into Direction.
// Direction is expected to be normalized. Distances returned by the
// intersection methods are measured in multiples of Direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// RayTowards builds a ray from origin looking at target.
func RayTowards(origin, target Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: target.Sub(origin).Normalized(),
	}
}

// At returns the point at the given distance along the ray.
func (r Ray) At(distance float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(distance))
}

type Sphere struct {
	Center Vec3
	Radius float64
}

// AABB is an axis aligned bounding box.
type AABB struct {
	Min, Max Vec3
}

func AABBWithCenterAndSize(center, size Vec3) AABB {
	half := size.Mul(0.5)
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// IntersectSphere returns the distance to the first intersection with the sphere.
// If the ray starts inside the sphere, the distance to the exit point is returned.
func (r Ray) IntersectSphere(s Sphere) (float64, bool) {
	oc := r.Origin.Sub(s.Center)

	b := oc.Dot(r.Direction)
	c := oc.LengthSqr() - s.Radius*s.Radius

	discriminant := b*b - c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	t := -b - sqrtD
	if t < 0 {
		// origin inside the sphere, take the far intersection
		t = -b + sqrtD
	}

	if t < 0 {
		// sphere is behind the ray
		return 0, false
	}

	return t, true
}

// IntersectAABB tests the ray against an axis aligned box using the slab method.
// If the ray starts inside the box, the distance to the exit point is returned.
func (r Ray) IntersectAABB(box AABB) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	direction := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := range 3 {
		if direction[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}

			continue
		}

		t1 := (lo[axis] - origin[axis]) / direction[axis]
		t2 := (hi[axis] - origin[axis]) / direction[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = max(tMin, t1)
		tMax = min(tMax, t2)
	}

	if tMax < tMin || tMax < 0 {
		return 0, false
	}

	if tMin < 0 {
		return tMax, true
	}

	return tMin, true
}
