// Package gm (stands for geometry math) provides the geometry primitives used
// by the gaze controller and its renderers.
//
// It includes a 2d vector type called Vec for screen space, a 3d vector Vec3
// for world space, a Ray with sphere and box intersection and an Affine
// transform for mapping between world and screen.
//
// There is also a type named Rad to represent angle values in radian.
package gm
