// Package gm (stands for geometry math) provides the small set of geometry
// primitives needed by the collision event types, most importantly the
// 2d vector type Vec.
package gm
