package vectors

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Affine4 is an immutable 4-component vector in homogeneous form.
// W is conventionally 1 for points and 0 for directions; nothing here
// reads or enforces that.
type Affine4 struct {
	x, y, z, w float64
}

// NewAffine returns the vector (x, y, z, w).
func NewAffine(x, y, z, w float64) Affine4 {
	return Affine4{x: x, y: y, z: z, w: w}
}

// AffineFromArray returns the vector held in a.
func AffineFromArray(a f64.Vec4) Affine4 {
	return Affine4{a[0], a[1], a[2], a[3]}
}

func (v Affine4) X() float64 { return v.x }
func (v Affine4) Y() float64 { return v.y }
func (v Affine4) Z() float64 { return v.z }
func (v Affine4) W() float64 { return v.w }

// Add returns v + o.
func (v Affine4) Add(o Affine4) Affine4 {
	return Affine4{v.x + o.x, v.y + o.y, v.z + o.z, v.w + o.w}
}

// Sub returns v - o.
func (v Affine4) Sub(o Affine4) Affine4 {
	return Affine4{v.x - o.x, v.y - o.y, v.z - o.z, v.w - o.w}
}

// Neg returns -v.
func (v Affine4) Neg() Affine4 {
	return Affine4{-v.x, -v.y, -v.z, -v.w}
}

// Dot returns the dot product v · o, folded from the last term forward
// with fused multiply-adds.
func (v Affine4) Dot(o Affine4) float64 {
	return math.FMA(v.x, o.x, math.FMA(v.y, o.y, math.FMA(v.z, o.z, v.w*o.w)))
}

// MagnitudeSquared returns ||v||².
func (v Affine4) MagnitudeSquared() float64 {
	return v.Dot(v)
}

// Magnitude returns the Euclidean length ||v||.
func (v Affine4) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Equal reports whether v and o have exactly the same components.
func (v Affine4) Equal(o Affine4) bool {
	return v == o
}

// Array returns the components of v as an f64.Vec4.
func (v Affine4) Array() f64.Vec4 {
	return f64.Vec4{v.x, v.y, v.z, v.w}
}

func (v Affine4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.x, v.y, v.z, v.w)
}
