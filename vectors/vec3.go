package vectors

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/f64"
)

// Vec3 is an immutable 3D vector with float64 components.
// Equality is exact, so two Vec3 values can be compared with ==.
type Vec3 struct {
	x, y, z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vec3 {
	return Vec3{x: x, y: y, z: z}
}

// NewInts returns the vector (x, y, z) with integer components widened to float64.
func NewInts[T constraints.Integer](x, y, z T) Vec3 {
	return Vec3{x: float64(x), y: float64(y), z: float64(z)}
}

// FromArray returns the vector held in a.
func FromArray(a f64.Vec3) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

func Zero() Vec3     { return Vec3{0, 0, 0} }
func Identity() Vec3 { return Vec3{1, 1, 1} }
func IHat() Vec3     { return Vec3{1, 0, 0} }
func JHat() Vec3     { return Vec3{0, 1, 0} }
func KHat() Vec3     { return Vec3{0, 0, 1} }

func (v Vec3) X() float64 { return v.x }
func (v Vec3) Y() float64 { return v.y }
func (v Vec3) Z() float64 { return v.z }

// WithX returns v with its X component replaced by x.
func (v Vec3) WithX(x float64) Vec3 { return Vec3{x, v.y, v.z} }

// WithY returns v with its Y component replaced by y.
func (v Vec3) WithY(y float64) Vec3 { return Vec3{v.x, y, v.z} }

// WithZ returns v with its Z component replaced by z.
func (v Vec3) WithZ(z float64) Vec3 { return Vec3{v.x, v.y, z} }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.x + o.x, v.y + o.y, v.z + o.z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.x - o.x, v.y - o.y, v.z - o.z}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.x, -v.y, -v.z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.x * s, v.y * s, v.z * s}
}

// Mul returns s * v.
func Mul(s float64, v Vec3) Vec3 {
	return v.Scale(s)
}

// Dot returns the dot product v · o.
// The terms are folded from the last one forward with fused multiply-adds.
func (v Vec3) Dot(o Vec3) float64 {
	return math.FMA(v.x, o.x, math.FMA(v.y, o.y, v.z*o.z))
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		x: math.FMA(v.y, o.z, -(v.z * o.y)),
		y: math.FMA(v.z, o.x, -(v.x * o.z)),
		z: math.FMA(v.x, o.y, -(v.y * o.x)),
	}
}

// MagnitudeSquared returns ||v||².
func (v Vec3) MagnitudeSquared() float64 {
	return v.Dot(v)
}

// Magnitude returns the Euclidean length ||v||.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Unit returns v / ||v||.
// The zero vector is not special-cased: the scale factor is +Inf and the
// result has non-finite components.
func (v Vec3) Unit() Vec3 {
	return v.Scale(1.0 / v.Magnitude())
}

// Round returns v with every component rounded to the nearest integer,
// halves away from zero.
func (v Vec3) Round() Vec3 {
	return Vec3{math.Round(v.x), math.Round(v.y), math.Round(v.z)}
}

// Equal reports whether v and o have exactly the same components.
func (v Vec3) Equal(o Vec3) bool {
	return v == o
}

// Array returns the components of v as an f64.Vec3.
func (v Vec3) Array() f64.Vec3 {
	return f64.Vec3{v.x, v.y, v.z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.x, v.y, v.z)
}
