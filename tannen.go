package tannen

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a frame is written out (see Rasterize) or at
// blend submission time on the GPU path.
type Color struct {
	R, G, B, A float64
}

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Length returns the Euclidean length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// mix linearly interpolates between a and b by t.
func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// mixColor interpolates the RGB channels of a and b by t. Alpha is carried
// separately by the shading pipeline and is left at zero here.
func mixColor(a, b Color, t float64) Color {
	return Color{
		R: mix(a.R, b.R, t),
		G: mix(a.G, b.G, t),
		B: mix(a.B, b.B, t),
	}
}

// smoothstep is the GLSL smoothstep: a Hermite ramp from 0 at edge0 to 1 at
// edge1, clamped outside. Reversed edges (edge0 > edge1) invert the ramp,
// which the shading stages rely on for inside-is-one falloffs.
func smoothstep(edge0, edge1, x float64) float64 {
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// fract returns the fractional part of x, matching GLSL fract (x - floor(x)).
func fract(x float64) float64 {
	return x - math.Floor(x)
}

// sign matches GLSL sign: -1, 0, or +1.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// hash maps n to a deterministic pseudo-random value in [0, 1).
// Classic shader one-liner; the exact constant matters for the blink look.
func hash(n float64) float64 {
	return fract(math.Sin(n) * 43758.5453123)
}
