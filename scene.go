package tannen

// Scene geometry and palette. These are authored constants, not derived
// quantities: the layer overlaps, the light distribution, and the color
// cycling are part of the look and must not drift.

// Overall envelope of the tree within the centered coordinate space.
const (
	treeHeight = 0.55
	treeWidth  = 0.28
)

// Trunk: a vertical band directly below the foliage.
const (
	trunkTop    = -0.22
	trunkHeight = 0.08
	trunkWidth  = 0.045
)

// trunkColor is the unshaded base brown.
var trunkColor = Color{R: 0.4, G: 0.22, B: 0.1}

// foliageLayer describes one triangular band of the canopy. The local
// half-width tapers linearly from width at bottom to zero at bottom+height.
type foliageLayer struct {
	bottom float64
	height float64
	width  float64
}

// Three stacked layers, bottom-widest to top-narrowest. Each layer's bottom
// sits inside the previous layer's band so the silhouette reads as one tree.
var foliageLayers = [3]foliageLayer{
	{bottom: -0.24, height: 0.28, width: 0.26},
	{bottom: -0.09, height: 0.26, width: 0.21},
	{bottom: 0.05, height: 0.24, width: 0.16},
}

// minHalfWidth floors the taper denominator so shading stays stable at the
// exact apex of a layer.
const minHalfWidth = 0.01

// Foliage shading endpoints and the center-brightening tint.
var (
	foliageDark   = Color{R: 0, G: 0.18, B: 0.1}
	foliageBright = Color{R: 0, G: 0.45, B: 0.25}
	foliageBoost  = Color{R: 0, G: 0.15, B: 0.08}
)

// lightAnchors are the hand-placed rest positions of the twelve lights,
// alternating sides up the canopy.
var lightAnchors = [12]Vec2{
	{-0.12, -0.15},
	{0.10, -0.10},
	{-0.06, -0.02},
	{0.14, -0.18},
	{-0.08, 0.08},
	{0.06, 0.02},
	{-0.03, 0.15},
	{0.09, 0.10},
	{-0.05, 0.22},
	{0.04, 0.18},
	{-0.02, 0.28},
	{0.02, 0.25},
}

// lightPalette holds the eight base colors the lights cycle through
// (light i uses lightPalette[i mod 8]).
var lightPalette = [8]Color{
	{R: 1.0, G: 0.15, B: 0.5},  // hot pink
	{R: 0.0, G: 1.0, B: 1.0},   // cyan
	{R: 1.0, G: 0.85, B: 0.0},  // gold
	{R: 0.65, G: 0.1, B: 1.0},  // purple
	{R: 0.2, G: 1.0, B: 0.45},  // neon green
	{R: 1.0, G: 0.45, B: 0.0},  // orange
	{R: 0.2, G: 0.6, B: 1.0},   // electric blue
	{R: 1.0, G: 0.05, B: 0.65}, // magenta
}

// Star above the canopy.
var (
	starAnchor = Vec2{0, 0.38}
	starGold   = Color{R: 1.0, G: 0.85, B: 0.1}
	starWhite  = Color{R: 1.0, G: 1.0, B: 0.95}
)

// edgeGlowTint is the neon rim color added on anti-aliased boundaries.
var edgeGlowTint = Color{R: 0, G: 0.9, B: 0.5}
