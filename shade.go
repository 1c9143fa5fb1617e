package tannen

import "math"

// Shade evaluates the scene at one normalized coordinate and returns the
// straight-alpha color for that pixel.
//
// uv is in [0,1]×[0,1] with Y increasing upward (uv.Y = 0 is the bottom
// edge). t is elapsed seconds, the sole animation input. aspect is
// width/height of the output surface; the horizontal axis is scaled by it so
// the tree is not distorted on non-square outputs.
//
// Shade is a pure function of its inputs and package constants. Any number of
// pixels may be evaluated concurrently or in any order.
func Shade(uv Vec2, t, aspect float64) Color {
	p := Vec2{(uv.X - 0.5) * aspect, uv.Y - 0.35}

	c, a := shadeShapes(p, t)

	// Neon rim: partially covered edge pixels pick up a teal tint.
	if g := edgeGlowGain(a); g > 0 {
		c.R += edgeGlowTint.R * g
		c.G += edgeGlowTint.G * g
		c.B += edgeGlowTint.B * g
	}

	a *= vignette(uv)

	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(a),
	}
}

// edgeGlowGain returns the rim-tint weight for a running coverage value.
// Only partially covered pixels glow: the interval is strictly open, so
// exactly 0.1 or 0.95 contribute nothing.
func edgeGlowGain(a float64) float64 {
	if a > 0.1 && a < 0.95 {
		return (1 - a) * 0.3
	}
	return 0
}

// vignette fades the whole composition toward transparent near the corners.
// 1 at the exact center, 0 at or beyond distance 0.7, monotone in between.
func vignette(uv Vec2) float64 {
	d := uv.Sub(Vec2{0.5, 0.5}).Length()
	return 1 - smoothstep(0.4, 0.7, d)
}

// shadeShapes runs the shape stages in fixed order and returns the running
// (color, alpha) before edge glow and vignette. The last successful shape
// test wins for color; alpha is the running maximum unless a stage blends.
// Outside every shape's bounding test the returned alpha is exactly 0.
func shadeShapes(p Vec2, t float64) (Color, float64) {
	// No actual rotation happens. rotPhase only biases brightness and light
	// visibility left/right, a 2D illusion of the tree turning.
	rotAngle := t * 0.5
	rotPhase := math.Sin(rotAngle)

	var c Color
	a := 0.0

	// Trunk.
	trunkBottom := trunkTop - trunkHeight
	if p.Y > trunkBottom && p.Y < trunkTop && math.Abs(p.X) < trunkWidth {
		shade := 0.7 + 0.3*rotPhase*(p.X/trunkWidth)
		c = Color{R: trunkColor.R * shade, G: trunkColor.G * shade, B: trunkColor.B * shade}
		a = smoothstep(trunkWidth, trunkWidth-0.01, math.Abs(p.X))
	}

	// Foliage. Later layers draw over earlier ones: color is an overwrite,
	// not a blend, while coverage accumulates as a max.
	for _, layer := range foliageLayers {
		top := layer.bottom + layer.height
		if p.Y <= layer.bottom || p.Y >= top {
			continue
		}
		heightNorm := (p.Y - layer.bottom) / layer.height
		halfWidth := layer.width * (1 - heightNorm)
		if math.Abs(p.X) >= halfWidth {
			continue
		}
		shade := 0.6 + 0.4*(0.5+0.5*rotPhase*(p.X/math.Max(halfWidth, minHalfWidth)))
		shade *= 0.85 + 0.15*heightNorm
		green := mixColor(foliageDark, foliageBright, shade)
		boost := (1 - math.Abs(p.X)/halfWidth) * 0.5
		green.R += foliageBoost.R * boost
		green.G += foliageBoost.G * boost
		green.B += foliageBoost.B * boost
		c = green
		a = math.Max(a, smoothstep(halfWidth, halfWidth-0.015, math.Abs(p.X)))
	}

	// Lights.
	for i := range lightAnchors {
		pos := lightAnchors[i]
		pos.X += math.Sin(rotAngle+float64(i)*0.5) * 0.015

		d := p.Sub(pos).Length()
		b := blink(i, t)

		// Lights on the "far side" of the fake rotation dim. sign() is
		// discontinuous when the jittered x crosses 0; that single-column
		// glow step is part of the reference look, left as is.
		sideVisibility := 0.5 + 0.5*sign(pos.X)*rotPhase
		b *= 0.3 + 0.7*sideVisibility

		core := smoothstep(0.025, 0.005, d) * b
		glow := smoothstep(0.07, 0.01, d) * b * 0.5

		lc := lightPalette[i%len(lightPalette)]
		c = mixColor(c, lc, core)
		c.R += lc.R * glow
		c.G += lc.G * glow
		c.B += lc.B * glow
		a = math.Max(a, core+glow*0.5)
	}

	// Star.
	rel := p.Sub(starAnchor)
	d := rel.Length()
	pulse := 0.8 + 0.2*math.Sin(t*3)
	angle := math.Atan2(rel.Y, rel.X)

	// Five-pointed silhouette: the threshold radius swells on a 2.5x angular
	// frequency (5 lobes over the full circle).
	radius := (0.025 + 0.015*math.Pow(math.Abs(math.Sin(angle*2.5+0.5)), 2)) * pulse
	body := smoothstep(radius, radius*0.3, d)
	glow := smoothstep(0.1, 0, d) * 0.6 * pulse
	rays := math.Pow(math.Abs(math.Sin(angle*5+t*1.2)), 4) * smoothstep(0.12, 0.02, d) * 0.4 * pulse

	c = mixColor(c, starGold, glow+rays)
	c = mixColor(c, mixColor(starGold, starWhite, 0.7), body)
	a = math.Max(a, body+glow*0.8+rays*0.5)

	return c, a
}

// blink returns light i's pulsing brightness at time t, in [0.3, 1]: never
// fully off. Phase and speed derive from the index alone, so the pattern is
// identical every run.
func blink(i int, t float64) float64 {
	n := float64(i)
	phase := n*0.8 + hash(n)*6.28
	speed := 2.0 + hash(n+5)*2.0
	s := 0.5 + 0.5*math.Sin(t*speed+phase)
	return 0.3 + 0.7*s*s
}
