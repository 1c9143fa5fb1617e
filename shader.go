package tannen

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GPU path: a Kage kernel mirroring Shade. The geometry scalars are repeated
// in the source below and must stay in lockstep with shade.go; the light
// anchors and palette are shared with the CPU path via uniforms (see
// LightPosUniform and LightColorUniform).
//
// Kage uses //kage:unit pixels and premultiplied alpha: the kernel computes a
// straight-alpha result exactly like Shade and premultiplies on return.

const sceneShaderSrc = `//kage:unit pixels
package main

var Time float
var Resolution vec2
var LightPos [12]vec2
var LightColors [12]vec4

func hash(n float) float {
	return fract(sin(n) * 43758.5453123)
}

// foliage shades one triangular canopy layer, returning straight rgb in xyz
// and edge coverage in w, or vec4(0) outside the layer.
func foliage(p vec2, rotPhase, bottom, height, width float) vec4 {
	top := bottom + height
	if p.y <= bottom || p.y >= top {
		return vec4(0.0)
	}
	heightNorm := (p.y - bottom) / height
	halfWidth := width * (1.0 - heightNorm)
	if abs(p.x) >= halfWidth {
		return vec4(0.0)
	}
	shade := 0.6 + 0.4*(0.5+0.5*rotPhase*(p.x/max(halfWidth, 0.01)))
	shade *= 0.85 + 0.15*heightNorm
	treeGreen := mix(vec3(0.0, 0.18, 0.1), vec3(0.0, 0.45, 0.25), shade)
	treeGreen += vec3(0.0, 0.15, 0.08) * (1.0 - abs(p.x)/halfWidth) * 0.5
	return vec4(treeGreen, smoothstep(halfWidth, halfWidth-0.015, abs(p.x)))
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	uv := (dst.xy - imageDstOrigin()) / Resolution
	uv.y = 1.0 - uv.y
	aspect := Resolution.x / Resolution.y

	p := uv - vec2(0.5, 0.35)
	p.x *= aspect

	rotAngle := Time * 0.5
	rotPhase := sin(rotAngle)

	finalColor := vec3(0.0)
	finalAlpha := 0.0

	// Trunk.
	trunkTop := -0.22
	trunkBottom := trunkTop - 0.08
	trunkWidth := 0.045
	if p.y > trunkBottom && p.y < trunkTop && abs(p.x) < trunkWidth {
		trunkShade := 0.7 + 0.3*rotPhase*(p.x/trunkWidth)
		finalColor = vec3(0.4, 0.22, 0.1) * trunkShade
		finalAlpha = smoothstep(trunkWidth, trunkWidth-0.01, abs(p.x))
	}

	// Foliage: three stacked triangular layers, bottom-widest first.
	layer1 := foliage(p, rotPhase, -0.24, 0.28, 0.26)
	if layer1.a > 0.0 {
		finalColor = layer1.rgb
		finalAlpha = max(finalAlpha, layer1.a)
	}
	layer2 := foliage(p, rotPhase, -0.09, 0.26, 0.21)
	if layer2.a > 0.0 {
		finalColor = layer2.rgb
		finalAlpha = max(finalAlpha, layer2.a)
	}
	layer3 := foliage(p, rotPhase, 0.05, 0.24, 0.16)
	if layer3.a > 0.0 {
		finalColor = layer3.rgb
		finalAlpha = max(finalAlpha, layer3.a)
	}

	// Lights.
	for i := 0; i < 12; i++ {
		lightPos := LightPos[i]
		lightPos.x += sin(rotAngle+float(i)*0.5) * 0.015

		d := length(p - lightPos)

		n := float(i)
		blinkPhase := n*0.8 + hash(n)*6.28
		blinkSpeed := 2.0 + hash(n+5.0)*2.0
		blink := 0.3 + 0.7*pow(0.5+0.5*sin(Time*blinkSpeed+blinkPhase), 2.0)

		sideVisibility := 0.5 + 0.5*sign(lightPos.x)*rotPhase
		blink *= 0.3 + 0.7*sideVisibility

		lightCore := smoothstep(0.025, 0.005, d) * blink
		lightGlow := smoothstep(0.07, 0.01, d) * blink * 0.5

		thisColor := LightColors[i].rgb
		finalColor = mix(finalColor, thisColor, lightCore)
		finalColor += thisColor * lightGlow
		finalAlpha = max(finalAlpha, lightCore+lightGlow*0.5)
	}

	// Star.
	starPos := vec2(0.0, 0.38)
	starDist := length(p - starPos)
	starPulse := 0.8 + 0.2*sin(Time*3.0)
	starAngle := atan2(p.y-starPos.y, p.x-starPos.x)
	starShape := (0.025 + 0.015*pow(abs(sin(starAngle*2.5+0.5)), 2.0)) * starPulse
	star := smoothstep(starShape, starShape*0.3, starDist)
	starGlow := smoothstep(0.1, 0.0, starDist) * 0.6 * starPulse
	rays := pow(abs(sin(starAngle*5.0+Time*1.2)), 4.0)
	starRays := smoothstep(0.12, 0.02, starDist) * rays * 0.4 * starPulse

	starGold := vec3(1.0, 0.85, 0.1)
	starWhite := vec3(1.0, 1.0, 0.95)
	finalColor = mix(finalColor, starGold, starGlow+starRays)
	finalColor = mix(finalColor, mix(starGold, starWhite, 0.7), star)
	finalAlpha = max(finalAlpha, star+starGlow*0.8+starRays*0.5)

	// Edge glow on anti-aliased boundaries.
	if finalAlpha > 0.1 && finalAlpha < 0.95 {
		finalColor += vec3(0.0, 0.9, 0.5) * (1.0 - finalAlpha) * 0.3
	}

	// Vignette.
	finalAlpha *= 1.0 - smoothstep(0.4, 0.7, length(uv-vec2(0.5)))

	finalColor = clamp(finalColor, vec3(0.0), vec3(1.0))
	finalAlpha = clamp(finalAlpha, 0.0, 1.0)
	return vec4(finalColor*finalAlpha, finalAlpha) * color
}
`

// NewSceneShader compiles the scene kernel. A compile failure is fatal to the
// overlay; the diagnostic carries Kage's error text.
func NewSceneShader() (*ebiten.Shader, error) {
	s, err := ebiten.NewShader([]byte(sceneShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("compile scene shader: %w", err)
	}
	return s, nil
}

// LightPosUniform flattens the light anchors into the layout Kage expects for
// a [12]vec2 uniform.
func LightPosUniform() []float32 {
	out := make([]float32, 0, len(lightAnchors)*2)
	for _, p := range lightAnchors {
		out = append(out, float32(p.X), float32(p.Y))
	}
	return out
}

// LightColorUniform flattens the per-light base colors (palette cycled by
// index mod 8) into the layout Kage expects for a [12]vec4 uniform.
func LightColorUniform() []float32 {
	out := make([]float32, 0, len(lightAnchors)*4)
	for i := range lightAnchors {
		c := lightPalette[i%len(lightPalette)]
		out = append(out, float32(c.R), float32(c.G), float32(c.B), 1)
	}
	return out
}
