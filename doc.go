// Package tannen renders a small always-on-top transparent desktop overlay
// showing an animated, procedurally shaded Christmas tree, plus an ornamental
// terminal starfield.
//
// There are no textures, meshes, or assets: the whole scene (trunk, three
// conic foliage layers, twelve blinking lights, a pulsing five-pointed star,
// neon edge glow, vignette) is a closed-form function of a normalized screen
// coordinate and elapsed time. The same function exists twice:
//
//   - [Shade] is the canonical pure-Go evaluator. [Rasterize] runs it over a
//     whole frame on the CPU, parallel across row bands.
//   - An embedded Kage kernel (compiled by [NewSceneShader]) mirrors it for
//     per-pixel GPU dispatch on [Ebitengine].
//
// # Overlay
//
// [RunOverlay] owns the display loop: it creates an undecorated, floating,
// click-through, transparent window tucked against the bottom-right corner of
// the primary monitor and feeds the kernel elapsed time and resolution once
// per vsync until the context is canceled:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := tannen.RunOverlay(ctx, tannen.OverlayConfig{}); err != nil {
//		log.Fatal(err)
//	}
//
// # Starfield
//
// [Starfield] is a separate single-shot utility: it scatters cols·rows/35
// colored glyphs over the terminal with cursor-addressing escape sequences
// and exits, leaving whatever was on screen intact.
//
//	f := tannen.NewStarfield(tannen.ResolveTerminalSize(os.Args[1:]))
//	f.Paint(os.Stdout)
//
// [Ebitengine]: https://ebitengine.org
package tannen
