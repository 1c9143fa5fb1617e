// Command treesnap renders one frame of the tree scene to a PNG using the
// CPU evaluator. Handy for previewing shading changes without a display.
//
// Usage: treesnap [output.png [seconds]]
//
// Defaults: tree.png at t=1.5s, at the overlay's native 200×280.
package main

import (
	"image/png"
	"log"
	"os"
	"strconv"

	"tannen"
)

const (
	frameWidth  = 200
	frameHeight = 280
)

func main() {
	out := "tree.png"
	t := 1.5

	if len(os.Args) > 1 {
		out = os.Args[1]
	}
	if len(os.Args) > 2 {
		v, err := strconv.ParseFloat(os.Args[2], 64)
		if err != nil {
			log.Fatalf("bad time %q: %v", os.Args[2], err)
		}
		t = v
	}

	img, err := tannen.RenderFrame(frameWidth, frameHeight, t)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}
