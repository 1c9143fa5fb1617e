// Command starfield paints one pass of colored stars over the current
// terminal contents and exits.
//
// Geometry comes from positional arguments (columns, then rows), falling back
// to the COLUMNS/LINES environment variables, the tty size, and finally 80×24.
package main

import (
	"bufio"
	"log"
	"os"

	"tannen"
)

func main() {
	cols, rows := tannen.ResolveTerminalSize(os.Args[1:])
	field := tannen.NewStarfield(cols, rows)

	w := bufio.NewWriter(os.Stdout)
	if err := field.Paint(w); err != nil {
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}
