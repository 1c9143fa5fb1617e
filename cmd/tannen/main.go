// Command tannen runs the Christmas tree overlay until interrupted.
//
// No flags, no config: the surface is a fixed 200×280 transparent window near
// the bottom-right screen corner. Stop it with Ctrl+C or SIGTERM.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"tannen"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tannen.RunOverlay(ctx, tannen.OverlayConfig{}); err != nil {
		log.Fatal(err)
	}
}
