// palettegen - accessible colour palettes for the Telugu Delicacies storefront
//
// palettegen expands three seed colours into a full palette with readable
// text colours and writes it as CSS custom properties, Tailwind theme files
// or JSON.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/telugudelicacies/palettegen/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
