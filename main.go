package main

import (
	"context"
	"log"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gen, cleanup, err := InitApp(ctx)
	if err != nil {
		log.Fatalf("init generator failed: %v", err)
	}
	defer cleanup()
	defer gen.Shutdown(ctx)

	if err := gen.Run(ctx); err != nil {
		log.Fatalf("generate rungs failed: %v", err)
	}
}
