package main

import (
	"context"
	"fmt"
	"os"

	"knowledge-ingestor/bootstrap"
)

func main() {
	if err := bootstrap.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "knowledge-ingestor failed: %v\n", err)
		os.Exit(1)
	}
}
