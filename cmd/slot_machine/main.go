package main

import (
	"context"
	"fmt"
	"os"

	"slot_machine/internal/app"
)

func main() {
	a := app.NewApp(os.Stdin, os.Stdout)
	if err := a.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
