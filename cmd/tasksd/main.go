package main

import (
	"context"
	"fmt"
	"os"

	"time-travel-tasks/internal/cli"
)

func main() {
	root := cli.NewRootCommand()

	if err := root.Command().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
