// Command show-task prints the full detail of a single task by id.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/talaatharb/taskcheck/internal/cli"
)

func main() {
	code, err := cli.RunShow(context.Background(), os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}
