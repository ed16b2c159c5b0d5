package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/secretscan/internal/cli"
	"github.com/vvka-141/secretscan/pkg/secretscan"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(secretscan.ExitPanic)
		}
	}()

	if os.Getenv("SECRETSCAN_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	os.Exit(cli.Execute())
}
