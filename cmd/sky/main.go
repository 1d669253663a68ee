package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tomz197/nightsky/internal/draw"
	"github.com/tomz197/nightsky/internal/loop"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}

	draw.EnterAltScreen(os.Stdout)

	reader := bufio.NewReader(os.Stdin)
	runErr := loop.Run(reader, os.Stdout, draw.DefaultTermSizeFunc)

	// Best-effort restore before reporting anything, so the error lands on
	// a usable terminal.
	draw.ExitAltScreen(os.Stdout)
	_ = term.Restore(fd, oldState)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "night sky error: %v\n", runErr)
		os.Exit(1)
	}
}
