package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/tmolnar/rockfall/internal/audio"
	"github.com/tmolnar/rockfall/internal/loop"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	sounds, err := audio.Open()
	if err != nil {
		log.Printf("audio unavailable, playing silent: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, loop.Options{Sounds: &sounds}); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
