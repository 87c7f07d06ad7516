package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	typogrify "github.com/alnah/go-typogrify"
	"github.com/alnah/go-typogrify/internal/hints"
)

// Environment holds the process dependencies, injectable for tests.
type Environment struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Hints   hints.Env
	NewPool func(size int, opts ...typogrify.ConverterOption) Pool

	// StdinPiped reports whether stdin carries data rather than a terminal.
	StdinPiped func() bool
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Hints:      hints.ProcessEnv(),
		NewPool:    newConverterPool,
		StdinPiped: stdinPiped,
	}
}

func stdinPiped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
