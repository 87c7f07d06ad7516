package main

import (
	"context"

	typogrify "github.com/alnah/go-typogrify"
)

// CLIConverter is the part of typogrify.Converter the CLI uses.
type CLIConverter interface {
	Convert(ctx context.Context, input typogrify.Input) (*typogrify.Result, error)
}

var _ CLIConverter = (*typogrify.Converter)(nil)

// Pool abstracts typogrify.ConverterPool for tests.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// converterPool adapts typogrify.ConverterPool to Pool.
type converterPool struct {
	*typogrify.ConverterPool
}

var _ Pool = converterPool{}

func newConverterPool(size int, opts ...typogrify.ConverterOption) Pool {
	return converterPool{typogrify.NewConverterPool(size, opts...)}
}

func (p converterPool) Acquire() (CLIConverter, error) {
	conv, err := p.ConverterPool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

func (p converterPool) Release(conv CLIConverter) {
	if c, ok := conv.(*typogrify.Converter); ok {
		p.ConverterPool.Release(c)
	}
}
